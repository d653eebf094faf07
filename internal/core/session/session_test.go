package session

import (
	"testing"
	"time"

	"impulse/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() model.SessionConfig {
	return model.SessionConfig{
		WorkDuration:       5 * time.Second,
		ShortBreakDuration: 2 * time.Second,
		LongBreakDuration:  3 * time.Second,
		LongBreakAfter:     3,
		TaskName:           "Write report",
		WorkShiftCount:     1,
	}
}

func tickN(session *Session, n int) {
	for i := 0; i < n; i++ {
		session.Tick()
	}
}

// runPhase ticks until the current phase times out.
func runPhase(t *testing.T, session *Session) {
	t.Helper()
	start := session.State()
	require.True(t, session.Running(), "phase %s not running", start)
	for i := 0; session.State() == start; i++ {
		require.Less(t, i, 1000, "phase %s never ended", start)
		session.Tick()
	}
}

func TestStartsInactiveWithoutAutoStart(t *testing.T) {
	session := New(testConfig(), Config{})

	assert.Equal(t, StateInactive, session.State())
	assert.False(t, session.Running())
	assert.Equal(t, "", session.Label())
	assert.Equal(t, 5*time.Second, session.Remaining())

	tickN(session, 10)
	assert.Equal(t, StateInactive, session.State())
	assert.Equal(t, 5*time.Second, session.Remaining())
}

func TestAutoStartBeginsWorkShift(t *testing.T) {
	config := testConfig()
	config.AutoStart = true
	session := New(config, Config{})

	assert.Equal(t, StateWorkShift, session.State())
	assert.True(t, session.Running())
	assert.Equal(t, LabelWork, session.Label())
}

func TestToggleFromInactiveStartsWork(t *testing.T) {
	session := New(testConfig(), Config{})
	session.TogglePause()

	assert.Equal(t, StateWorkShift, session.State())
	assert.True(t, session.Running())
	assert.Equal(t, 5*time.Second, session.Remaining())
	assert.Equal(t, LabelWork, session.Label())
}

func TestCycleInsertsLongBreak(t *testing.T) {
	config := testConfig()
	config.AutoStart = true
	session := New(config, Config{})

	var breaks []State
	var counters []int
	for cycle := 0; cycle < 3; cycle++ {
		require.Equal(t, StateWorkShift, session.State())
		runPhase(t, session)
		breaks = append(breaks, session.State())
		runPhase(t, session)
		counters = append(counters, session.WorkShift())
	}

	assert.Equal(t, []State{StateShortBreak, StateShortBreak, StateLongBreak}, breaks)
	assert.Equal(t, []int{2, 3, 1}, counters)
	assert.Equal(t, StateWorkShift, session.State())
}

func TestPhaseDurations(t *testing.T) {
	config := testConfig()
	config.AutoStart = true
	session := New(config, Config{})

	tickN(session, 4)
	assert.Equal(t, StateWorkShift, session.State())
	session.Tick()
	assert.Equal(t, StateShortBreak, session.State())
	assert.Equal(t, 2*time.Second, session.Remaining())
	assert.True(t, session.Running())
	assert.Equal(t, LabelBreak, session.Label())

	tickN(session, 2)
	assert.Equal(t, StateWorkShift, session.State())
	assert.Equal(t, 5*time.Second, session.Remaining())
}

func TestPauseDuringBreakResumesBreak(t *testing.T) {
	config := testConfig()
	config.AutoStart = true
	config.ShortBreakDuration = 4 * time.Second
	session := New(config, Config{})

	runPhase(t, session)
	require.Equal(t, StateShortBreak, session.State())
	session.Tick()

	session.TogglePause()
	assert.Equal(t, StatePaused, session.State())
	assert.Equal(t, StateShortBreak, session.PreviousState())
	assert.Equal(t, LabelBreak, session.Label(), "label is left as-is while paused")
	assert.False(t, session.Running())

	tickN(session, 10)
	assert.Equal(t, 3*time.Second, session.Remaining())

	session.TogglePause()
	assert.Equal(t, StateShortBreak, session.State())
	assert.Equal(t, 3*time.Second, session.Remaining())

	tickN(session, 2)
	assert.Equal(t, StateShortBreak, session.State())
	session.Tick()
	assert.Equal(t, StateWorkShift, session.State())
}

func TestPauseDuringWorkKeepsRemaining(t *testing.T) {
	config := testConfig()
	config.AutoStart = true
	session := New(config, Config{})

	tickN(session, 2)
	session.TogglePause()
	session.TogglePause()
	assert.Equal(t, StateWorkShift, session.State())
	assert.Equal(t, 3*time.Second, session.Remaining())
}

func TestTimeoutWhileIdleIsIgnored(t *testing.T) {
	session := New(testConfig(), Config{})
	session.handleTimeout()
	assert.Equal(t, StateInactive, session.State())

	session.TogglePause()
	session.TogglePause()
	require.Equal(t, StatePaused, session.State())
	session.handleTimeout()
	assert.Equal(t, StatePaused, session.State())
	assert.Equal(t, 1, session.WorkShift())
}

func TestNormalizesThresholdAndCounter(t *testing.T) {
	config := testConfig()
	config.LongBreakAfter = 0
	config.WorkShiftCount = 9
	session := New(config, Config{})

	assert.Equal(t, 1, session.Config().LongBreakAfter)
	assert.Equal(t, 1, session.WorkShift())

	// Threshold of one: every break is long.
	session.TogglePause()
	runPhase(t, session)
	assert.Equal(t, StateLongBreak, session.State())
}

func TestRestoresPersistedCounter(t *testing.T) {
	config := testConfig()
	config.AutoStart = true
	config.WorkShiftCount = 3
	session := New(config, Config{})

	runPhase(t, session)
	assert.Equal(t, StateLongBreak, session.State())
	assert.Equal(t, 3, session.Config().WorkShiftCount)
}

func TestUpdateConfig(t *testing.T) {
	session := New(testConfig(), Config{})

	updated := testConfig()
	updated.WorkDuration = 10 * time.Second
	updated.TaskName = "Review"
	session.UpdateConfig(updated)

	assert.Equal(t, 10*time.Second, session.Remaining(), "inactive session picks up the new work duration")
	assert.Equal(t, "Review", session.TaskName())

	session.TogglePause()
	tickN(session, 3)
	updated.WorkDuration = time.Minute
	session.UpdateConfig(updated)
	assert.Equal(t, 7*time.Second, session.Remaining(), "running phase keeps its remaining time")
}

func TestUpdateConfigClampsCounter(t *testing.T) {
	config := testConfig()
	config.WorkShiftCount = 3
	session := New(config, Config{})

	config.LongBreakAfter = 2
	session.UpdateConfig(config)
	assert.Equal(t, 1, session.WorkShift())
}

func TestEvents(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	config := testConfig()
	config.WorkDuration = time.Second
	session := New(config, Config{Now: func() time.Time { return now }})
	events := session.Subscribe(10)

	session.TogglePause()
	session.Tick()

	var got []Event
	for len(events) > 0 {
		got = append(got, <-events)
	}
	require.Len(t, got, 4)

	assert.Equal(t, EventStateChange, got[0].Type)
	assert.Equal(t, StateWorkShift, got[0].State)
	assert.Equal(t, StateInactive, got[0].Previous)

	assert.Equal(t, EventPhaseComplete, got[1].Type)
	assert.Equal(t, StateWorkShift, got[1].State)
	assert.Equal(t, time.Second, got[1].Duration)
	assert.Equal(t, "Write report", got[1].Task)
	assert.Equal(t, now, got[1].At)

	assert.Equal(t, EventStateChange, got[2].Type)
	assert.Equal(t, StateShortBreak, got[2].State)

	assert.Equal(t, EventProgress, got[3].Type)
	assert.Equal(t, StateShortBreak, got[3].State)
	assert.Equal(t, 2*time.Second, got[3].Remaining)

	session.Stop()
	_, open := <-events
	assert.False(t, open)

	late := session.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestSlowObserverDoesNotBlock(t *testing.T) {
	config := testConfig()
	config.AutoStart = true
	session := New(config, Config{})
	_ = session.Subscribe(1)

	done := make(chan struct{})
	go func() {
		tickN(session, 50)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticking blocked on a full observer channel")
	}
}
