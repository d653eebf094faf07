package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCounting(duration time.Duration) (*Countdown, *int) {
	timeouts := 0
	countdown := New(time.Second)
	countdown.SetDuration(duration)
	countdown.SetOnTimeout(func() { timeouts++ })
	return countdown, &timeouts
}

func TestTimeoutFiresOnceAfterFullDuration(t *testing.T) {
	for _, seconds := range []int{1, 2, 5, 60} {
		countdown, timeouts := newCounting(time.Duration(seconds) * time.Second)
		countdown.Start()

		for i := 1; i < seconds; i++ {
			require.False(t, countdown.Tick(), "tick %d of %d", i, seconds)
		}
		assert.Equal(t, 0, *timeouts)

		assert.True(t, countdown.Tick())
		assert.Equal(t, 1, *timeouts)
		assert.Equal(t, time.Duration(0), countdown.Remaining())
		assert.Equal(t, StatusStopped, countdown.Status())

		for i := 0; i < 5; i++ {
			assert.False(t, countdown.Tick())
		}
		assert.Equal(t, 1, *timeouts)
		assert.Equal(t, time.Duration(0), countdown.Remaining())
	}
}

func TestPauseResumeKeepsTotalTicks(t *testing.T) {
	const duration = 10
	countdown, timeouts := newCounting(duration * time.Second)
	countdown.Start()

	for i := 0; i < 4; i++ {
		countdown.Tick()
	}
	countdown.Pause()
	assert.Equal(t, StatusPaused, countdown.Status())

	// Ticks while paused do nothing.
	for i := 0; i < 20; i++ {
		assert.False(t, countdown.Tick())
	}
	assert.Equal(t, 6*time.Second, countdown.Remaining())

	countdown.Start()
	for i := 0; i < duration-4-1; i++ {
		require.False(t, countdown.Tick())
	}
	assert.Equal(t, 0, *timeouts)
	assert.True(t, countdown.Tick())
	assert.Equal(t, 1, *timeouts)
}

func TestResumeOnlyFromPaused(t *testing.T) {
	countdown, _ := newCounting(3 * time.Second)
	countdown.Resume()
	assert.Equal(t, StatusStopped, countdown.Status())

	countdown.Start()
	countdown.Tick()
	countdown.Pause()
	countdown.Resume()
	assert.True(t, countdown.Running())
	assert.Equal(t, 2*time.Second, countdown.Remaining())
}

func TestTickWhileStoppedIsNoop(t *testing.T) {
	countdown, timeouts := newCounting(3 * time.Second)
	assert.False(t, countdown.Tick())
	assert.Equal(t, 3*time.Second, countdown.Remaining())
	assert.Equal(t, 0, *timeouts)
}

func TestSetDurationKeepsStatus(t *testing.T) {
	countdown, _ := newCounting(3 * time.Second)
	countdown.Start()
	countdown.Tick()

	countdown.SetDuration(10 * time.Second)
	assert.True(t, countdown.Running())
	assert.Equal(t, 10*time.Second, countdown.Remaining())

	countdown.Pause()
	countdown.SetDuration(5 * time.Second)
	assert.Equal(t, StatusPaused, countdown.Status())
	assert.Equal(t, 5*time.Second, countdown.Remaining())
}

func TestStartWhileRunningDoesNotRefill(t *testing.T) {
	countdown, _ := newCounting(3 * time.Second)
	countdown.Start()
	countdown.Tick()
	countdown.Start()
	assert.Equal(t, 2*time.Second, countdown.Remaining())
}

func TestRestartFromTimeoutHandler(t *testing.T) {
	countdown := New(time.Second)
	countdown.SetDuration(time.Second)
	phases := 0
	countdown.SetOnTimeout(func() {
		phases++
		countdown.SetDuration(2 * time.Second)
		countdown.Start()
	})
	countdown.Start()

	assert.True(t, countdown.Tick())
	assert.True(t, countdown.Running())
	assert.Equal(t, 2*time.Second, countdown.Remaining())
	assert.False(t, countdown.Tick())
	assert.True(t, countdown.Tick())
	assert.Equal(t, 2, phases)
}

func TestResetAndProgress(t *testing.T) {
	countdown, _ := newCounting(4 * time.Second)
	countdown.Start()
	countdown.Tick()
	assert.InDelta(t, 0.25, countdown.Progress(), 1e-9)

	countdown.Reset()
	assert.Equal(t, StatusStopped, countdown.Status())
	assert.Equal(t, 4*time.Second, countdown.Remaining())
	assert.Equal(t, float64(0), countdown.Progress())
}

func TestZeroDurationTimesOutOnFirstTick(t *testing.T) {
	countdown, timeouts := newCounting(0)
	countdown.Start()
	assert.True(t, countdown.Tick())
	assert.Equal(t, 1, *timeouts)
}
