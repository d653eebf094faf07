package session

import (
	"time"

	"impulse/internal/core/countdown"
	"impulse/internal/core/model"

	"github.com/charmbracelet/log"
)

// Phase labels shown in the status text.
const (
	LabelWork  = "Work Time"
	LabelBreak = "Break Time"
)

// Config contains runtime options for Session.
type Config struct {
	TickInterval time.Duration
	Logger       *log.Logger
	Now          func() time.Time
}

// Session is the Pomodoro state machine. It owns the countdown and is
// driven from a single goroutine: every method must be called from the UI
// loop. Observers get events over channels and may live anywhere.
type Session struct {
	config        model.SessionConfig
	options       Config
	timer         *countdown.Countdown
	state         State
	previousState State
	workShift     int
	label         string
	events        []chan Event
	stopped       bool
}

// New creates a session from the persisted configuration. With AutoStart the
// first work shift starts immediately, otherwise the session is Inactive.
func New(config model.SessionConfig, options Config) *Session {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Logger == nil {
		options.Logger = log.Default()
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	session := &Session{
		config:  normalize(config),
		options: options,
		timer:   countdown.New(options.TickInterval),
	}
	session.workShift = session.config.WorkShiftCount
	session.timer.SetOnTimeout(session.handleTimeout)
	session.timer.SetDuration(session.config.WorkDuration)

	if session.config.AutoStart {
		session.state = StateWorkShift
		session.timer.Start()
	} else {
		session.state = StateInactive
	}
	session.previousState = session.state
	session.updateLabel()
	return session
}

func normalize(config model.SessionConfig) model.SessionConfig {
	if config.LongBreakAfter < 1 {
		config.LongBreakAfter = 1
	}
	if config.WorkShiftCount < 1 || config.WorkShiftCount > config.LongBreakAfter {
		config.WorkShiftCount = 1
	}
	return config
}

// Subscribe registers a new observer channel.
func (session *Session) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	if session.stopped {
		close(ch)
		return ch
	}
	session.events = append(session.events, ch)
	return ch
}

// Stop closes every observer channel. The session keeps its state.
func (session *Session) Stop() {
	if session.stopped {
		return
	}
	session.stopped = true
	for _, ch := range session.events {
		close(ch)
	}
	session.events = nil
}

// State returns the current state.
func (session *Session) State() State { return session.state }

// PreviousState returns the state a pause will restore.
func (session *Session) PreviousState() State { return session.previousState }

// WorkShift returns the position inside the long break cycle.
func (session *Session) WorkShift() int { return session.workShift }

// Label returns the phase text for the status label.
func (session *Session) Label() string { return session.label }

// TaskName returns the current task label.
func (session *Session) TaskName() string { return session.config.TaskName }

// Remaining returns the time left in the current phase.
func (session *Session) Remaining() time.Duration { return session.timer.Remaining() }

// Duration returns the length of the current phase.
func (session *Session) Duration() time.Duration { return session.timer.Duration() }

// Progress returns the elapsed fraction of the current phase.
func (session *Session) Progress() float64 { return session.timer.Progress() }

// Running reports whether ticks advance the countdown.
func (session *Session) Running() bool { return session.timer.Running() }

// Config returns the configuration with the current work shift position.
func (session *Session) Config() model.SessionConfig {
	config := session.config
	config.WorkShiftCount = session.workShift
	return config
}

// TogglePause pauses an active phase, or starts/resumes the session.
// Resuming restores the paused phase with its remaining time; starting from
// Inactive begins a full work shift.
func (session *Session) TogglePause() {
	switch session.state {
	case StateWorkShift, StateShortBreak, StateLongBreak:
		session.timer.Pause()
		session.enter(StatePaused)
	case StatePaused:
		session.timer.Resume()
		session.enter(session.previousState)
	case StateInactive:
		session.timer.SetDuration(session.config.WorkDuration)
		session.timer.Start()
		session.enter(StateWorkShift)
	}
}

// Tick advances the countdown by one interval.
func (session *Session) Tick() {
	if !session.timer.Running() {
		return
	}
	session.timer.Tick()
	session.emit(Event{
		Type:      EventProgress,
		State:     session.state,
		WorkShift: session.workShift,
		Remaining: session.timer.Remaining(),
		Duration:  session.timer.Duration(),
		Progress:  session.timer.Progress(),
		At:        session.options.Now(),
	})
}

// UpdateConfig replaces durations, threshold and task name. A running phase
// keeps its remaining time; new durations apply from the next transition,
// except in Inactive where the pending work shift is resized at once.
func (session *Session) UpdateConfig(config model.SessionConfig) {
	config.WorkShiftCount = session.workShift
	session.config = normalize(config)
	session.workShift = session.config.WorkShiftCount

	if session.state == StateInactive {
		session.timer.SetDuration(session.config.WorkDuration)
	}
	session.options.Logger.Debug("session config updated",
		"work", session.config.WorkDuration,
		"short_break", session.config.ShortBreakDuration,
		"long_break", session.config.LongBreakDuration,
		"long_break_after", session.config.LongBreakAfter,
	)
}

func (session *Session) handleTimeout() {
	finished := session.state
	switch finished {
	case StateWorkShift:
		session.completePhase(finished)
		if session.workShift == session.config.LongBreakAfter {
			session.startPhase(StateLongBreak, session.config.LongBreakDuration)
		} else {
			session.startPhase(StateShortBreak, session.config.ShortBreakDuration)
		}
	case StateShortBreak, StateLongBreak:
		session.completePhase(finished)
		if session.workShift < session.config.LongBreakAfter {
			session.workShift++
		} else {
			session.workShift = 1
		}
		session.startPhase(StateWorkShift, session.config.WorkDuration)
	default:
		session.options.Logger.Debug("timeout ignored", "state", finished)
	}
}

func (session *Session) completePhase(state State) {
	session.emit(Event{
		Type:      EventPhaseComplete,
		State:     state,
		WorkShift: session.workShift,
		Duration:  session.timer.Duration(),
		Task:      session.config.TaskName,
		At:        session.options.Now(),
	})
}

func (session *Session) startPhase(state State, duration time.Duration) {
	session.timer.SetDuration(duration)
	session.timer.Start()
	session.enter(state)
}

func (session *Session) enter(state State) {
	from := session.state
	if state == StatePaused {
		session.previousState = from
	}
	session.state = state
	session.updateLabel()

	session.options.Logger.Debug("session transition", "from", from, "to", state, "work_shift", session.workShift)
	session.emit(Event{
		Type:      EventStateChange,
		State:     state,
		Previous:  from,
		WorkShift: session.workShift,
		Remaining: session.timer.Remaining(),
		Duration:  session.timer.Duration(),
		Progress:  session.timer.Progress(),
		Task:      session.config.TaskName,
		At:        session.options.Now(),
	})
}

func (session *Session) updateLabel() {
	switch session.state {
	case StateInactive:
		session.label = ""
	case StateWorkShift:
		session.label = LabelWork
	case StateShortBreak, StateLongBreak:
		session.label = LabelBreak
	}
}

func (session *Session) emit(event Event) {
	for _, ch := range session.events {
		select {
		case ch <- event:
		default:
		}
	}
}
