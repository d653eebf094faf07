package session

import "time"

// State represents the current Pomodoro phase.
type State string

const (
	StateInactive   State = "inactive"
	StateWorkShift  State = "work_shift"
	StateShortBreak State = "short_break"
	StateLongBreak  State = "long_break"
	StatePaused     State = "paused"
)

// Active reports whether the countdown runs in this state.
func (state State) Active() bool {
	switch state {
	case StateWorkShift, StateShortBreak, StateLongBreak:
		return true
	default:
		return false
	}
}

// EventType defines the type of session event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventProgress      EventType = "progress"
	EventPhaseComplete EventType = "phase_complete"
)

// Event represents a session update for observers.
//
// For EventPhaseComplete, State is the phase that just ran out and Duration
// its configured length.
type Event struct {
	Type      EventType
	State     State
	Previous  State
	WorkShift int
	Remaining time.Duration
	Duration  time.Duration
	Progress  float64
	Task      string
	At        time.Time
}
