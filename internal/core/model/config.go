package model

import "time"

// SessionConfig contains runtime settings for the session state machine.
type SessionConfig struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	// LongBreakAfter is the number of work shifts that end in a long break.
	LongBreakAfter int
	AutoStart      bool
	TaskName       string

	// WorkShiftCount is the position inside the long break cycle, 1-based.
	WorkShiftCount int
}
