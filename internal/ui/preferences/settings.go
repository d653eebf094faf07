package preferences

import (
	"time"

	"impulse/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	LongBreakAfter     int
	AutoStart          bool
	TaskName           string

	WorkShiftCount int
	LogLevel       string
}

// DefaultSettings returns default settings for Impulse.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		LongBreakAfter:     4,
		AutoStart:          false,
		TaskName:           "Focus",
		WorkShiftCount:     1,
		LogLevel:           "info",
	}
}

// SessionConfig converts settings to the session configuration.
func (settings Settings) SessionConfig() model.SessionConfig {
	return model.SessionConfig{
		WorkDuration:       settings.WorkDuration,
		ShortBreakDuration: settings.ShortBreakDuration,
		LongBreakDuration:  settings.LongBreakDuration,
		LongBreakAfter:     settings.LongBreakAfter,
		AutoStart:          settings.AutoStart,
		TaskName:           settings.TaskName,
		WorkShiftCount:     settings.WorkShiftCount,
	}
}

// WithSession copies the session-owned fields back into the settings.
func (settings Settings) WithSession(config model.SessionConfig) Settings {
	settings.WorkDuration = config.WorkDuration
	settings.ShortBreakDuration = config.ShortBreakDuration
	settings.LongBreakDuration = config.LongBreakDuration
	settings.LongBreakAfter = config.LongBreakAfter
	settings.AutoStart = config.AutoStart
	settings.TaskName = config.TaskName
	settings.WorkShiftCount = config.WorkShiftCount
	return settings
}
