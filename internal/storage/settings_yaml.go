package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"impulse/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkDuration       string  `yaml:"work_duration"`
	ShortBreakDuration string  `yaml:"short_break_duration"`
	LongBreakDuration  string  `yaml:"long_break_duration"`
	LongBreakAfter     int     `yaml:"long_break_after"`
	AutoStart          bool    `yaml:"auto_start"`
	TaskName           *string `yaml:"task_name"`
	WorkShiftCount     int     `yaml:"work_shift_count"`
	LogLevel           string  `yaml:"log_level,omitempty"`
}

// LoadSettings reads user preferences from the per-user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from path. Defaults are returned
// alongside any error, so callers can log it and carry on.
func LoadSettingsFile(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return settings, fmt.Errorf("settings %s: %w", path, err)
	}
	return settings, nil
}

// SaveSettings writes user preferences to the per-user config directory.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to path.
func SaveSettingsFile(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkDuration:       settings.WorkDuration.String(),
		ShortBreakDuration: settings.ShortBreakDuration.String(),
		LongBreakDuration:  settings.LongBreakDuration.String(),
		LongBreakAfter:     settings.LongBreakAfter,
		AutoStart:          settings.AutoStart,
		TaskName:           &settings.TaskName,
		WorkShiftCount:     settings.WorkShiftCount,
		LogLevel:           settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := ConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsFileName), nil
}

// ConfigDir returns the per-user directory holding appName's files.
func ConfigDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// applyYamlSettings copies valid values over the defaults. Invalid fields
// keep their default and are reported together.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) error {
	var problems []error

	applyDuration := func(name, raw string, target *time.Duration) {
		if raw == "" {
			return
		}
		value, err := time.ParseDuration(raw)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", name, err))
			return
		}
		if value <= 0 {
			problems = append(problems, fmt.Errorf("%s: must be positive, got %s", name, raw))
			return
		}
		*target = value
	}

	applyDuration("work_duration", fileData.WorkDuration, &settings.WorkDuration)
	applyDuration("short_break_duration", fileData.ShortBreakDuration, &settings.ShortBreakDuration)
	applyDuration("long_break_duration", fileData.LongBreakDuration, &settings.LongBreakDuration)

	if fileData.LongBreakAfter > 0 {
		settings.LongBreakAfter = fileData.LongBreakAfter
	} else if fileData.LongBreakAfter < 0 {
		problems = append(problems, fmt.Errorf("long_break_after: must be positive, got %d", fileData.LongBreakAfter))
	}

	if fileData.WorkShiftCount > 0 && fileData.WorkShiftCount <= settings.LongBreakAfter {
		settings.WorkShiftCount = fileData.WorkShiftCount
	}

	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}

	settings.AutoStart = fileData.AutoStart
	if fileData.TaskName != nil {
		settings.TaskName = *fileData.TaskName
	}

	return errors.Join(problems...)
}
