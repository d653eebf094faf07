// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

const logFileName = "impulse.log"

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level to record.
	Level string
	// Dir is where the log file goes. Empty means stderr only.
	Dir string
	// Prefix is printed before every message.
	Prefix string
}

// Logger wraps the charmbracelet logger together with its log file.
type Logger struct {
	*clog.Logger
	file *os.File
}

// New creates a logger writing to stderr and, when cfg.Dir is usable, to a
// log file there. A log file that cannot be opened is reported on stderr and
// otherwise ignored.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stderr
	var file *os.File
	if cfg.Dir != "" {
		opened, err := openLogFile(cfg.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file disabled: %v\n", err)
		} else {
			file = opened
			out = io.MultiWriter(os.Stderr, file)
		}
	}
	return &Logger{Logger: newLogger(out, cfg), file: file}
}

func newLogger(out io.Writer, cfg Config) *clog.Logger {
	logger := clog.NewWithOptions(out, clog.Options{
		Level:           ParseLevel(cfg.Level),
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return logger
}

// SetLevel changes the minimum level using its textual name.
func (logger *Logger) SetLevel(level string) {
	logger.Logger.SetLevel(ParseLevel(level))
}

// Path returns the log file path, or "" when logging to stderr only.
func (logger *Logger) Path() string {
	if logger.file == nil {
		return ""
	}
	return logger.file.Name()
}

// Close flushes and closes the log file.
func (logger *Logger) Close() error {
	if logger.file == nil {
		return nil
	}
	err := logger.file.Close()
	logger.file = nil
	return err
}

// ParseLevel converts a string level to clog.Level.
func ParseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	path := filepath.Join(dir, logFileName)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
