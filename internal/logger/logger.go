package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var logLevelNames = map[LogLevel]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var zerologLevels = map[LogLevel]zerolog.Level{
	LevelDebug: zerolog.DebugLevel,
	LevelInfo:  zerolog.InfoLevel,
	LevelWarn:  zerolog.WarnLevel,
	LevelError: zerolog.ErrorLevel,
}

// New creates a logger writing human readable lines to stdout, or JSON
// lines when jsonOutput is set.
func New(minLevel LogLevel, jsonOutput bool) *Logger {
	if jsonOutput {
		return NewWithWriter(os.Stdout, minLevel)
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05.000",
	}
	return NewWithWriter(output, minLevel)
}

// NewWithWriter creates a logger with a custom writer
func NewWithWriter(w io.Writer, minLevel LogLevel) *Logger {
	return &Logger{
		MinLevel: minLevel,
		zl:       zerolog.New(w).With().Timestamp().Logger(),
	}
}

// ParseLevel maps a textual level to a LogLevel, defaulting to info
func ParseLevel(s string) LogLevel {
	for level, name := range logLevelNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return level
		}
	}
	return LevelInfo
}

func (l *Logger) log(level LogLevel, component, message string, args ...interface{}) {
	if level < l.MinLevel {
		return
	}

	event := l.zl.WithLevel(zerologLevels[level])
	if component != "" {
		event = event.Str("component", component)
	}
	event.Msg(fmt.Sprintf(message, args...))
}

// Debug logs a debug message
func (l *Logger) Debug(component, message string, args ...interface{}) {
	l.log(LevelDebug, component, message, args...)
}

// Info logs an info message
func (l *Logger) Info(component, message string, args ...interface{}) {
	l.log(LevelInfo, component, message, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(component, message string, args ...interface{}) {
	l.log(LevelWarn, component, message, args...)
}

// Error logs an error message
func (l *Logger) Error(component, message string, args ...interface{}) {
	l.log(LevelError, component, message, args...)
}

// Fatal logs an error message and exits
func (l *Logger) Fatal(component, message string, args ...interface{}) {
	l.log(LevelError, component, message, args...)
	os.Exit(1)
}

// Request logs one served HTTP request.
func (l *Logger) Request(method, path string, status int, duration time.Duration, requestID string) {
	if LevelInfo < l.MinLevel {
		return
	}

	l.zl.Info().
		Str("component", "HTTP").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", duration).
		Str("request_id", requestID).
		Msg("HTTP request")
}
