package logger

import "github.com/rs/zerolog"

// Logger provides structured logging with levels, tagged by component

type Logger struct {
	MinLevel LogLevel
	zl       zerolog.Logger
}

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)
