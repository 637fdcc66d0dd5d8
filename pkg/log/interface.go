// Package log provides the structured logging interface used across mlglue.
//
// The interface is slog-compatible in shape (key/value pairs, numeric levels)
// and backed by zerolog by default. Components obtain a logger per call through
// GetLoggerWithName so that tests can swap the provider with SetLoggerProvider.
//
// Example:
//
//	logger := log.GetLoggerWithName("linear").With(log.ModelNameKey, "LinearRegression")
//	logger.Debug("fit completed",
//	    log.SamplesKey, 10,
//	    log.FeaturesKey, 1,
//	)

package log

import (
	"context"
)

// Logger is a structured, leveled logger.
type Logger interface {
	// Debug logs diagnostic detail. Disabled by default.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs conditions worth attention that do not stop the operation.
	Warn(msg string, fields ...any)

	// Error logs an error condition. If the first field is an error it is
	// attached as the error of the record, with its stack trace when available:
	//
	//	logger.Error("fit failed", err, log.OperationKey, log.OperationFit)
	Error(msg string, fields ...any)

	// With returns a logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level; values match slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates loggers. The process-wide provider is replaced with
// SetLoggerProvider.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}
