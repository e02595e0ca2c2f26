// Package log provides a structured logging interface for goheamy operations.
//
// The interface is slog-compatible so that callers can swap backends; the
// default backend is zerolog (see logger.go). Attribute keys for ensembling
// workflows live in attributes.go.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "ensemble",
//	    log.ModelsKey, 3,
//	)
//	logger.Info("Weights optimized",
//	    log.MethodKey, "nelder-mead",
//	    log.LossKey, 0.042,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. The With method returns a child
// logger with the given fields pre-populated.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error, it is attached together with its
	// stack trace.
	//
	// Example:
	//   logger.Error("Weight optimization failed",
	//       err,
	//       log.MethodKey, "bfgs",
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
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

