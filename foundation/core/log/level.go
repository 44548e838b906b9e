// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering log output and their mapping onto
//              zap levels.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-16 v0.2.0: Reduced to the four levels zap filters on

package log

import (
	"strings"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	"go.uber.org/zap/zapcore"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelDebug provides detailed information for debugging purposes
	LevelDebug Level = iota

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// IsValid returns true if the level is one of the defined levels
func (l Level) IsValid() bool {
	return l >= LevelDebug && l <= LevelError
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fromZapLevel(z zapcore.Level) Level {
	switch {
	case z <= zapcore.DebugLevel:
		return LevelDebug
	case z == zapcore.InfoLevel:
		return LevelInfo
	case z == zapcore.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

// ParseLevel parses a level name. Accepted are debug, info, warn/warning and error
// in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, mdwerror.New("unknown log level: " + s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("log.ParseLevel").
		WithDetail("level", s)
}

// DefaultLevel returns the level used by New
func DefaultLevel() Level {
	return LevelInfo
}

// levelForSeverity picks the log level an error of the given severity is logged at
func levelForSeverity(s mdwerror.Severity) Level {
	switch s {
	case mdwerror.SeverityLow:
		return LevelInfo
	case mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}
