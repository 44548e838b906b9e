// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging with
//              contextual fields and integration with the structured error type.
//              Encoding, level filtering and output are delegated to zap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-16 v0.2.0: zap core instead of hand-written formatters and async worker

package log

import (
	"io"
	"os"
	"sort"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields holds structured key-value pairs attached to a log entry
type Fields map[string]interface{}

// Logger represents a structured logger with contextual information.
// Loggers derived with the With* methods share the level of their parent.
type Logger struct {
	zl    *zap.Logger
	level zap.AtomicLevel
	name  string
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger writing JSON at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	level := zap.NewAtomicLevelAt(config.Level.zapLevel())
	core := zapcore.NewCore(newEncoder(config.Format), zapcore.AddSync(output), level)

	zl := zap.New(core)
	if config.Name != "" {
		zl = zl.Named(config.Name)
	}

	return &Logger{zl: zl, level: level, name: config.Name}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zl: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.ErrorLevel)}
}

// WithName returns a logger whose name is extended by the given segment
func (l *Logger) WithName(name string) *Logger {
	full := name
	if l.name != "" {
		full = l.name + "." + name
	}
	return &Logger{zl: l.zl.Named(name), level: l.level, name: full}
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{zl: l.zl.With(zap.Any(key, value)), level: l.level, name: l.name}
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{zl: l.zl.With(toZap(fields)...), level: l.level, name: l.name}
}

// WithCorrelationID sets the correlation ID context
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	return l.WithField("correlation_id", correlationID)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs an error with its code, severity, operation and details.
// The level follows the severity of structured errors; plain errors are
// logged at error level.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code().String(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	l.log(levelForSeverity(mdwErr.Severity()), err.Error(), err, fields)
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.level.Enabled(level.zapLevel())
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return fromZapLevel(l.level.Level())
}

// SetLevel changes the level of this logger and every logger derived from it
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

// Name returns the dotted logger name
func (l *Logger) Name() string {
	return l.name
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	ce := l.zl.Check(level.zapLevel(), message)
	if ce == nil {
		return
	}

	var zfs []zap.Field
	for _, set := range fields {
		zfs = append(zfs, toZap(set)...)
	}
	if err != nil {
		zfs = append(zfs, zap.Error(err))
	}
	ce.Write(zfs...)
}

// toZap converts fields in key order so output is stable
func toZap(fields Fields) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

// Default logger instance
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	defaultLogger.Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	defaultLogger.Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	defaultLogger.Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	defaultLogger.Error(message, fields...)
}
