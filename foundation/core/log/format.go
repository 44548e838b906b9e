// File: format.go
// Title: Log Output Formats
// Description: Output formats and the zap encoders that implement them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON and text formatters
// - 2026-10-16 v0.2.0: Formatters replaced by zap encoders

package log

import (
	"strings"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	"go.uber.org/zap/zapcore"
)

// Format selects how log entries are encoded
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota

	// FormatConsole writes tab separated, human-readable lines
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name; "text" is accepted as an alias for console
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "console", "text":
		return FormatConsole, nil
	}
	return FormatJSON, mdwerror.New("unknown log format: " + s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("log.ParseFormat").
		WithDetail("format", s)
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func newEncoder(format Format) zapcore.Encoder {
	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(encoderConfig())
	}
	return zapcore.NewJSONEncoder(encoderConfig())
}
