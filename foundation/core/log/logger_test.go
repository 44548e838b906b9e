// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, levels and the
//              integration with structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-16 v0.2.0: Assertions against zap JSON output

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: &buf}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, m)
	}
	return entries
}

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf, Name: "calc"})

	logger.Info("dropped")
	logger.Warn("kept", Fields{"n": 3})

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %s", len(entries), buf.String())
	}
	e := entries[0]
	if e["message"] != "kept" || e["level"] != "warn" || e["logger"] != "calc" {
		t.Errorf("unexpected entry: %v", e)
	}
	if e["n"] != float64(3) {
		t.Errorf("field n = %v", e["n"])
	}
}

func TestLoggerContextFields(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug)
	logger := base.WithField("session", "s1").
		WithFields(Fields{"locale": "de-DE"}).
		WithCorrelationID("abc").
		WithName("tui")

	logger.Debug("hello")
	base.Debug("plain")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	first := entries[0]
	for key, want := range map[string]string{"session": "s1", "locale": "de-DE", "correlation_id": "abc", "logger": "tui"} {
		if first[key] != want {
			t.Errorf("%s = %v, want %s", key, first[key], want)
		}
	}
	if _, ok := entries[1]["session"]; ok {
		t.Error("WithField() must not modify the parent logger")
	}
}

func TestWithNameNesting(t *testing.T) {
	logger := NewWithConfig(Config{Name: "numcore"}).WithName("calc")
	if logger.Name() != "numcore.calc" {
		t.Errorf("Name() = %q", logger.Name())
	}
}

func TestSetLevelSharedWithChildren(t *testing.T) {
	parent, buf := newBufferLogger(LevelError)
	child := parent.WithField("k", "v")

	child.Info("before")
	parent.SetLevel(LevelInfo)
	child.Info("after")

	if !child.IsLevelEnabled(LevelInfo) {
		t.Error("child should see the parent's level change")
	}
	entries := decodeLines(t, buf)
	if len(entries) != 1 || entries[0]["message"] != "after" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "low severity logs at info",
			err:       mdwerror.New("bad number").WithCode(mdwerror.CodeInvalidFormat),
			wantLevel: "info",
			wantCode:  "INVALID_FORMAT",
		},
		{
			name:      "medium severity logs at warn",
			err:       mdwerror.New("missing").WithCode(mdwerror.CodeNotFound),
			wantLevel: "warn",
			wantCode:  "NOT_FOUND",
		},
		{
			name:      "critical severity logs at error",
			err:       mdwerror.New("broken").WithCode(mdwerror.CodeInternal),
			wantLevel: "error",
			wantCode:  "INTERNAL",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelDebug)
			logger.LogError(tt.err)

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries", len(entries))
			}
			e := entries[0]
			if e["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", e["level"], tt.wantLevel)
			}
			if e["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", e["error_code"], tt.wantCode)
			}
			if e["error"] != tt.err.Error() {
				t.Errorf("error = %v", e["error"])
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatConsole, Output: &buf})
	logger.Info("ready", Fields{"objects": 8})

	out := buf.String()
	if !strings.Contains(out, "info") || !strings.Contains(out, "ready") || !strings.Contains(out, `"objects": 8`) {
		t.Errorf("unexpected console output: %q", out)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("nothing")
	logger.LogError(errors.New("nothing"))
	if err := logger.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"", LevelInfo, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("text"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}
