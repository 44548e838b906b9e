package log

import (
	"errors"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("eval").WithField("command", "TRIG.SIN").WithLevel(LevelInfo)
	if !timer.IsRunning() {
		t.Fatal("timer should be running")
	}
	timer.Stop()

	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["message"] != "eval completed" || e["level"] != "info" || e["command"] != "TRIG.SIN" {
		t.Errorf("unexpected entry: %v", e)
	}
	if _, ok := e["duration_ms"].(float64); !ok {
		t.Errorf("duration_ms missing: %v", e)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	logger.StartTimer("load").StopWithError(errors.New("no such file"))

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0]["level"] != "error" || entries[0]["success"] != false || entries[0]["error"] != "no such file" {
		t.Errorf("unexpected entry: %v", entries[0])
	}
}

func TestTimerCancel(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := logger.StartTimer("x")
	timer.Cancel()
	timer.Stop()
	if buf.Len() != 0 {
		t.Errorf("cancelled timer logged %q", buf.String())
	}
}
