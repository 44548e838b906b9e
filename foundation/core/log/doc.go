// Package log provides structured logging for numcore.
//
// Package: log
// Title: numcore Structured Logging
// Description: Structured logger with persistent fields, correlation IDs, timers
//              and integration with the structured error type. Entries are encoded
//              and written by go.uber.org/zap, either as JSON lines or in a
//              human-readable console layout.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: zap backend, trace/audit levels and async buffer removed
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatConsole}).
//		WithName("calc").
//		WithCorrelationID(sessionID)
//
//	logger.Info("evaluating", log.Fields{"command": "COMBIN.CHOOSE"})
//
//	timer := logger.StartTimer("eval")
//	// ... evaluate
//	timer.Stop()
//
//	if err != nil {
//		logger.LogError(err) // level follows the error severity
//	}
package log
