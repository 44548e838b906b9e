// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels let the logger pick a level for an error without
//              knowing where it came from.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.1.1: Code mapping reduced to the numcore code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks bad user input that the caller is expected to correct
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific class
	SeverityMedium

	// SeverityHigh marks failures that stop a command or the program start
	SeverityHigh

	// SeverityCritical marks internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidInput, CodeUnknownCommand, CodeInvalidArgument:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
