// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across numcore so that callers can
//              branch on the failure class without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced service codes with parser, config and command codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing and validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Command evaluation
	CodeUnknownCommand  Code = "UNKNOWN_COMMAND"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeCancelled       Code = "CANCELLED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeUnknownCommand, CodeInvalidArgument, CodeCancelled:
		return "command"
	default:
		return "generic"
	}
}
