// File: standards.go
// Title: Error Standards for numcore Modules
// Description: Provides standardized error constructors and module identifiers so
//              that every layer reports failures with the same shape.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-16 v0.2.0: Module identifiers and codes for the numcore packages

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStrnum = "strnum"
	ModuleConfig = "config"
	ModuleI18n   = "i18n"
	ModuleCalc   = "calc"
)

// InputError reports an input that is syntactically fine but not acceptable
// to the operation, e.g. a missing argument or an unknown option value.
func InputError(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		}).
		WithOperation(module + "." + operation)
}

// FormatError reports input that could not be parsed at all
func FormatError(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid format in %s: %v", module, input)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithDetails(map[string]interface{}{
			"module":          module,
			"input":           input,
			"expected_format": expectedFormat,
		})
}

// RangeError reports a value outside the representable or permitted range
func RangeError(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("%s.%s: value %v out of range [%v, %v]", module, operation, value, min, max)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"value":     value,
			"min":       min,
			"max":       max,
		}).
		WithOperation(module + "." + operation)
}

// OperationError wraps a failure of a whole operation, keeping the cause's code
// when the cause is already structured.
func OperationError(module, operation string, cause error, context map[string]interface{}) *mdwerror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	err := mdwerror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation))
	if err == nil {
		err = mdwerror.New(fmt.Sprintf("%s.%s failed", module, operation))
	}
	if err.Code() == mdwerror.CodeUnknown {
		err = err.WithCode(mdwerror.CodeInternal)
	}
	return err.WithDetails(context).WithOperation(module + "." + operation)
}

// IsModuleError checks if an error was produced by the given module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from an error
func GetErrorModule(err error) string {
	inner, ok := err.(*mdwerror.Error)
	if !ok {
		return ""
	}
	if module, ok := inner.Details()["module"].(string); ok {
		return module
	}
	return ""
}

// GetErrorOperation extracts the operation name from an error
func GetErrorOperation(err error) string {
	if inner, ok := err.(*mdwerror.Error); ok {
		return inner.Operation()
	}
	return ""
}
