// Package errors provides the module-level error constructors used across numcore.
//
// Package: errors
// Title: Standard Error Constructors for numcore Modules
// Description: Thin helpers over the core error package that stamp every error with
//              the module and operation that produced it, so the CLI and the logger
//              can report failures uniformly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-16 v0.2.0: Module set replaced by the numeric, config, i18n and calc modules
//
// Usage:
//
//	func ParseFloat64(s string) (float64, error) {
//		if !IsFloat64(s) {
//			return math.NaN(), errors.FormatError(errors.ModuleStrnum, s, "C-locale float64")
//		}
//		...
//	}
//
//	if errors.IsModuleError(err, errors.ModuleStrnum) {
//		// input problem, not a bug
//	}
package errors
