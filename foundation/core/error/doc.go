// Package error provides the structured error type used by the numcore supporting layers.
//
// Package: error
// Title: numcore Error Handling
// Description: Structured errors with codes, severity and detail maps. The numeric
//              packages themselves never return errors (they signal with NaN, 0 or
//              false); this package serves the parser, configuration, locale and
//              command layers that sit on top of them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Reduced to the numcore code set, dropped user/request context
//
// Usage:
//
//	err := mdwerror.New("value does not fit width").
//		WithCode(mdwerror.CodeValueOutOfRange).
//		WithOperation("calc.bits").
//		WithDetail("width", 8)
//
//	if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//		// handle
//	}
//
// Errors created with Wrap keep their cause, so errors.Is and errors.As from the
// standard library see through them.
package error
