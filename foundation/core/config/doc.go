// Package config loads numcore settings.
//
// Package: config
// Title: numcore Settings
// Description: Typed settings for numeric precision, angle unit, display locale
//              and logging. Settings come from built-in defaults, an optional TOML
//              or YAML file and NUMCORE_* environment variables, in that order.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Untyped key store replaced by the Settings struct
//
// File formats are detected from the extension (.toml, .yaml, .yml). Unknown
// keys are rejected so that typos do not silently fall back to defaults.
//
// Example TOML:
//
//	locale     = "de-DE"
//	precision  = "float64"
//	angle_unit = "deg"
//
//	[display]
//	max_fraction_digits = 10
//
//	[log]
//	level  = "warn"
//	format = "console"
//
// Usage:
//
//	settings, err := config.Load(path)      // defaults + file + environment
//	if err != nil { ... }
//	fmt.Println(settings.AngleUnit)
package config
