// File: env.go
// Title: Environment Overrides
// Description: Applies PREFIX_* environment variables on top of loaded settings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Environment lookup with caching inside Config
// - 2026-10-16 v0.2.0: Explicit overrides for the Settings fields

package config

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields of settings from environment variables named
// PREFIX_LOCALE, PREFIX_PRECISION, PREFIX_ANGLE_UNIT,
// PREFIX_DISPLAY_MAX_FRACTION_DIGITS, PREFIX_LOG_LEVEL and PREFIX_LOG_FORMAT.
func ApplyEnv(settings *Settings, prefix string, lookup LookupFunc) error {
	key := func(name string) string {
		if prefix == "" {
			return name
		}
		return strings.ToUpper(prefix) + "_" + name
	}

	strs := map[string]*string{
		"LOCALE":     &settings.Locale,
		"PRECISION":  &settings.Precision,
		"ANGLE_UNIT": &settings.AngleUnit,
		"LOG_LEVEL":  &settings.Log.Level,
		"LOG_FORMAT": &settings.Log.Format,
	}
	for name, target := range strs {
		if value, ok := lookup(key(name)); ok && strings.TrimSpace(value) != "" {
			*target = strings.TrimSpace(value)
		}
	}

	name := key("DISPLAY_MAX_FRACTION_DIGITS")
	if value, ok := lookup(name); ok && strings.TrimSpace(value) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return mdwerror.Wrap(err, "invalid integer in environment").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("variable", name).
				WithDetail("value", value)
		}
		settings.Display.MaxFractionDigits = n
	}
	return nil
}
