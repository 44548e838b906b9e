// File: validation.go
// Title: Settings Validation
// Description: Validates settings and normalizes accepted aliases to their
//              canonical spelling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of rule based validation
// - 2026-10-16 v0.2.0: Field checks for Settings

package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	mdwlog "github.com/msto63/numcore/foundation/core/log"
)

// MaxFractionDigits is the largest display precision that still carries
// information for a float64
const MaxFractionDigits = 17

var precisionAliases = map[string]string{
	"float32": "float32", "32": "float32", "single": "float32",
	"float64": "float64", "64": "float64", "double": "float64",
}

var angleUnitAliases = map[string]string{
	"deg": "deg", "degree": "deg", "degrees": "deg",
	"rad": "rad", "radian": "rad", "radians": "rad",
	"grad": "grad", "gradian": "grad", "gradians": "grad", "gon": "grad",
}

// Validate checks every field, rewrites aliases to canonical values and
// reports all problems at once.
func (s *Settings) Validate() error {
	var problems []string

	if tag, err := language.Parse(s.Locale); err != nil {
		problems = append(problems, fmt.Sprintf("locale %q is not a BCP 47 tag", s.Locale))
	} else {
		s.Locale = tag.String()
	}

	if p, ok := precisionAliases[strings.ToLower(s.Precision)]; ok {
		s.Precision = p
	} else {
		problems = append(problems, fmt.Sprintf("precision %q must be float32 or float64", s.Precision))
	}

	if u, ok := angleUnitAliases[strings.ToLower(s.AngleUnit)]; ok {
		s.AngleUnit = u
	} else {
		problems = append(problems, fmt.Sprintf("angle_unit %q must be deg, rad or grad", s.AngleUnit))
	}

	if d := s.Display.MaxFractionDigits; d < 0 || d > MaxFractionDigits {
		problems = append(problems, fmt.Sprintf("display.max_fraction_digits %d must be within [0, %d]", d, MaxFractionDigits))
	}

	if level, err := mdwlog.ParseLevel(s.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q is unknown", s.Log.Level))
	} else {
		s.Log.Level = level.String()
	}

	if format, err := mdwlog.ParseFormat(s.Log.Format); err != nil {
		problems = append(problems, fmt.Sprintf("log.format %q is unknown", s.Log.Format))
	} else {
		s.Log.Format = format.String()
	}

	if len(problems) == 0 {
		return nil
	}
	return mdwerror.New("invalid settings: " + strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", problems)
}
