package calc

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/msto63/numcore/foundation/core/config"
	mdwerror "github.com/msto63/numcore/foundation/core/error"
	mdwerrors "github.com/msto63/numcore/foundation/core/errors"
	"github.com/msto63/numcore/foundation/core/i18n"
	"github.com/msto63/numcore/foundation/numeric/angle"
	"github.com/msto63/numcore/foundation/numeric/strnum"
)

// Settings are the session defaults a call falls back to when an option is
// not given
type Settings struct {
	Locale            string
	Precision         int // 32 or 64
	Unit              angle.Unit
	MaxFractionDigits int
}

// DefaultSettings mirrors config.DefaultSettings
func DefaultSettings() Settings {
	s, _ := SettingsFrom(config.DefaultSettings())
	return s
}

// SettingsFrom converts validated configuration settings
func SettingsFrom(cfg config.Settings) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	unit, err := angle.ParseUnit(cfg.AngleUnit)
	if err != nil {
		return Settings{}, err
	}
	precision := 64
	if cfg.Precision == "float32" {
		precision = 32
	}
	return Settings{
		Locale:            cfg.Locale,
		Precision:         precision,
		Unit:              unit,
		MaxFractionDigits: cfg.Display.MaxFractionDigits,
	}, nil
}

// Call is a command bound to its method and the session settings
type Call struct {
	Command  *Command
	Method   *Method
	Settings Settings
	Numbers  *i18n.NumberFormat
	Engine   *Engine
}

// NArgs returns the number of positional arguments
func (c *Call) NArgs() int { return len(c.Command.Args) }

func (c *Call) argError(i int, expected string) *mdwerror.Error {
	return mdwerrors.InputError(mdwerrors.ModuleCalc, c.Command.Name(), c.Command.Args[i], expected).
		WithCode(mdwerror.CodeInvalidArgument).
		WithDetail("argument", i+1)
}

// Arg returns the raw positional argument i
func (c *Call) Arg(i int) string { return c.Command.Args[i] }

// Float parses argument i. C-locale syntax is tried first, then the
// session locale, so "2,5" is accepted in a German session.
func (c *Call) Float(i int) (float64, error) {
	s := c.Command.Args[i]
	if v, err := strnum.ParseFloat64(s); err == nil {
		return v, nil
	}
	if c.Numbers != nil && c.Numbers.DecimalSeparator() != "." {
		if v, err := c.Numbers.Parse(s); err == nil {
			return v, nil
		}
	}
	return 0, c.argError(i, "number")
}

// Floats parses every positional argument
func (c *Call) Floats() ([]float64, error) {
	out := make([]float64, c.NArgs())
	for i := range out {
		v, err := c.Float(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Int parses argument i as a signed 64-bit integer
func (c *Call) Int(i int) (int64, error) {
	v, err := strnum.ParseInt64(c.Command.Args[i])
	if err != nil {
		return 0, c.argError(i, "integer")
	}
	return v, nil
}

// Uint parses argument i as an unsigned value that must fit width bits
func (c *Call) Uint(i, width int) (uint64, error) {
	v, err := strnum.ParseUint64(c.Command.Args[i])
	if err != nil {
		return 0, c.argError(i, "unsigned integer")
	}
	if width < 64 && v>>uint(width) != 0 {
		return 0, mdwerrors.RangeError(mdwerrors.ModuleCalc, c.Command.Name(), c.Command.Args[i], 0, uint64(1)<<uint(width)-1)
	}
	return v, nil
}

// Single reports whether the call evaluates in float32
func (c *Call) Single() (bool, error) {
	p := c.Settings.Precision
	if v, ok := c.Command.Option("precision"); ok {
		switch strings.ToLower(v) {
		case "32", "float32", "single", "float":
			p = 32
		case "64", "float64", "double":
			p = 64
		default:
			return false, c.optionError("precision", v, "32 or 64")
		}
	}
	return p == 32, nil
}

// Unit returns the angle unit of option key, or the session unit
func (c *Call) Unit(key string) (angle.Unit, error) {
	v, ok := c.Command.Option(key)
	if !ok {
		return c.Settings.Unit, nil
	}
	u, err := angle.ParseUnit(v)
	if err != nil {
		return 0, c.optionError(key, v, "deg, rad or grad")
	}
	return u, nil
}

// Widths are the accepted values of the width option
var Widths = []int{8, 16, 32, 64}

// Width returns the bit width option, 64 by default
func (c *Call) Width() (int, error) {
	v, ok := c.Command.Option("width")
	if !ok {
		return 64, nil
	}
	n, err := strnum.ParseInt64(v)
	if err != nil || !lo.Contains(Widths, int(n)) {
		return 0, c.optionError("width", v, "8, 16, 32 or 64")
	}
	return int(n), nil
}

// Kind returns the strnum kind option, double by default
func (c *Call) Kind() (strnum.Kind, error) {
	v, ok := c.Command.Option("kind")
	if !ok {
		return strnum.Float64, nil
	}
	k, err := strnum.ParseKind(v)
	if err != nil {
		names := lo.Map(strnum.Kinds(), func(k strnum.Kind, _ int) string { return k.String() })
		return 0, c.optionError("kind", v, strings.Join(names, ", "))
	}
	return k, nil
}

func (c *Call) optionError(key, value, expected string) *mdwerror.Error {
	return mdwerrors.InputError(mdwerrors.ModuleCalc, c.Command.Name(), fmt.Sprintf("%s=%s", key, value), expected).
		WithCode(mdwerror.CodeInvalidArgument).
		WithDetail("option", key)
}
