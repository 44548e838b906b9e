// File: objects.go
// Title: Built-in Command Objects
// Description: Registers the numeric objects ANGLE, TRIG, NUM, COMBIN, POW,
//              BITS and STR together with the session object CALC.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package calc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/msto63/numcore/foundation/core/config"
	mdwerror "github.com/msto63/numcore/foundation/core/error"
	"github.com/msto63/numcore/foundation/core/i18n"
	mdwlog "github.com/msto63/numcore/foundation/core/log"
	"github.com/msto63/numcore/foundation/numeric/analysis"
	"github.com/msto63/numcore/foundation/numeric/angle"
	"github.com/msto63/numcore/foundation/numeric/bitops"
	"github.com/msto63/numcore/foundation/numeric/classify"
	"github.com/msto63/numcore/foundation/numeric/combin"
	"github.com/msto63/numcore/foundation/numeric/powroot"
	"github.com/msto63/numcore/foundation/numeric/strnum"
	"github.com/msto63/numcore/foundation/numeric/trig"
)

var (
	floatOpts = []string{"precision"}
	trigOpts  = []string{"unit", "precision"}
	bitOpts   = []string{"width"}
)

// NewDefaultRegistry creates a registry with every built-in object, aliases
// and abbreviations enabled
func NewDefaultRegistry(logger *mdwlog.Logger) (*Registry, error) {
	r := NewRegistry(Options{Logger: logger, EnableAbbreviations: true, EnableAliases: true})
	for _, obj := range builtinObjects() {
		if err := r.RegisterObject(obj); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func builtinObjects() []*Object {
	return []*Object{
		angleObject(),
		trigObject(),
		numObject(),
		combinObject(),
		powObject(),
		bitsObject(),
		strObject(),
		calcObject(),
	}
}

func fn1(desc string, h HandlerFunc) *Method {
	return &Method{Description: desc, Usage: "x", MinArgs: 1, MaxArgs: 1, Options: floatOpts, Handler: h}
}

func fn2(desc, usage string, h HandlerFunc) *Method {
	return &Method{Description: desc, Usage: usage, MinArgs: 2, MaxArgs: 2, Options: floatOpts, Handler: h}
}

func angleObject() *Object {
	return &Object{
		Name:        "ANGLE",
		Description: "Angle unit conversion",
		Methods: map[string]*Method{
			"CONVERT": {
				Description: "Convert x between units; both default to the session unit",
				Usage:       "x",
				MinArgs:     1,
				MaxArgs:     1,
				Options:     []string{"from", "to", "precision"},
				Handler: func(ctx context.Context, c *Call) (interface{}, error) {
					from, err := c.Unit("from")
					if err != nil {
						return nil, err
					}
					to, err := c.Unit("to")
					if err != nil {
						return nil, err
					}
					return unary(
						func(x float32) float32 { return angle.Convert(x, from, to) },
						func(x float64) float64 { return angle.Convert(x, from, to) },
					)(ctx, c)
				},
			},
			"DEG2RAD":  fn1("Degrees to radians", unary(angle.DegToRad[float32], angle.DegToRad[float64])),
			"DEG2GRAD": fn1("Degrees to gradians", unary(angle.DegToGrad[float32], angle.DegToGrad[float64])),
			"RAD2DEG":  fn1("Radians to degrees", unary(angle.RadToDeg[float32], angle.RadToDeg[float64])),
			"RAD2GRAD": fn1("Radians to gradians", unary(angle.RadToGrad[float32], angle.RadToGrad[float64])),
			"GRAD2DEG": fn1("Gradians to degrees", unary(angle.GradToDeg[float32], angle.GradToDeg[float64])),
			"GRAD2RAD": fn1("Gradians to radians", unary(angle.GradToRad[float32], angle.GradToRad[float64])),
		},
	}
}

func trigMethod(desc string, f32 func(float32, angle.Unit) float32, f64 func(float64, angle.Unit) float64) *Method {
	return &Method{
		Description: desc,
		Usage:       "x",
		MinArgs:     1,
		MaxArgs:     1,
		Options:     trigOpts,
		Handler: func(ctx context.Context, c *Call) (interface{}, error) {
			unit, err := c.Unit("unit")
			if err != nil {
				return nil, err
			}
			return unary(
				func(x float32) float32 { return f32(x, unit) },
				func(x float64) float64 { return f64(x, unit) },
			)(ctx, c)
		},
	}
}

func trigObject() *Object {
	return &Object{
		Name:        "TRIG",
		Description: "Trigonometric functions with exact results at multiples of 90 degrees",
		Methods: map[string]*Method{
			"SIN": trigMethod("Sine of x in the given unit", trig.SinIn[float32], trig.SinIn[float64]),
			"COS": trigMethod("Cosine of x in the given unit", trig.CosIn[float32], trig.CosIn[float64]),
			"TAN": trigMethod("Tangent of x; NaN where the cosine is zero", trig.TanIn[float32], trig.TanIn[float64]),
		},
	}
}

func numObject() *Object {
	return &Object{
		Name:        "NUM",
		Description: "Number classification and analysis",
		Methods: map[string]*Method{
			"BOUND": fn2("Clamp n into [min, max]; nan leaves a side open", "n min max",
				ternary(classify.Bound[float32], classify.Bound[float64])).withArgs(3),
			"ISBOUNDED": fn2("Whether n lies in [min, max]", "n min max",
				predicate3(classify.IsBounded[float32], classify.IsBounded[float64])).withArgs(3),
			"ISINT":     fn1("Whether x has no fractional part", predicate(classify.IsInteger[float32], classify.IsInteger[float64])),
			"NORMALIZE": fn1("Snap x to the nearest integer within epsilon", unary(classify.Normalize[float32], classify.Normalize[float64])),
			"ISEVEN": {
				Description: "Whether the integer n is even",
				Usage:       "n",
				MinArgs:     1,
				MaxArgs:     1,
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					n, err := c.Int(0)
					if err != nil {
						return nil, err
					}
					return classify.IsEven(n), nil
				},
			},
			"ISODD": {
				Description: "Whether the integer n is odd",
				Usage:       "n",
				MinArgs:     1,
				MaxArgs:     1,
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					n, err := c.Int(0)
					if err != nil {
						return nil, err
					}
					return classify.IsOdd(n), nil
				},
			},
			"DIGITS": {
				Description: "Number of decimal digits of the integer n",
				Usage:       "n",
				MinArgs:     1,
				MaxArgs:     1,
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					if !strings.HasPrefix(strings.TrimSpace(c.Arg(0)), "-") {
						if u, err := strnum.ParseUint64(c.Arg(0)); err == nil {
							return classify.Digits(u), nil
						}
					}
					n, err := c.Int(0)
					if err != nil {
						return nil, err
					}
					return classify.Digits(n), nil
				},
			},
			"SLOPE": {
				Description: "Slope of the line through (x1, y1) and (x2, y2)",
				Usage:       "x1 x2 y1 y2",
				MinArgs:     4,
				MaxArgs:     4,
				Options:     floatOpts,
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					xs, err := c.Floats()
					if err != nil {
						return nil, err
					}
					single, err := c.Single()
					if err != nil {
						return nil, err
					}
					if single {
						return analysis.Slope(float32(xs[0]), float32(xs[1]), float32(xs[2]), float32(xs[3])), nil
					}
					return analysis.Slope(xs[0], xs[1], xs[2], xs[3]), nil
				},
			},
			"LN": fn1("Natural logarithm", unary(analysis.Ln[float32], analysis.Ln[float64])),
		},
	}
}

// withArgs fixes the argument count of a method built by fn1 or fn2
func (m *Method) withArgs(n int) *Method {
	m.MinArgs, m.MaxArgs = n, n
	return m
}

func logMethod(desc string, f32 func(float32, float32) (float32, int), f64 func(float64, float64) (float64, int)) *Method {
	return fn2(desc, "n r", func(_ context.Context, c *Call) (interface{}, error) {
		xs, err := c.Floats()
		if err != nil {
			return nil, err
		}
		single, err := c.Single()
		if err != nil {
			return nil, err
		}
		var (
			v    float64
			sign int
		)
		if single {
			v32, s := f32(float32(xs[0]), float32(xs[1]))
			v, sign = float64(v32), s
		} else {
			v, sign = f64(xs[0], xs[1])
		}
		if sign < 0 {
			return Text(fmt.Sprintf("%s (negative)", c.Numbers.Format(v, c.Settings.MaxFractionDigits))), nil
		}
		return v, nil
	})
}

func combinObject() *Object {
	return &Object{
		Name:        "COMBIN",
		Description: "Factorials, combinations and permutations",
		Methods: map[string]*Method{
			"FACT":      fn1("n!, or gamma(n+1) for non-integers", unary(combin.Factorial[float32], combin.Factorial[float64])),
			"CHOOSE":    fn2("Number of r-element subsets of n elements", "n r", binary(combin.Choose[float32], combin.Choose[float64])),
			"PICK":      fn2("Number of ordered r-element selections from n elements", "n r", binary(combin.Pick[float32], combin.Pick[float64])),
			"LOGCHOOSE": logMethod("Natural log of |C(n, r)|", combin.LogChoose[float32], combin.LogChoose[float64]),
			"LOGPICK":   logMethod("Natural log of |P(n, r)|", combin.LogPick[float32], combin.LogPick[float64]),
		},
	}
}

func powObject() *Object {
	return &Object{
		Name:        "POW",
		Description: "Powers and real roots",
		Methods: map[string]*Method{
			"POW":  fn2("x to the power n; odd roots of negative x stay real", "x n", binary(powroot.Pow[float32], powroot.Pow[float64])),
			"ROOT": fn2("n-th root of x; odd roots of negative x stay real", "x n", binary(powroot.Root[float32], powroot.Root[float64])),
		},
	}
}

func bitMethod(desc string, f bitFuncs) *Method {
	return &Method{Description: desc, Usage: "x", MinArgs: 1, MaxArgs: 1, Options: bitOpts, Handler: bitHandler(f)}
}

func rotateMethod(desc string, one bitFuncs, n bitFuncsN) *Method {
	return &Method{Description: desc, Usage: "x [count]", MinArgs: 1, MaxArgs: 2, Options: bitOpts, Handler: rotateHandler(one, n)}
}

func bitsObject() *Object {
	return &Object{
		Name:        "BITS",
		Description: "Bit manipulation on 8, 16, 32 or 64 bit unsigned values",
		Methods: map[string]*Method{
			"SHL": bitMethod("Shift left by one bit",
				bitFuncs{bitops.ShiftLeft[uint8], bitops.ShiftLeft[uint16], bitops.ShiftLeft[uint32], bitops.ShiftLeft[uint64]}),
			"SHR": bitMethod("Shift right by one bit",
				bitFuncs{bitops.ShiftRight[uint8], bitops.ShiftRight[uint16], bitops.ShiftRight[uint32], bitops.ShiftRight[uint64]}),
			"ROTL": rotateMethod("Rotate left by one bit or by count",
				bitFuncs{bitops.RotateLeft[uint8], bitops.RotateLeft[uint16], bitops.RotateLeft[uint32], bitops.RotateLeft[uint64]},
				bitFuncsN{bitops.RotateLeftN[uint8], bitops.RotateLeftN[uint16], bitops.RotateLeftN[uint32], bitops.RotateLeftN[uint64]}),
			"ROTR": rotateMethod("Rotate right by one bit or by count",
				bitFuncs{bitops.RotateRight[uint8], bitops.RotateRight[uint16], bitops.RotateRight[uint32], bitops.RotateRight[uint64]},
				bitFuncsN{bitops.RotateRightN[uint8], bitops.RotateRightN[uint16], bitops.RotateRightN[uint32], bitops.RotateRightN[uint64]}),
			"NOT": bitMethod("Ones' complement",
				bitFuncs{bitops.OnesComplement[uint8], bitops.OnesComplement[uint16], bitops.OnesComplement[uint32], bitops.OnesComplement[uint64]}),
			"NEG": bitMethod("Two's complement",
				bitFuncs{bitops.TwosComplement[uint8], bitops.TwosComplement[uint16], bitops.TwosComplement[uint32], bitops.TwosComplement[uint64]}),
			"FLIPB": bitMethod("Reverse the bytes between the lowest and highest non-zero byte",
				bitFuncs{bitops.FlipBytes[uint8], bitops.FlipBytes[uint16], bitops.FlipBytes[uint32], bitops.FlipBytes[uint64]}),
			"FLIPW": bitMethod("Reverse the 16-bit words between the lowest and highest non-zero word",
				bitFuncs{bitops.FlipWords[uint8], bitops.FlipWords[uint16], bitops.FlipWords[uint32], bitops.FlipWords[uint64]}),
			"WIDTH": {
				Description: "Number of bits of the selected width",
				Options:     bitOpts,
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					width, err := c.Width()
					if err != nil {
						return nil, err
					}
					switch width {
					case 8:
						return bitops.Width[uint8](), nil
					case 16:
						return bitops.Width[uint16](), nil
					case 32:
						return bitops.Width[uint32](), nil
					}
					return bitops.Width[uint64](), nil
				},
			},
		},
	}
}

func localeFormat(c *Call) (*i18n.NumberFormat, error) {
	if locale, ok := c.Command.Option("locale"); ok {
		return i18n.NewNumberFormat(locale)
	}
	return c.Numbers, nil
}

func strObject() *Object {
	return &Object{
		Name:        "STR",
		Description: "C-locale and locale-aware number text",
		Methods: map[string]*Method{
			"VALID": {
				Description: "Whether the whole text is a number of the given kind",
				Usage:       "text",
				MinArgs:     1,
				MaxArgs:     1,
				Options:     []string{"kind"},
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					kind, err := c.Kind()
					if err != nil {
						return nil, err
					}
					return strnum.Valid(c.Arg(0), kind), nil
				},
			},
			"PARSE": {
				Description: "Parse text as a number of the given kind in the C locale",
				Usage:       "text",
				MinArgs:     1,
				MaxArgs:     1,
				Options:     []string{"kind"},
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					kind, err := c.Kind()
					if err != nil {
						return nil, err
					}
					return strnum.Parse(c.Arg(0), kind)
				},
			},
			"FORMAT": {
				Description: "Format x with the separators of a locale",
				Usage:       "x",
				MinArgs:     1,
				MaxArgs:     1,
				Options:     []string{"locale", "digits"},
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					x, err := c.Float(0)
					if err != nil {
						return nil, err
					}
					nf, err := localeFormat(c)
					if err != nil {
						return nil, err
					}
					digits := c.Settings.MaxFractionDigits
					if v, ok := c.Command.Option("digits"); ok {
						n, err := strnum.ParseInt64(v)
						if err != nil || n < 0 {
							return nil, c.optionError("digits", v, "non-negative integer")
						}
						digits = int(n)
					}
					return Text(nf.Format(x, digits)), nil
				},
			},
			"READ": {
				Description: "Parse text written with the separators of a locale",
				Usage:       "text",
				MinArgs:     1,
				MaxArgs:     1,
				Options:     []string{"locale"},
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					nf, err := localeFormat(c)
					if err != nil {
						return nil, err
					}
					return nf.Parse(c.Arg(0))
				},
			},
		},
	}
}

func calcObject() *Object {
	return &Object{
		Name:        "CALC",
		Description: "Session commands",
		Methods: map[string]*Method{
			"LIST": {
				Description: "List objects and their methods",
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					reg := c.Engine.Registry()
					lines := lo.Map(reg.ObjectNames(), func(name string, _ int) string {
						return fmt.Sprintf("%-7s %s", name, strings.Join(reg.MethodNames(name), " "))
					})
					return Text(strings.Join(lines, "\n")), nil
				},
			},
			"HELP": {
				Description: "Describe an object or an OBJECT.METHOD command",
				Usage:       "[name]",
				MaxArgs:     1,
				Handler:     helpHandler,
			},
			"ALIAS": {
				Description: "Define name as a shorthand for a command prefix, or list aliases",
				Usage:       `[name "command"]`,
				MaxArgs:     2,
				Handler: func(_ context.Context, c *Call) (interface{}, error) {
					reg := c.Engine.Registry()
					switch c.NArgs() {
					case 0:
						aliases := reg.Aliases()
						names := lo.Keys(aliases)
						sort.Strings(names)
						lines := lo.Map(names, func(n string, _ int) string { return n + " = " + aliases[n] })
						return Text(strings.Join(lines, "\n")), nil
					case 1:
						return nil, c.argError(0, `name "command"`)
					}
					if err := reg.RegisterAlias(c.Arg(0), c.Arg(1)); err != nil {
						return nil, err
					}
					return Text(strings.ToUpper(c.Arg(0)) + " = " + c.Arg(1)), nil
				},
			},
			"SET": {
				Description: "Change or show session settings",
				Options:     []string{"precision", "unit", "locale", "digits"},
				Handler:     setHandler,
			},
		},
	}
}

func helpHandler(_ context.Context, c *Call) (interface{}, error) {
	reg := c.Engine.Registry()
	if c.NArgs() == 0 {
		lines := lo.Map(reg.ObjectNames(), func(name string, _ int) string {
			obj, _ := reg.Object(name)
			return fmt.Sprintf("%-7s %s", name, obj.Description)
		})
		return Text(strings.Join(lines, "\n")), nil
	}

	object, method, hasMethod := strings.Cut(strings.ToUpper(c.Arg(0)), ".")
	if hasMethod {
		_, m, err := reg.Lookup(object, method)
		if err != nil {
			return nil, err
		}
		cmd := &Command{Object: object, Method: m.Name}
		return Text(usage(cmd, m) + "\n  " + m.Description), nil
	}

	obj, ok := reg.Object(object)
	if !ok {
		return nil, mdwerror.New(fmt.Sprintf("unknown object: %s", object)).
			WithCode(mdwerror.CodeUnknownCommand).
			WithOperation("calc.HELP")
	}
	lines := []string{obj.Name + ": " + obj.Description}
	for _, name := range reg.MethodNames(obj.Name) {
		lines = append(lines, fmt.Sprintf("  %-9s %s", name, obj.Methods[name].Description))
	}
	return Text(strings.Join(lines, "\n")), nil
}

func setHandler(_ context.Context, c *Call) (interface{}, error) {
	s := c.Engine.Settings()

	if _, ok := c.Command.Option("precision"); ok {
		single, err := c.Single()
		if err != nil {
			return nil, err
		}
		s.Precision = lo.Ternary(single, 32, 64)
	}
	if _, ok := c.Command.Option("unit"); ok {
		unit, err := c.Unit("unit")
		if err != nil {
			return nil, err
		}
		s.Unit = unit
	}
	if v, ok := c.Command.Option("locale"); ok {
		s.Locale = v
	}
	if v, ok := c.Command.Option("digits"); ok {
		n, err := strnum.ParseInt64(v)
		if err != nil || n < 0 || n > config.MaxFractionDigits {
			return nil, c.optionError("digits", v, fmt.Sprintf("integer in [0, %d]", config.MaxFractionDigits))
		}
		s.MaxFractionDigits = int(n)
	}

	if err := c.Engine.SetSettings(s); err != nil {
		return nil, err
	}
	s = c.Engine.Settings()
	return Text(fmt.Sprintf("locale=%s precision=%d unit=%s digits=%d", s.Locale, s.Precision, s.Unit, s.MaxFractionDigits)), nil
}
