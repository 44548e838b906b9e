// File: fp.go
// Title: Floating-Point Precision Kernel
// Description: Epsilons, NaN handling and elementary functions dispatched on the
//              working precision of a generic float type. float32 arguments are
//              evaluated in single precision with chewxy/math32 so that a float32
//              caller never sees double-precision intermediate results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package fp is the shared precision kernel of the numeric packages.
package fp

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

const (
	// Epsilon32 is the distance from 1.0 to the next float32 (FLT_EPSILON)
	Epsilon32 = 0x1p-23

	// Epsilon64 is the distance from 1.0 to the next float64 (DBL_EPSILON)
	Epsilon64 = 0x1p-52
)

// Is32 reports whether T is a single-precision type. Named types are
// classified by their underlying type.
func Is32[T constraints.Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Epsilon returns the machine epsilon of T
func Epsilon[T constraints.Float]() T {
	if Is32[T]() {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// SnapEpsilon is the tolerance used when snapping transcendental results to
// 0, ±1 or an integer. It is the single-precision epsilon for every T: the
// error of sin, cos, tan and 1/x near exact values routinely exceeds the
// double-precision epsilon.
func SnapEpsilon[T constraints.Float]() T {
	return T(Epsilon32)
}

// NaN returns a quiet NaN of type T
func NaN[T constraints.Float]() T {
	return T(math.NaN())
}

// IsNaN reports whether x is NaN
func IsNaN[T constraints.Float](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity, per the sign rules of math.IsInf
func IsInf[T constraints.Float](x T, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite reports whether x is neither NaN nor an infinity
func IsFinite[T constraints.Float](x T) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// Abs returns |x|
func Abs[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

// Floor returns the greatest integer value not above x
func Floor[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Floor(float32(x)))
	}
	return T(math.Floor(float64(x)))
}

// Round rounds half away from zero. The result is exact in either precision.
func Round[T constraints.Float](x T) T {
	return T(math.Round(float64(x)))
}

// Mod returns the floating-point remainder of x/y with the sign of x
func Mod[T constraints.Float](x, y T) T {
	if Is32[T]() {
		return T(math32.Mod(float32(x), float32(y)))
	}
	return T(math.Mod(float64(x), float64(y)))
}

// Sin returns the sine of x radians
func Sin[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x radians
func Cos[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of x radians
func Tan[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

// Pow returns x**y
func Pow[T constraints.Float](x, y T) T {
	if Is32[T]() {
		return T(math32.Pow(float32(x), float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

// Log returns the natural logarithm of x
func Log[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Log(float32(x)))
	}
	return T(math.Log(float64(x)))
}

// Log10 returns the decimal logarithm of x
func Log10[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Log10(float32(x)))
	}
	return T(math.Log10(float64(x)))
}

// Log1p returns ln(1+x), accurate for x near zero
func Log1p[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Log1p(float32(x)))
	}
	return T(math.Log1p(float64(x)))
}

// Exp returns e**x
func Exp[T constraints.Float](x T) T {
	if Is32[T]() {
		return T(math32.Exp(float32(x)))
	}
	return T(math.Exp(float64(x)))
}

// Gamma evaluates Γ(x) in double precision and narrows the result to T
func Gamma[T constraints.Float](x T) T {
	return T(math.Gamma(float64(x)))
}

// Lgamma returns ln|Γ(x)| narrowed to T and the sign of Γ(x)
func Lgamma[T constraints.Float](x T) (T, int) {
	lg, sign := math.Lgamma(float64(x))
	return T(lg), sign
}

// ExactIntLimit is the magnitude above which T can no longer represent every
// integer (2^24 for float32, 2^53 for float64)
func ExactIntLimit[T constraints.Float]() T {
	if Is32[T]() {
		return T(1 << 24)
	}
	return T(1 << 53)
}
