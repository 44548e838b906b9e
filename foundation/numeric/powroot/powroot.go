// File: powroot.go
// Title: Generalized Power and Root
// Description: Power and root functions that return the real odd root of a
//              negative base instead of NaN.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package powroot extends pow to negative bases with odd-root exponents:
// Pow(-8, 1.0/3) is -2 where math.Pow returns NaN. Every other input is
// passed to the native power function of the working precision.
package powroot

import (
	"golang.org/x/exp/constraints"

	"github.com/msto63/numcore/foundation/numeric/classify"
	"github.com/msto63/numcore/foundation/numeric/internal/fp"
)

// Pow returns x**n. For a negative x and 0 < n < 1 whose reciprocal is an odd
// integer within the snapping epsilon, the real root is returned.
func Pow[T constraints.Float](x, n T) T {
	if x < 0 && n > 0 && n < 1 {
		inv := fp.Abs(1 / n)
		degree := fp.Round(inv)
		if fp.Abs(inv-degree) < fp.SnapEpsilon[T]() && classify.IsOddInteger(degree) {
			return Root(x, degree)
		}
	}
	return fp.Pow(x, n)
}

// Root returns the n-th root of x. A negative x with an odd integer degree
// has the negative real root; other negative cases yield NaN.
func Root[T constraints.Float](x, n T) T {
	if x < 0 && classify.IsOddInteger(n) {
		return -fp.Pow(-x, 1/n)
	}
	return fp.Pow(x, 1/n)
}
