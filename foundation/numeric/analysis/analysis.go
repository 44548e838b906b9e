// File: analysis.go
// Title: Elementary Analysis Helpers
// Description: Slope of a secant between two points and a natural logarithm
//              routed through the base-10 logarithm.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package analysis holds small helpers used when plotting and inspecting
// sampled functions.
package analysis

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/msto63/numcore/foundation/numeric/internal/fp"
)

// Slope returns (y2-y1)/(x2-x1). A rise within epsilon is a flat line and
// yields 0 even for coincident x values; a run within epsilon with a real
// rise is vertical and yields NaN. Any NaN input yields NaN.
func Slope[T constraints.Float](x1, x2, y1, y2 T) T {
	if fp.IsNaN(x1) || fp.IsNaN(x2) || fp.IsNaN(y1) || fp.IsNaN(y2) {
		return fp.NaN[T]()
	}

	eps := fp.Epsilon[T]()
	dy := y2 - y1
	if fp.Abs(dy) < eps {
		return 0
	}
	dx := x2 - x1
	if fp.Abs(dx) < eps {
		return fp.NaN[T]()
	}
	return dy / dx
}

// Ln returns the natural logarithm of n as log10(n)/log10(e)
func Ln[T constraints.Float](n T) T {
	return fp.Log10(n) / T(math.Log10E)
}
