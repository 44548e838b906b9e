// File: trig.go
// Title: Trigonometry with Epsilon Snapping
// Description: Sine, cosine and tangent in radians, degrees and gradians whose
//              results are snapped to 0 and ±1 when the native function misses
//              them by less than the snapping epsilon.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package trig provides trigonometric functions that return exact 0, 1 and -1
// at the angles where they mathematically occur, e.g. Sin(π) == 0 and
// SinDeg(90) == 1, and NaN for the tangent at odd multiples of a right angle.
package trig

import (
	"golang.org/x/exp/constraints"

	"github.com/msto63/numcore/foundation/numeric/angle"
	"github.com/msto63/numcore/foundation/numeric/internal/fp"
)

// Sin returns the sine of x radians
func Sin[T constraints.Float](x T) T {
	o := fp.Sin(x)
	eps := fp.SnapEpsilon[T]()

	if 1-fp.Abs(o) < eps {
		return fp.Round(o)
	}
	if fp.Abs(o) < eps {
		return 0
	}
	return o
}

// Cos returns the cosine of x radians
func Cos[T constraints.Float](x T) T {
	o := fp.Cos(x)
	if fp.Abs(o) < fp.SnapEpsilon[T]() {
		return 0
	}
	return o
}

// Tan returns the tangent of x radians, or NaN where the cosine snaps to 0
func Tan[T constraints.Float](x T) T {
	if Cos(x) == 0 {
		return fp.NaN[T]()
	}
	o := fp.Tan(x)
	if fp.Abs(o) < fp.SnapEpsilon[T]() {
		return 0
	}
	return o
}

func SinDeg[T constraints.Float](x T) T { return Sin(angle.DegToRad(x)) }
func CosDeg[T constraints.Float](x T) T { return Cos(angle.DegToRad(x)) }
func TanDeg[T constraints.Float](x T) T { return Tan(angle.DegToRad(x)) }

func SinGrad[T constraints.Float](x T) T { return Sin(angle.GradToRad(x)) }
func CosGrad[T constraints.Float](x T) T { return Cos(angle.GradToRad(x)) }
func TanGrad[T constraints.Float](x T) T { return Tan(angle.GradToRad(x)) }

// SinIn returns the sine of x measured in unit
func SinIn[T constraints.Float](x T, unit angle.Unit) T {
	return Sin(angle.Convert(x, unit, angle.Radians))
}

// CosIn returns the cosine of x measured in unit
func CosIn[T constraints.Float](x T, unit angle.Unit) T {
	return Cos(angle.Convert(x, unit, angle.Radians))
}

// TanIn returns the tangent of x measured in unit
func TanIn[T constraints.Float](x T, unit angle.Unit) T {
	return Tan(angle.Convert(x, unit, angle.Radians))
}
