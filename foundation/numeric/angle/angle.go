// File: angle.go
// Title: Angle Conversion
// Description: Conversions between degrees, radians and gradians
//              (180° = π rad = 200 grad) for any floating-point type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package angle converts angles between degrees, radians and gradians.
// Every conversion is a single multiplication by a fixed ratio, so
// infinities and NaN pass through unchanged.
package angle

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	degToRad  = math.Pi / 180
	degToGrad = 10.0 / 9.0
	radToDeg  = 180 / math.Pi
	radToGrad = 200 / math.Pi
	gradToDeg = 9.0 / 10.0
	gradToRad = math.Pi / 200
)

func DegToRad[T constraints.Float](x T) T  { return x * T(degToRad) }
func DegToGrad[T constraints.Float](x T) T { return x * T(degToGrad) }
func RadToDeg[T constraints.Float](x T) T  { return x * T(radToDeg) }
func RadToGrad[T constraints.Float](x T) T { return x * T(radToGrad) }
func GradToDeg[T constraints.Float](x T) T { return x * T(gradToDeg) }
func GradToRad[T constraints.Float](x T) T { return x * T(gradToRad) }
