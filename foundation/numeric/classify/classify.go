// File: classify.go
// Title: Number Classification
// Description: Bounding, integer and parity tests, epsilon normalization and
//              decimal digit counting for generic numeric types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package classify answers questions about a single number: whether it lies
// within bounds, whether it is integral, even or odd, and how many decimal
// digits it has. None of the functions panic; undefined combinations yield
// false or leave the value unchanged.
package classify

import (
	"golang.org/x/exp/constraints"

	"github.com/msto63/numcore/foundation/numeric/internal/fp"
)

// Bound clamps n into [min, max]. A NaN bound leaves that side open. When
// min > max, min wins.
func Bound[T constraints.Float](n, min, max T) T {
	o := n
	if !fp.IsNaN(max) && n > max {
		o = max
	}
	if !fp.IsNaN(min) && n < min {
		o = min
	}
	return o
}

// IsBounded reports whether n lies within [min, max]. A NaN bound is open;
// if both bounds are NaN, if n is NaN or if max < min the answer is false.
func IsBounded[T constraints.Float](n, min, max T) bool {
	minOpen, maxOpen := fp.IsNaN(min), fp.IsNaN(max)

	switch {
	case max < min, fp.IsNaN(n), minOpen && maxOpen:
		return false
	case maxOpen:
		return n >= min
	case minOpen:
		return n <= max
	default:
		return n >= min && n <= max
	}
}

// IsInteger reports whether n has no fractional part. Infinities and NaN are
// not integers.
func IsInteger[T constraints.Float](n T) bool {
	return n == 0 || fp.Mod(n, fp.Floor(n)) == 0
}

// IsEven reports whether n is divisible by two; zero is even
func IsEven[I constraints.Integer](n I) bool {
	return n%2 == 0
}

// IsOdd is the complement of IsEven
func IsOdd[I constraints.Integer](n I) bool {
	return !IsEven(n)
}

// Normalize snaps n to the nearest integer when it is within the machine
// epsilon of T, and returns it unchanged otherwise.
func Normalize[T constraints.Float](n T) T {
	r := fp.Round(n)
	if fp.Abs(r-n) < fp.Epsilon[T]() {
		return r
	}
	return n
}

// IsOddInteger reports whether the float n is an odd integer
func IsOddInteger[T constraints.Float](n T) bool {
	return IsInteger(n) && fp.Mod(n, 2) != 0
}

// IsNonNegativeInteger reports whether n is an integer >= 0
func IsNonNegativeInteger[T constraints.Float](n T) bool {
	return n >= 0 && IsInteger(n)
}
