// File: combin.go
// Title: Factorial, Binomial Coefficient and Permutation Count
// Description: Combinatorial counts for floating-point arguments. Integer
//              arguments use identities, a product of ratios or, for very large
//              arguments, Stirling's series; other arguments use the log-gamma
//              extension.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package combin

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/msto63/numcore/foundation/numeric/classify"
	"github.com/msto63/numcore/foundation/numeric/internal/fp"
	"github.com/msto63/numcore/foundation/numeric/powroot"
)

// StirlingThreshold is the factorial argument above which Choose and Pick
// leave the product form for Stirling's series
const StirlingThreshold = 1e7

// stirlingMinimum is the smallest factorial argument for which the two-term
// Stirling series is accurate to double precision
const stirlingMinimum = 1e4

const halfLog2Pi = 0.91893853320467274178032973640561763986139747363778 // ½·ln(2π)

// Factorial returns n!. Negative integers yield NaN; non-integers yield
// Γ(n+1). Results for non-negative integers are rounded to the nearest
// integer and overflow to +Inf.
func Factorial[T constraints.Float](n T) T {
	switch {
	case n == 0:
		return 1
	case n < 0 && classify.IsInteger(n):
		return fp.NaN[T]()
	case classify.IsNonNegativeInteger(n):
		return fp.Round(fp.Gamma(n + 1))
	default:
		return fp.Gamma(n + 1)
	}
}

// Choose returns the binomial coefficient C(n, r).
//
// For non-negative integers the identities C(n,n) = C(n,0) = 1,
// C(n,1) = C(n,n-1) = n, C(n,r>n) = 0 and C(n,2) = n(n-1)/2 are applied
// first. When the larger of r and n-r exceeds StirlingThreshold the result is
// computed from Stirling's series; otherwise from the product Π(1 + k/i) over
// the smaller of r and n-r. Any other argument uses the generalized
// coefficient Γ(n+1) / (Γ(r+1)·Γ(n-r+1)), with its sign.
func Choose[T constraints.Float](n, r T) T {
	if !classify.IsNonNegativeInteger(n) || !classify.IsNonNegativeInteger(r) {
		v, sign := LogChoose(n, r)
		return T(sign) * fp.Exp(v)
	}

	switch {
	case n == r, r == 0:
		return 1
	case r == 1, r == n-1:
		return n
	case r > n:
		return 0
	case r == 2:
		return n * (n - 1) / 2
	}

	if max(r, n-r) > StirlingThreshold {
		k := min(r, n-r)
		return fromLog(logFallingFactorial(n, k) - logFactorial(k))
	}

	terms, ratio := r, n-r
	if n-r < r {
		terms, ratio = n-r, r
	}

	o := T(1)
	for i := T(1); i <= terms; i++ {
		o *= 1 + ratio/i
	}
	if o < fp.ExactIntLimit[T]() {
		o = fp.Round(o)
	}
	return o
}

// Pick returns the number of r-permutations of n, n!/(n-r)!.
//
// For non-negative integers P(n,n) = P(n,n-1) = n!, P(n,0) = 1,
// P(n,1) = n and P(n,r>n) = 0. When n exceeds StirlingThreshold the result
// is computed from Stirling's series; otherwise from the product Π(n-r+i).
// Any other argument uses Γ(n+1) / Γ(n-r+1), with its sign.
func Pick[T constraints.Float](n, r T) T {
	if !classify.IsNonNegativeInteger(n) || !classify.IsNonNegativeInteger(r) {
		v, sign := LogPick(n, r)
		return T(sign) * fp.Exp(v)
	}

	switch {
	case n == r, r == n-1:
		return Factorial(n)
	case r == 0:
		return 1
	case r == 1:
		return n
	case r > n:
		return 0
	}

	if n > StirlingThreshold {
		return fromLog(logFallingFactorial(n, r))
	}

	o := T(1)
	for i := T(1); i <= r; i++ {
		o *= n - r + i
	}
	return o
}

// LogChoose returns ln|C(n, r)| and the sign of C(n, r) for the generalized
// binomial coefficient. It stays finite where Choose overflows.
func LogChoose[T constraints.Float](n, r T) (T, int) {
	a, sa := fp.Lgamma(n + 1)
	c, sc := fp.Lgamma(n - r + 1)
	b, sb := fp.Lgamma(r + 1)
	return a - c - b, sa * sb * sc
}

// LogPick returns ln|P(n, r)| and the sign of P(n, r)
func LogPick[T constraints.Float](n, r T) (T, int) {
	a, sa := fp.Lgamma(n + 1)
	b, sb := fp.Lgamma(n - r + 1)
	return a - b, sa * sb
}

// logFactorial returns ln(x!) for a non-negative integer x, from Stirling's
// series above the threshold and from log-gamma below it
func logFactorial[T constraints.Float](x T) T {
	if x > StirlingThreshold {
		return (x+0.5)*fp.Log(x) - x + T(halfLog2Pi)
	}
	v, _ := fp.Lgamma(x + 1)
	return v
}

// logFallingFactorial returns ln(n!/(n-k)!) for integers 0 <= k <= n with n
// above the threshold. With m = n-k the difference of the two Stirling series
// is taken as (m+½)·ln(1+k/m) + k·(ln n - 1) + 1/(12n) - 1/(12m) so no two
// terms near ln n! are subtracted.
func logFallingFactorial[T constraints.Float](n, k T) T {
	m := n - k
	if m < stirlingMinimum {
		v, _ := fp.Lgamma(m + 1)
		return logFactorial(n) - v
	}
	return (m+0.5)*fp.Log1p(k/m) + k*(fp.Log(n)-1) + 1/(12*n) - 1/(12*m)
}

// fromLog converts a natural logarithm of a count back to the count through
// its base-10 logarithm. A negative logarithm means the count would be below
// one, which no valid count is, so NaN is returned.
func fromLog[T constraints.Float](ln T) T {
	log10 := ln / T(math.Ln10)
	if log10 < 0 {
		return fp.NaN[T]()
	}
	return powroot.Pow(T(10), log10)
}
