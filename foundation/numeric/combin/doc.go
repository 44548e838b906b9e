// Package combin computes factorials, binomial coefficients and permutation
// counts over float32 and float64.
//
// Integer arguments are counted exactly as long as the result fits the
// integer range of the float type; larger results are approximated and
// eventually overflow to +Inf. Non-integer and negative arguments are
// extended through the gamma function, so Factorial(-3.5) and
// Choose(-0.5, 1) are finite. Undefined points such as Factorial(-3) are NaN.
//
// Usage:
//
//	combin.Choose(5.0, 2)  // 10
//	combin.Pick(5.0, 2)    // 20
//	combin.Factorial(5.0)  // 120
//	combin.LogChoose(1e9, 5e8) // finite even though Choose is +Inf
package combin
