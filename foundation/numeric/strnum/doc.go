// Package strnum validates and converts numeric strings with fixed C-locale
// rules, independent of any process or thread locale.
//
// Package: strnum
// Title: C-Locale String to Number Conversion
// Description: Validation and conversion of strings into float32, float64,
//              extended precision floats and signed/unsigned integers. A string
//              is valid only when it is consumed completely.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Accepted syntax follows strtod and strtol with base detection:
//
//   - leading white space is skipped, trailing characters make the string invalid
//   - the empty string and a string of white space alone are invalid
//   - floats: decimal and hexadecimal mantissas, exponents, inf, infinity, nan;
//     LongDouble has no NaN, so "nan" is invalid for that kind
//   - integers: optional sign, 0x/0X hexadecimal, leading 0 octal, 0b and 0o prefixes
//   - values out of range are valid; floats saturate to ±Inf and integers to the
//     limits of their type
//   - unsigned kinds accept a leading minus and wrap around, like strtoul
//   - digit separators ("_") are never accepted
//
// The To* functions return a fallback when the string is invalid: NaN for
// float kinds, 0 for integer kinds and nil for LongDouble. Callers that must
// tell a parsed zero from a failure use the Is* functions or the Parse*
// functions, which return structured errors.
package strnum
