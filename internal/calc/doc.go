// Package calc implements the numcore command language.
//
// A command names an object and a method, followed by positional arguments
// and key=value options:
//
//	TRIG.SIN 90 unit=deg
//	COMBIN.CHOOSE 52 5
//	BITS.FLIPB 0x1234 width=16
//	STR.VALID " 42" kind=long
//
// Names are case-insensitive. Options fall back to the session settings
// held by the Engine (precision, angle unit, locale and displayed fraction
// digits), which CALC.SET changes. Numeric arguments are read in the C
// locale first and in the session locale second.
//
// Errors are *error.Error values from foundation/core/error: unknown names
// carry UNKNOWN_COMMAND, bad arguments and options INVALID_ARGUMENT, syntax
// errors INVALID_FORMAT and a cancelled context CANCELLED.
package calc
