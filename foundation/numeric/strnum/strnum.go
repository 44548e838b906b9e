// File: strnum.go
// Title: String Numeric Parsing
// Description: Kind definitions and the parsers behind the Is*, To* and
//              Parse* functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package strnum

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind selects the target type of a conversion
type Kind int

const (
	Float32    Kind = iota // float
	Float64                // double
	LongDouble             // long double, as *big.Float with a 64-bit mantissa
	Long                   // long, as the platform int
	ULong                  // unsigned long, as the platform uint
	LongLong               // long long, as int64
	ULongLong              // unsigned long long, as uint64
)

// LongDoublePrec is the mantissa precision used for LongDouble values
const LongDoublePrec = 64

var kindNames = map[Kind]string{
	Float32:    "float",
	Float64:    "double",
	LongDouble: "longdouble",
	Long:       "long",
	ULong:      "ulong",
	LongLong:   "longlong",
	ULongLong:  "ulonglong",
}

// String returns the C-style name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every kind in declaration order
func Kinds() []Kind {
	return []Kind{Float32, Float64, LongDouble, Long, ULong, LongLong, ULongLong}
}

// ParseKind accepts the C-style names returned by String as well as the Go
// type names float32, float64, int, uint, int64 and uint64.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	case "int":
		return Long, nil
	case "uint":
		return ULong, nil
	case "int64":
		return LongLong, nil
	case "uint64":
		return ULongLong, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Float64, fmt.Errorf("unknown numeric kind %q", s)
}

const cSpace = " \t\n\v\f\r"

// prepare strips leading C white space and rejects what strconv would accept
// but strtod/strtol would not consume
func prepare(s string) (string, bool) {
	t := strings.TrimLeft(s, cSpace)
	if t == "" || strings.ContainsRune(t, '_') {
		return "", false
	}
	return t, true
}

// hexWithoutExponent reports whether t is a hexadecimal float mantissa that
// lacks the binary exponent strconv requires
func hexWithoutExponent(t string) bool {
	u := strings.TrimLeft(t, "+-")
	if len(u) < 3 || u[0] != '0' || (u[1] != 'x' && u[1] != 'X') {
		return false
	}
	return !strings.ContainsAny(u, "pP")
}

func parseFloat(s string, bitSize int) (float64, bool) {
	t, ok := prepare(s)
	if !ok {
		return math.NaN(), false
	}
	if hexWithoutExponent(t) {
		t += "p0"
	}
	v, err := strconv.ParseFloat(t, bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return v, true
}

func parseLongDouble(s string) (*big.Float, bool) {
	t, ok := prepare(s)
	if !ok {
		return nil, false
	}
	u := strings.TrimLeft(t, "+-")
	if len(t)-len(u) > 1 {
		return nil, false
	}
	switch strings.ToLower(u) {
	case "inf", "infinity":
		return new(big.Float).SetPrec(LongDoublePrec).SetInf(t[0] == '-'), true
	}
	// big.ParseFloat also knows binary and octal prefixes, strtold does not
	if len(u) >= 2 && u[0] == '0' && strings.ContainsRune("bBoO", rune(u[1])) {
		return nil, false
	}
	v, _, err := big.ParseFloat(t, 0, LongDoublePrec, big.ToNearestEven)
	if err != nil {
		return nil, false
	}
	return v, true
}

func parseInt(s string, bitSize int) (int64, bool) {
	t, ok := prepare(s)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(t, 0, bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

func parseUint(s string, bitSize int) (uint64, bool) {
	t, ok := prepare(s)
	if !ok {
		return 0, false
	}

	negative := false
	switch t[0] {
	case '-':
		negative = true
		t = t[1:]
	case '+':
		t = t[1:]
	}
	if t == "" || t[0] == '+' || t[0] == '-' {
		return 0, false
	}

	v, err := strconv.ParseUint(t, 0, bitSize)
	switch {
	case errors.Is(err, strconv.ErrRange):
		// saturates regardless of sign
		return v, true
	case err != nil:
		return 0, false
	case negative:
		v = -v
		if bitSize < 64 {
			v &= 1<<uint(bitSize) - 1
		}
	}
	return v, true
}
