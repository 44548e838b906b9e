package strnum

import (
	"math"
	"math/big"
	"strconv"

	mdwerrors "github.com/msto63/numcore/foundation/core/errors"
)

// Valid reports whether s is a complete number of the given kind
func Valid(s string, kind Kind) bool {
	_, err := Parse(s, kind)
	return err == nil
}

// IsFloat32 reports whether s is a complete float
func IsFloat32(s string) bool {
	_, ok := parseFloat(s, 32)
	return ok
}

// IsFloat64 reports whether s is a complete double
func IsFloat64(s string) bool {
	_, ok := parseFloat(s, 64)
	return ok
}

// IsLongDouble reports whether s is a complete long double
func IsLongDouble(s string) bool {
	_, ok := parseLongDouble(s)
	return ok
}

// IsLong reports whether s is a complete long
func IsLong(s string) bool {
	_, ok := parseInt(s, strconv.IntSize)
	return ok
}

// IsULong reports whether s is a complete unsigned long
func IsULong(s string) bool {
	_, ok := parseUint(s, strconv.IntSize)
	return ok
}

// IsLongLong reports whether s is a complete long long
func IsLongLong(s string) bool {
	_, ok := parseInt(s, 64)
	return ok
}

// IsULongLong reports whether s is a complete unsigned long long
func IsULongLong(s string) bool {
	_, ok := parseUint(s, 64)
	return ok
}

// ToFloat32 returns the value of s, or NaN if s is not a valid float
func ToFloat32(s string) float32 {
	v, ok := parseFloat(s, 32)
	if !ok {
		return float32(math.NaN())
	}
	return float32(v)
}

// ToFloat64 returns the value of s, or NaN if s is not a valid double
func ToFloat64(s string) float64 {
	v, _ := parseFloat(s, 64)
	return v
}

// ToLongDouble returns the value of s with a 64-bit mantissa, or nil if s is
// not valid. NaN has no extended precision representation and is invalid.
func ToLongDouble(s string) *big.Float {
	v, _ := parseLongDouble(s)
	return v
}

// ToLong returns the value of s, or 0 if s is not a valid long
func ToLong(s string) int {
	v, _ := parseInt(s, strconv.IntSize)
	return int(v)
}

// ToULong returns the value of s, or 0 if s is not a valid unsigned long
func ToULong(s string) uint {
	v, _ := parseUint(s, strconv.IntSize)
	return uint(v)
}

// ToLongLong returns the value of s, or 0 if s is not a valid long long
func ToLongLong(s string) int64 {
	v, _ := parseInt(s, 64)
	return v
}

// ToULongLong returns the value of s, or 0 if s is not a valid unsigned long long
func ToULongLong(s string) uint64 {
	v, _ := parseUint(s, 64)
	return v
}

// ParseFloat64 is ToFloat64 with an error instead of the NaN fallback
func ParseFloat64(s string) (float64, error) {
	v, ok := parseFloat(s, 64)
	if !ok {
		return 0, mdwerrors.FormatError(mdwerrors.ModuleStrnum, s, "C-locale "+Float64.String())
	}
	return v, nil
}

// ParseInt64 is ToLongLong with an error instead of the 0 fallback
func ParseInt64(s string) (int64, error) {
	v, ok := parseInt(s, 64)
	if !ok {
		return 0, mdwerrors.FormatError(mdwerrors.ModuleStrnum, s, "C-locale "+LongLong.String())
	}
	return v, nil
}

// ParseUint64 is ToULongLong with an error instead of the 0 fallback
func ParseUint64(s string) (uint64, error) {
	v, ok := parseUint(s, 64)
	if !ok {
		return 0, mdwerrors.FormatError(mdwerrors.ModuleStrnum, s, "C-locale "+ULongLong.String())
	}
	return v, nil
}

// Parse converts s to the Go type of kind: float32, float64, *big.Float, int,
// uint, int64 or uint64.
func Parse(s string, kind Kind) (interface{}, error) {
	var (
		v  interface{}
		ok bool
	)

	switch kind {
	case Float32:
		var f float64
		f, ok = parseFloat(s, 32)
		v = float32(f)
	case Float64:
		v, ok = parseFloat(s, 64)
	case LongDouble:
		v, ok = parseLongDouble(s)
	case Long:
		var n int64
		n, ok = parseInt(s, strconv.IntSize)
		v = int(n)
	case ULong:
		var n uint64
		n, ok = parseUint(s, strconv.IntSize)
		v = uint(n)
	case LongLong:
		v, ok = parseInt(s, 64)
	case ULongLong:
		v, ok = parseUint(s, 64)
	default:
		return nil, mdwerrors.InputError(mdwerrors.ModuleStrnum, "Parse", kind.String(), "a numeric kind")
	}

	if !ok {
		return nil, mdwerrors.FormatError(mdwerrors.ModuleStrnum, s, "C-locale "+kind.String())
	}
	return v, nil
}
