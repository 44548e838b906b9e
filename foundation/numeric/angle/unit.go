package angle

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Unit identifies an angle unit
type Unit int

const (
	Radians Unit = iota
	Degrees
	Gradians
)

// String returns the short unit name used in settings and commands
func (u Unit) String() string {
	switch u {
	case Radians:
		return "rad"
	case Degrees:
		return "deg"
	case Gradians:
		return "grad"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit accepts the short and long unit names in any case; "gon" is an
// alias for gradians.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rad", "radian", "radians":
		return Radians, nil
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "grad", "gradian", "gradians", "gon":
		return Gradians, nil
	}
	return Radians, fmt.Errorf("unknown angle unit %q", s)
}

// Convert converts x from one unit to another. Converting to the same unit
// returns x unchanged.
func Convert[T constraints.Float](x T, from, to Unit) T {
	switch {
	case from == to:
		return x
	case from == Degrees && to == Radians:
		return DegToRad(x)
	case from == Degrees && to == Gradians:
		return DegToGrad(x)
	case from == Radians && to == Degrees:
		return RadToDeg(x)
	case from == Radians && to == Gradians:
		return RadToGrad(x)
	case from == Gradians && to == Degrees:
		return GradToDeg(x)
	case from == Gradians && to == Radians:
		return GradToRad(x)
	}
	return x
}
