package angle

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestConversionRatios(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180.0), 1e-15)
	assert.InDelta(t, 200, DegToGrad(180.0), 1e-12)
	assert.InDelta(t, 180, RadToDeg(math.Pi), 1e-12)
	assert.InDelta(t, 200, RadToGrad(math.Pi), 1e-12)
	assert.InDelta(t, 180, GradToDeg(200.0), 1e-12)
	assert.InDelta(t, math.Pi, GradToRad(200.0), 1e-15)

	assert.InDelta(t, float32(math.Pi/2), DegToRad(float32(90)), 1e-6)
}

func TestNonFinitePassThrough(t *testing.T) {
	assert.True(t, math.IsInf(DegToRad(math.Inf(1)), 1))
	assert.True(t, math.IsInf(GradToDeg(math.Inf(-1)), -1))
	assert.True(t, math.IsNaN(RadToGrad(math.NaN())))
}

func TestRoundTrips(t *testing.T) {
	roundTrip := func(x float64) bool {
		if math.Abs(x) > 1e300 {
			// the intermediate value would overflow
			return true
		}
		tol := 1e-12
		return scalar.EqualWithinAbsOrRel(RadToDeg(DegToRad(x)), x, tol, tol) &&
			scalar.EqualWithinAbsOrRel(GradToDeg(DegToGrad(x)), x, tol, tol) &&
			scalar.EqualWithinAbsOrRel(DegToRad(RadToDeg(x)), x, tol, tol) &&
			scalar.EqualWithinAbsOrRel(GradToRad(RadToGrad(x)), x, tol, tol)
	}
	require.NoError(t, quick.Check(roundTrip, nil))
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{"deg": Degrees, "Degrees": Degrees, " rad ": Radians, "GON": Gradians, "gradians": Gradians} {
		got, err := ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseUnit("turn")
	assert.Error(t, err)

	assert.Equal(t, "grad", Gradians.String())
	assert.Equal(t, "Unit(9)", Unit(9).String())
}

func TestConvert(t *testing.T) {
	units := []Unit{Radians, Degrees, Gradians}
	for _, from := range units {
		for _, to := range units {
			x := 37.5
			back := Convert(Convert(x, from, to), to, from)
			assert.InDelta(t, x, back, 1e-12, "%v -> %v", from, to)
		}
	}
	assert.InDelta(t, 100, Convert(90.0, Degrees, Gradians), 1e-12)
	assert.Equal(t, 1.5, Convert(1.5, Degrees, Degrees))
}
