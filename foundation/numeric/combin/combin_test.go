package combin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want float64
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"five", 5, 120},
		{"twenty", 20, 2432902008176640000},
		{"half", 0.5, math.Sqrt(math.Pi) / 2},
		{"negative non-integer", -3.5, math.Gamma(-2.5)},
		{"negative half", -0.5, math.Sqrt(math.Pi)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, Factorial(tt.n), 1e-14)
		})
	}

	assert.True(t, math.IsNaN(Factorial(-3.0)))
	assert.True(t, math.IsNaN(float64(Factorial(float32(-1)))))
	assert.False(t, math.IsInf(Factorial(170.0), 0))
	assert.True(t, math.IsInf(Factorial(171.0), 1))
	assert.Equal(t, float32(3628800), Factorial(float32(10)))
	assert.True(t, math.IsInf(float64(Factorial(float32(35))), 1))
}

func TestFactorialIntegersAreExact(t *testing.T) {
	want := 1.0
	for n := 1; n <= 22; n++ {
		want *= float64(n)
		assert.Equal(t, want, Factorial(float64(n)), "Factorial(%d)", n)
	}
}

func TestChooseIdentities(t *testing.T) {
	tests := []struct {
		n, r, want float64
	}{
		{5, 5, 1},
		{5, 0, 1},
		{0, 0, 1},
		{7, 1, 7},
		{7, 6, 7},
		{3, 5, 0},
		{0, 1, 0},
		{9, 2, 36},
		{5, 2, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Choose(tt.n, tt.r), "Choose(%v, %v)", tt.n, tt.r)
		assert.Equal(t, float32(tt.want), Choose(float32(tt.n), float32(tt.r)), "Choose(float32(%v), %v)", tt.n, tt.r)
	}
}

func TestChooseAgainstGonum(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for r := 0; r <= n; r++ {
			want := float64(combin.Binomial(n, r))
			got := Choose(float64(n), float64(r))
			if n <= 30 {
				require.Equal(t, want, got, "Choose(%d, %d)", n, r)
			} else {
				require.InEpsilon(t, want, got, 1e-12, "Choose(%d, %d)", n, r)
			}
		}
	}
}

func TestChooseSymmetry(t *testing.T) {
	for n := 0.0; n <= 80; n++ {
		for r := 0.0; r <= n; r++ {
			assert.Equal(t, Choose(n, r), Choose(n, n-r), "Choose(%v, %v)", n, r)
		}
	}
}

func TestChooseGeneralized(t *testing.T) {
	assert.InEpsilon(t, -0.5, Choose(-0.5, 1), 1e-14)
	assert.InEpsilon(t, combin.GeneralizedBinomial(5.5, 2.5), Choose(5.5, 2.5), 1e-12)
	assert.InEpsilon(t, combin.GeneralizedBinomial(10, 2.5), Choose(10, 2.5), 1e-12)
	// C(-2, 3) = (-2)(-3)(-4)/3! = -4, a pole of Γ(n+1) makes this NaN here
	assert.True(t, math.IsNaN(Choose(-2.0, 3)))
}

func TestChooseStirlingRegime(t *testing.T) {
	n, r := 2e7+10, 10.0
	want, sign := LogChoose(n, r)
	require.Equal(t, 1, sign)

	got := Choose(n, r)
	assert.InEpsilon(t, math.Exp(want), got, 1e-6)

	// C(2e7+10, 2e7) is the same count through the other argument
	assert.InEpsilon(t, got, Choose(n, n-r), 1e-9)

	assert.True(t, math.IsInf(Choose(3e7, 1.5e7), 1))
}

func TestLogChoose(t *testing.T) {
	v, sign := LogChoose(1e9, 5e8)
	assert.Equal(t, 1, sign)
	assert.InEpsilon(t, combin.LogGeneralizedBinomial(1e9, 5e8), v, 1e-9)

	v, sign = LogChoose(3.0, 5)
	assert.True(t, math.IsInf(v, -1))
	assert.Equal(t, 0.0, float64(sign)*math.Exp(v))
}

func TestPick(t *testing.T) {
	tests := []struct {
		n, r, want float64
	}{
		{5, 2, 20},
		{5, 5, 120},
		{6, 5, 720},
		{5, 0, 1},
		{9, 1, 9},
		{3, 5, 0},
		{10, 3, 720},
		{0, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pick(tt.n, tt.r), "Pick(%v, %v)", tt.n, tt.r)
	}

	for n := 0.0; n <= 25; n++ {
		assert.Equal(t, Factorial(n), Pick(n, n), "Pick(%v, %v)", n, n)
		for r := 0.0; r <= n; r++ {
			assert.InEpsilon(t, Choose(n, r)*Factorial(r), Pick(n, r), 1e-12, "Pick(%v, %v)", n, r)
		}
	}
}

func TestPickGeneralizedAndStirling(t *testing.T) {
	assert.InEpsilon(t, 5.5*4.5, Pick(5.5, 2), 1e-12)

	n := 2e7
	assert.InEpsilon(t, n*(n-1)*(n-2), Pick(n, 3), 1e-6)

	v, sign := LogPick(n, 3)
	assert.Equal(t, 1, sign)
	assert.InEpsilon(t, math.Log(n*(n-1)*(n-2)), v, 1e-8)
}

func TestStirlingRegimeSinglePrecision(t *testing.T) {
	n := 2e7
	tests := []struct {
		name string
		got  float32
		want float64
	}{
		{"pick 3", Pick(float32(n), 3), n * (n - 1) * (n - 2)},
		{"choose 3", Choose(float32(n), 3), n * (n - 1) * (n - 2) / 6},
		{"choose n-3", Choose(float32(n), float32(n-4)), Choose(n, 4)},
		{"pick 2", Pick(float32(3e7), 2), 3e7 * (3e7 - 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, float64(tt.got), 1e-4)
		})
	}
}

func TestLogFallingFactorial(t *testing.T) {
	// agrees with the log-gamma difference in double precision
	for _, k := range []float64{1, 3, 50, 5e3, 1e6} {
		n := 2.5e7
		a, _ := math.Lgamma(n + 1)
		b, _ := math.Lgamma(n - k + 1)
		assert.InEpsilon(t, a-b, logFallingFactorial(n, k), 1e-7, "k=%v", k)
	}
}
