package strnum

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	mdwerrors "github.com/msto63/numcore/foundation/core/errors"
)

func TestFloatValidation(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  float64
	}{
		{"123.45", true, 123.45},
		{" \t123.45", true, 123.45},
		{"-0.5", true, -0.5},
		{".5", true, 0.5},
		{"5.", true, 5},
		{"1e3", true, 1000},
		{"0x1F", true, 31},
		{"0x1p-2", true, 0.25},
		{"08", true, 8},
		{"1e400", true, math.Inf(1)},
		{"-1e400", true, math.Inf(-1)},
		{"inf", true, math.Inf(1)},
		{"-Infinity", true, math.Inf(-1)},
		{"123abc", false, 0},
		{"123.45 ", false, 0},
		{"1,5", false, 0},
		{"1_000", false, 0},
		{"1e", false, 0},
		{"", false, 0},
		{"   ", false, 0},
		{"0x", false, 0},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.valid, IsFloat64(tt.in))
			assert.Equal(t, tt.valid, Valid(tt.in, Float64))
			got := ToFloat64(tt.in)
			if !tt.valid {
				assert.True(t, math.IsNaN(got), "fallback should be NaN, got %v", got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNaNIsAValidFloat(t *testing.T) {
	assert.True(t, IsFloat64("nan"))
	assert.True(t, IsFloat32("NaN"))
	assert.False(t, IsLongDouble("nan"))
}

func TestFloat32(t *testing.T) {
	assert.Equal(t, float32(123.45), ToFloat32("123.45"))
	assert.True(t, math.IsInf(float64(ToFloat32("1e40")), 1))
	assert.True(t, IsFloat32("1e40"))
	assert.True(t, math.IsNaN(float64(ToFloat32("123abc"))))
}

func TestLongDouble(t *testing.T) {
	v := ToLongDouble("0.1")
	require.NotNil(t, v)
	assert.Equal(t, uint(LongDoublePrec), v.Prec())

	// 64 mantissa bits are closer to 1/10 than float64's 53
	exact := new(big.Rat).SetFrac64(1, 10)
	ld, _ := v.Rat(nil)
	d, _ := new(big.Float).SetPrec(LongDoublePrec).SetFloat64(0.1).Rat(nil)
	errLD := new(big.Rat).Abs(new(big.Rat).Sub(ld, exact))
	errD := new(big.Rat).Abs(new(big.Rat).Sub(d, exact))
	assert.Equal(t, -1, errLD.Cmp(errD))

	assert.Nil(t, ToLongDouble("0.1x"))
	assert.True(t, ToLongDouble("-inf").IsInf())
}

func TestLongDoubleFollowsFloatGrammar(t *testing.T) {
	for _, in := range []string{"INF", "infinity", "-Infinity", "+inf", " 1.5", "0x1F", "0x1p-2", "08", "1e400", "0b101", "0o17", "0B1", "--1", "1_0", ""} {
		t.Run(strconv.Quote(in), func(t *testing.T) {
			assert.Equal(t, IsFloat64(in), IsLongDouble(in))
		})
	}

	v := ToLongDouble("-INFINITY")
	require.NotNil(t, v)
	assert.True(t, v.IsInf())
	assert.Equal(t, -1, v.Sign())
	assert.Equal(t, uint(LongDoublePrec), v.Prec())
	assert.Nil(t, ToLongDouble("0b101"))
}

func TestIntegerValidation(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  int64
	}{
		{"42", true, 42},
		{"  -42", true, -42},
		{"+7", true, 7},
		{"0x1F", true, 31},
		{"0X1f", true, 31},
		{"010", true, 8},
		{"0b101", true, 5},
		{"0o17", true, 15},
		{"99999999999999999999", true, math.MaxInt64},
		{"-99999999999999999999", true, math.MinInt64},
		{"08", false, 0},
		{"4.2", false, 0},
		{"42 ", false, 0},
		{"1_000", false, 0},
		{"--1", false, 0},
		{"", false, 0},
		{"abc", false, 0},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.valid, IsLongLong(tt.in))
			assert.Equal(t, tt.want, ToLongLong(tt.in))
			assert.Equal(t, tt.valid, IsLong(tt.in))
		})
	}
}

func TestUnsignedWrapsLikeStrtoul(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  uint64
	}{
		{"42", true, 42},
		{"+42", true, 42},
		{"-1", true, math.MaxUint64},
		{"-0x10", true, math.MaxUint64 - 15},
		{"99999999999999999999", true, math.MaxUint64},
		{"-99999999999999999999", true, math.MaxUint64},
		{"-", false, 0},
		{"-+1", false, 0},
		{"+-1", false, 0},
		{"1.0", false, 0},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.valid, IsULongLong(tt.in))
			assert.Equal(t, tt.want, ToULongLong(tt.in))
		})
	}

	assert.Equal(t, uint(math.MaxUint), ToULong("-1"))
	assert.Equal(t, -5, ToLong("-5"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		kind Kind
		want interface{}
	}{
		{Float32, float32(31)},
		{Float64, float64(31)},
		{Long, int(31)},
		{ULong, uint(31)},
		{LongLong, int64(31)},
		{ULongLong, uint64(31)},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := Parse("0x1F", tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := Parse("2.5", LongDouble)
	require.NoError(t, err)
	f, ok := got.(*big.Float)
	require.True(t, ok)
	assert.Equal(t, "2.5", f.Text('g', 10))

	_, err = Parse("2.5", Kind(99))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestParseErrors(t *testing.T) {
	_, err := ParseFloat64("123abc")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
	assert.True(t, mdwerrors.IsModuleError(err, mdwerrors.ModuleStrnum))

	_, err = ParseInt64("12.5")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))

	_, err = ParseUint64("0x")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))

	v, err := ParseUint64("0xFF")
	require.NoError(t, err)
	assert.Equal(t, uint64(255), v)
}

func TestKinds(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	k, err := ParseKind("UINT64")
	require.NoError(t, err)
	assert.Equal(t, ULongLong, k)

	_, err = ParseKind("quad")
	assert.Error(t, err)
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
