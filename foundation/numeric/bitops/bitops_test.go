package bitops

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 8, Width[uint8]())
	assert.Equal(t, 16, Width[uint16]())
	assert.Equal(t, 32, Width[uint32]())
	assert.Equal(t, 64, Width[uint64]())
}

func TestShiftsAndRotations(t *testing.T) {
	assert.Equal(t, uint8(0x02), ShiftLeft(uint8(0x81)))
	assert.Equal(t, uint8(0x40), ShiftRight(uint8(0x81)))
	assert.Equal(t, uint8(0x03), RotateLeft(uint8(0x81)))
	assert.Equal(t, uint8(0xC0), RotateRight(uint8(0x81)))
	assert.Equal(t, uint16(0x0001), RotateLeft(uint16(0x8000)))
	assert.Equal(t, uint64(1)<<63, RotateRight(uint64(1)))

	assert.Equal(t, uint32(0x23456781), RotateLeftN(uint32(0x12345678), 4))
	assert.Equal(t, uint32(0x81234567), RotateRightN(uint32(0x12345678), 4))
	assert.Equal(t, uint32(0x81234567), RotateLeftN(uint32(0x12345678), -4))
	assert.Equal(t, uint32(0x12345678), RotateLeftN(uint32(0x12345678), 64))
	assert.Equal(t, uint8(0x0C), RotateLeftN(uint8(0x81), 11))
}

func TestComplements(t *testing.T) {
	assert.Equal(t, uint8(0xF0), OnesComplement(uint8(0x0F)))
	assert.Equal(t, uint8(0xFF), TwosComplement(uint8(1)))
	assert.Equal(t, uint16(0), TwosComplement(uint16(0)))
	assert.Equal(t, ^uint64(0)-4, TwosComplement(uint64(5)))
}

func TestFlipBytes(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want uint64
	}{
		{"zero", 0, 0},
		{"single byte", 0x12, 0x12},
		{"two bytes", 0x1234, 0x3412},
		{"three bytes", 0x123456, 0x563412},
		{"full width", 0x0102030405060708, 0x0807060504030201},
		{"interior zero byte", 0x120034, 0x340012},
		{"trailing zero byte", 0x123400, 0x341200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlipBytes(tt.in))
		})
	}

	assert.Equal(t, uint32(0x78563412), FlipBytes(uint32(0x12345678)))
	assert.Equal(t, uint32(0x3412), FlipBytes(uint32(0x1234)))
	assert.Equal(t, uint32(0x34120000), FlipBytes(uint32(0x12340000)))
	assert.Equal(t, uint16(0x3412), FlipBytes(uint16(0x1234)))
	assert.Equal(t, uint8(0xAB), FlipBytes(uint8(0xAB)))
}

func TestFlipWords(t *testing.T) {
	assert.Equal(t, uint32(0x56781234), FlipWords(uint32(0x12345678)))
	assert.Equal(t, uint64(0x5678_1234), FlipWords(uint64(0x1234_5678)))
	assert.Equal(t, uint64(0x4444_3333_2222_1111), FlipWords(uint64(0x1111_2222_3333_4444)))
	assert.Equal(t, uint16(0x1234), FlipWords(uint16(0x1234)))
	assert.Equal(t, uint8(0x12), FlipWords(uint8(0x12)))
}

func TestFlipRoundTrip(t *testing.T) {
	require.NoError(t, quick.Check(func(x uint8) bool { return FlipBytes(FlipBytes(x)) == x }, nil))
	require.NoError(t, quick.Check(func(x uint16) bool { return FlipBytes(FlipBytes(x)) == x }, nil))
	require.NoError(t, quick.Check(func(x uint32) bool {
		return FlipBytes(FlipBytes(x)) == x && FlipWords(FlipWords(x)) == x
	}, nil))
	require.NoError(t, quick.Check(func(x uint64) bool {
		return FlipBytes(FlipBytes(x)) == x && FlipWords(FlipWords(x)) == x
	}, nil))
}

func TestFlipRoundTripSparse(t *testing.T) {
	// random values rarely contain zero bytes; walk every single-byte pattern
	for pos := 0; pos < 8; pos++ {
		for pos2 := pos; pos2 < 8; pos2++ {
			x := uint64(0xA5)<<(8*pos) | uint64(0x3C)<<(8*pos2)
			assert.Equal(t, x, FlipBytes(FlipBytes(x)), "%#x", x)
		}
	}
}

func rotateFull[U uint8 | uint16 | uint32 | uint64](x U) bool {
	y := x
	for i := 0; i < Width[U](); i++ {
		y = RotateLeft(y)
	}
	z := x
	for i := 0; i < Width[U](); i++ {
		z = RotateRight(z)
	}
	return y == x && z == x
}

func TestRotateRoundTrip(t *testing.T) {
	require.NoError(t, quick.Check(rotateFull[uint8], nil))
	require.NoError(t, quick.Check(rotateFull[uint16], nil))
	require.NoError(t, quick.Check(rotateFull[uint32], nil))
	require.NoError(t, quick.Check(rotateFull[uint64], nil))
}
