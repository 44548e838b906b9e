// File: bitops.go
// Title: Bit Operations
// Description: Shifts, rotations, complements and byte/word order flips for
//              every unsigned integer width.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package bitops implements bit manipulation generic over the unsigned
// integer types. Operations are width-aware: rotating a uint8 wraps at bit 7,
// rotating a uint64 at bit 63.
package bitops

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits of U
func Width[U constraints.Unsigned]() int {
	var z U
	return bits.Len64(uint64(^z))
}

func ShiftLeft[U constraints.Unsigned](x U) U  { return x << 1 }
func ShiftRight[U constraints.Unsigned](x U) U { return x >> 1 }

// RotateLeft rotates x left by one bit; the top bit becomes bit 0
func RotateLeft[U constraints.Unsigned](x U) U {
	return x<<1 | x>>(Width[U]()-1)
}

// RotateRight rotates x right by one bit; bit 0 becomes the top bit
func RotateRight[U constraints.Unsigned](x U) U {
	return x>>1 | x<<(Width[U]()-1)
}

// RotateLeftN rotates x left by k bits. k is taken modulo the width and may
// be negative, which rotates right.
func RotateLeftN[U constraints.Unsigned](x U, k int) U {
	w := Width[U]()
	k = ((k % w) + w) % w
	if k == 0 {
		return x
	}
	return x<<k | x>>(w-k)
}

// RotateRightN rotates x right by k bits
func RotateRightN[U constraints.Unsigned](x U, k int) U {
	return RotateLeftN(x, -(k % Width[U]()))
}

// OnesComplement returns the bitwise NOT of x
func OnesComplement[U constraints.Unsigned](x U) U {
	return ^x
}

// TwosComplement returns ^x + 1, the bit pattern of -x
func TwosComplement[U constraints.Unsigned](x U) U {
	return ^x + 1
}

// FlipBytes reverses the order of the bytes between the lowest and the
// highest non-zero byte of x. Zero bytes outside that span stay in place, so
// FlipBytes(uint32(0x1234)) is 0x3412, not 0x34120000, and applying FlipBytes
// twice restores x. Low zero bytes are outside the span as well:
// FlipBytes(uint32(0x12340000)) is 0x34120000, whereas a span starting at
// byte 0 would move the pair down to 0x3412.
func FlipBytes[U constraints.Unsigned](x U) U {
	return flip(x, 8)
}

// FlipWords is FlipBytes at 16-bit granularity. Types of 16 bits or less
// are returned unchanged.
func FlipWords[U constraints.Unsigned](x U) U {
	return flip(x, 16)
}

func flip[U constraints.Unsigned](x U, size int) U {
	n := Width[U]() / size
	if x == 0 || n < 2 {
		return x
	}

	mask := U(1)<<size - 1
	lo, hi := -1, -1
	for i := 0; i < n; i++ {
		if (x>>(size*i))&mask != 0 {
			if lo < 0 {
				lo = i
			}
			hi = i
		}
	}

	var o U
	for i := lo; i <= hi; i++ {
		o |= (x >> (size * i) & mask) << (size * (lo + hi - i))
	}
	return o
}
