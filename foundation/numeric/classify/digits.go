package classify

import "golang.org/x/exp/constraints"

// Digits returns the number of decimal digits of |n|, counting 0 as one digit.
// The count is found by comparing against powers of ten; the minimum value
// of a signed type is handled without overflow.
func Digits[I constraints.Integer](n I) int {
	var m uint64
	if n < 0 {
		m = uint64(-(n + 1)) + 1
	} else {
		m = uint64(n)
	}
	return digits(m)
}

func digits(m uint64) int {
	if m < 1e10 {
		if m < 1e5 {
			if m < 1e2 {
				if m < 1e1 {
					return 1
				}
				return 2
			}
			if m < 1e3 {
				return 3
			}
			if m < 1e4 {
				return 4
			}
			return 5
		}
		if m < 1e7 {
			if m < 1e6 {
				return 6
			}
			return 7
		}
		if m < 1e8 {
			return 8
		}
		if m < 1e9 {
			return 9
		}
		return 10
	}
	if m < 1e15 {
		if m < 1e12 {
			if m < 1e11 {
				return 11
			}
			return 12
		}
		if m < 1e13 {
			return 13
		}
		if m < 1e14 {
			return 14
		}
		return 15
	}
	if m < 1e17 {
		if m < 1e16 {
			return 16
		}
		return 17
	}
	if m < 1e18 {
		return 18
	}
	if m < 1e19 {
		return 19
	}
	return 20
}
