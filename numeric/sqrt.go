package numeric

import "math"

// isqrt returns ⌊√n⌋ exactly. The float estimate can be off by one for large
// n, so it is nudged until r² ≤ n < (r+1)².
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r { // r*r > n without overflow
		r--
	}
	for r+1 <= n/(r+1) { // (r+1)² ≤ n without overflow
		r++
	}

	return r
}

// IsSquare reports whether n is a perfect square. Negative numbers are not.
func IsSquare(n int64) bool {
	if n < 0 {
		return false
	}
	r := isqrt(uint64(n))

	return r*r == uint64(n)
}

// FindNextSquare returns the smallest perfect square greater than sq, or
// false when sq itself is not a perfect square or the next one overflows.
func FindNextSquare(sq uint64) (uint64, bool) {
	r := isqrt(sq)
	if r*r != sq {
		return 0, false
	}
	next := r + 1
	if next > math.MaxUint64/next {
		return 0, false
	}

	return next * next, true
}
