package numeric

import (
	"strconv"
	"strings"
)

// IsPrime reports whether x is prime using trial division up to ⌊√x⌋.
// Values ≤ 1 are not prime.
//
// Complexity: O(√x).
func IsPrime(x int64) bool {
	if x <= 1 {
		return false
	}
	if x < 4 {
		return true
	}
	if x%2 == 0 {
		return false
	}
	for i := int64(3); i <= x/i; i += 2 {
		if x%i == 0 {
			return false
		}
	}

	return true
}

// SquareDigits squares every decimal digit of n and concatenates the results,
// e.g. 9119 → 81-1-1-81 → 811181.
//
// Errors: ErrOverflow when the concatenation exceeds uint64.
func SquareDigits(n uint64) (uint64, error) {
	digits := strconv.FormatUint(n, 10)

	var sb strings.Builder
	sb.Grow(2 * len(digits))
	for _, d := range digits {
		v := uint64(d - '0')
		sb.WriteString(strconv.FormatUint(v*v, 10))
	}

	out, err := strconv.ParseUint(sb.String(), 10, 64)
	if err != nil {
		return 0, ErrOverflow
	}

	return out, nil
}

// Persistence returns how many times the digits of n must be multiplied
// together before a single digit remains, e.g. 39 → 27 → 14 → 4 gives 3.
func Persistence(n uint64) int {
	steps := 0
	for n >= 10 {
		n = digitProduct(n)
		steps++
	}

	return steps
}

func digitProduct(n uint64) uint64 {
	prod := uint64(1)
	for ; n > 0; n /= 10 {
		prod *= n % 10
	}

	return prod
}

// MultiplicationTable returns the n×n table whose cell (i, j) is (i+1)(j+1).
// n ≤ 0 yields an empty table.
func MultiplicationTable(n int) [][]int {
	if n <= 0 {
		return [][]int{}
	}

	table := make([][]int, n)
	for i := range table {
		table[i] = make([]int, n)
		for j := range table[i] {
			table[i][j] = (i + 1) * (j + 1)
		}
	}

	return table
}
