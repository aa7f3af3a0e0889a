package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/katas/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsPrime covers small, negative and composite values.
func TestIsPrime(t *testing.T) {
	t.Parallel()

	primes := []int64{2, 3, 5, 7, 41, 73, 5099, 2147483647}
	for _, p := range primes {
		assert.Truef(t, numeric.IsPrime(p), "%d is prime", p)
	}

	composites := []int64{-41, -8, -5, -1, 0, 1, 4, 6, 8, 9, 45, 75, 25, 49, 1 << 40}
	for _, c := range composites {
		assert.Falsef(t, numeric.IsPrime(c), "%d is not prime", c)
	}
}

// TestIsSquare mirrors the exercise samples plus a large boundary.
func TestIsSquare(t *testing.T) {
	tests := map[int64]bool{
		-1:                        false,
		0:                         true,
		3:                         false,
		4:                         true,
		25:                        true,
		26:                        false,
		3037000499 * 3037000499:   true,
		3037000499*3037000499 - 1: false,
		math.MaxInt64:             false,
	}
	for n, want := range tests {
		assert.Equalf(t, want, numeric.IsSquare(n), "IsSquare(%d)", n)
	}
}

// TestFindNextSquare mirrors the exercise samples.
func TestFindNextSquare(t *testing.T) {
	tests := []struct {
		in   uint64
		want uint64
		ok   bool
	}{
		{121, 144, true},
		{625, 676, true},
		{319_225, 320_356, true},
		{15_241_383_936, 15_241_630_849, true},
		{0, 1, true},
		{155, 0, false},
		{342_786_627, 0, false},
		{math.MaxUint32 * math.MaxUint32, 0, false},
	}
	for _, tc := range tests {
		got, ok := numeric.FindNextSquare(tc.in)
		assert.Equalf(t, tc.ok, ok, "FindNextSquare(%d)", tc.in)
		assert.Equalf(t, tc.want, got, "FindNextSquare(%d)", tc.in)
	}
}

// TestSquareDigits covers the sample and the overflow sentinel.
func TestSquareDigits(t *testing.T) {
	got, err := numeric.SquareDigits(9119)
	require.NoError(t, err)
	assert.Equal(t, uint64(811181), got)

	got, err = numeric.SquareDigits(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)

	_, err = numeric.SquareDigits(99999999999)
	assert.ErrorIs(t, err, numeric.ErrOverflow)
}

// TestPersistence mirrors the exercise samples.
func TestPersistence(t *testing.T) {
	assert.Equal(t, 3, numeric.Persistence(39))
	assert.Equal(t, 0, numeric.Persistence(4))
	assert.Equal(t, 2, numeric.Persistence(25))
	assert.Equal(t, 4, numeric.Persistence(999))
	assert.Equal(t, 1, numeric.Persistence(10))
}

// TestMultiplicationTable covers the sample and the degenerate size.
func TestMultiplicationTable(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}}, numeric.MultiplicationTable(3))
	assert.Equal(t, [][]int{{1}}, numeric.MultiplicationTable(1))
	assert.Empty(t, numeric.MultiplicationTable(0))
}
