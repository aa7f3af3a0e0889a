// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file intentionally contains ONLY domain-facing types. Errors and
// validators live in dedicated files (errors.go, validators.go).
package matrix

// Matrix is an ordered sequence of rows, each an ordered sequence of int64.
// Rows are expected to share a common length; Determinant further requires
// the matrix to be square. A Matrix is never retained or mutated by this package.
type Matrix [][]int64

// Order returns the number of rows in m.
// Complexity: O(1).
func (m Matrix) Order() int {
	return len(m)
}

// Clone returns a deep copy of m. The copy shares no backing arrays with m.
// Complexity: O(rows*cols).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]int64(nil), row...)
	}

	return out
}

// SwapRows returns a copy of m with rows i and j exchanged.
// Panics with ErrOutOfRange if either index is invalid.
// Complexity: O(rows*cols) for the copy.
func (m Matrix) SwapRows(i, j int) Matrix {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m) {
		panic(matrixErrorf("SwapRows", ErrOutOfRange))
	}
	out := m.Clone()
	out[i], out[j] = out[j], out[i]

	return out
}
