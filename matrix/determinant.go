// SPDX-License-Identifier: MIT
// Package matrix provides exact integer determinants via Laplace (cofactor)
// expansion along the first row.
//
// Purpose:
//   - Determinant: fail-fast int64 facade (panics on malformed input).
//   - DeterminantChecked: same kernel, returns sentinel errors instead.
//   - DeterminantBig: same expansion in arbitrary precision.
//
// Notes:
//   - Every recursive call owns the minor it builds and drops it on return.
//   - The expansion is O(n!) and intended for n ≤ 5; no LU shortcut is taken so
//     results stay exact for integer inputs.

package matrix

import "math/big"

// Minor returns the submatrix of m obtained by deleting row and col.
// The relative order of all remaining rows and columns is preserved and the
// result owns fresh backing storage.
//
// Implementation:
//   - Stage 1: bounds check row against len(m) and col against len(m[0]).
//   - Stage 2: copy every row except `row`, skipping column `col`.
//
// Inputs:
//   - m: non-empty rectangular matrix.
//   - row, col: indices to delete.
//
// Returns:
//   - Matrix: (rows-1)×(cols-1) minor; empty for a 1×1 input.
//
// Panics:
//   - ErrEmpty when m is empty, ErrOutOfRange on invalid indices (wrapped with "Minor").
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Minor(m Matrix, row, col int) Matrix {
	if err := ValidateNotEmpty(m); err != nil {
		panic(matrixErrorf(opMinor, err))
	}
	if row < 0 || row >= len(m) || col < 0 || col >= len(m[0]) {
		panic(matrixErrorf(opMinor, ErrOutOfRange))
	}

	out := make(Matrix, 0, len(m)-1)
	for i, src := range m {
		if i == row {
			continue
		}
		dst := make([]int64, 0, len(src)-1)
		dst = append(dst, src[:col]...)
		dst = append(dst, src[col+1:]...)
		out = append(out, dst)
	}

	return out
}

// Determinant computes det(m) by cofactor expansion along row 0.
//
// Implementation:
//   - Stage 1: Validate (NotEmpty → Rectangular → Square); panic on violation.
//   - Stage 2: 1×1 base case returns the single entry.
//   - Stage 3: for each column i, accumulate sign(i) * m[0][i] * det(Minor(m, 0, i)),
//     sign starting at +1 and alternating.
//
// Behavior highlights:
//   - Exact signed int64 arithmetic; overflow is the caller's concern
//     (use DeterminantBig when values may not fit).
//   - Pure: the input is never mutated.
//
// Panics:
//   - ErrEmpty, ErrRagged, ErrNonSquare wrapped with "Determinant".
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any time along one recursion path.
func Determinant(m Matrix) int64 {
	if err := Validate(m); err != nil {
		panic(matrixErrorf(opDeterminant, err))
	}

	return cofactorInt(m)
}

// DeterminantChecked is Determinant with an error surface instead of a panic.
//
// Errors:
//   - ErrEmpty, ErrRagged, ErrNonSquare wrapped with "Determinant".
func DeterminantChecked(m Matrix) (int64, error) {
	if err := Validate(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorInt(m), nil
}

// DeterminantBig computes det(m) with math/big so that no intermediate
// product can overflow. It panics exactly like Determinant.
//
// Complexity: O(n!) big-integer multiplications.
func DeterminantBig(m Matrix) *big.Int {
	if err := Validate(m); err != nil {
		panic(matrixErrorf(opDeterminant, err))
	}

	return cofactorBig(m)
}

// cofactorInt is the recursive kernel; m is already known to be square and non-empty.
func cofactorInt(m Matrix) int64 {
	if len(m) == 1 {
		return m[0][0]
	}

	var det int64
	sign := int64(1)
	for i, cell := range m[0] {
		if cell != 0 { // zero entries contribute nothing; skip the subtree
			det += sign * cell * cofactorInt(Minor(m, 0, i))
		}
		sign = -sign
	}

	return det
}

// cofactorBig mirrors cofactorInt over *big.Int.
func cofactorBig(m Matrix) *big.Int {
	if len(m) == 1 {
		return big.NewInt(m[0][0])
	}

	det := new(big.Int)
	term := new(big.Int)
	negative := false
	for i, cell := range m[0] {
		if cell != 0 {
			term.Mul(big.NewInt(cell), cofactorBig(Minor(m, 0, i)))
			if negative {
				det.Sub(det, term)
			} else {
				det.Add(det, term)
			}
		}
		negative = !negative
	}

	return det
}
