// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks on row-slice matrices.
//  - Keep Determinant and friends minimal by delegating empty/ragged/square checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Each check is O(rows) at most; values are never inspected.

package matrix

// ValidateNotEmpty ensures m has at least one row and the first row at least one column.
//
// Returns ErrEmpty otherwise.
// Complexity: O(1).
func ValidateNotEmpty(m Matrix) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmpty
	}

	return nil
}

// ValidateRectangular ensures every row of m has the length of the first row.
//
// Implementation: assumes m is not empty (caller must ensure).
// Returns ErrRagged on the first row whose length differs.
// Complexity: O(rows).
func ValidateRectangular(m Matrix) error {
	cols := len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return ErrRagged
		}
	}

	return nil
}

// ValidateSquare checks that m is square (rows == cols).
//
// Implementation: assumes m is non-empty and rectangular.
// Returns ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if len(m) != len(m[0]) {
		return ErrNonSquare
	}

	return nil
}

// Validate runs the composite check used by every determinant entry point:
// NotEmpty → Rectangular → Square. The first violation wins.
//
// Complexity: O(rows).
func Validate(m Matrix) error {
	if err := ValidateNotEmpty(m); err != nil {
		return err
	}
	if err := ValidateRectangular(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}
