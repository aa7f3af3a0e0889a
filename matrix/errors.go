// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Checked entry points return these sentinels (possibly wrapped with an
// operation tag) and tests MUST match them via errors.Is. The fail-fast entry
// points (Determinant, Minor) panic with the same wrapped sentinels.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. DO NOT %w wrap these sentinels when returning directly from
// validators; facades wrap with matrixErrorf(op, ErrX) and callers still use
// errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty -> ragged -> non-square -> index out of range.

var (
	// ErrEmpty is returned when a matrix has no rows or its first row has no columns.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrRagged indicates that rows of a matrix have different lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates that a nil *Dense receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Operation name constants for unified error wrapping.
const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opFromRows    = "FromRows"
	opFprint      = "Fprint"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
