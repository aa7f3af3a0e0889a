// Package matrix computes exact determinants of small integer matrices.
//
// The matrix package provides:
//
//   - Matrix, a row-slice [][]int64 view, and Dense, a flat row-major store.
//   - Determinant via Laplace (cofactor) expansion along the first row, in
//     int64 (Determinant, DeterminantChecked) and arbitrary precision
//     (DeterminantBig).
//   - Minor, the building block of the expansion, and Fprint for debugging.
//
// Determinant is fail-fast: empty, ragged or non-square input panics with a
// wrapped sentinel (ErrEmpty, ErrRagged, ErrNonSquare). DeterminantChecked
// returns the same sentinels as errors.
//
// Expansion is O(n!) and meant for n ≤ 5. All functions are pure and safe for
// concurrent use on independent inputs.
package matrix
