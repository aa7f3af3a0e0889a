package sequence

import "golang.org/x/exp/constraints"

// ArrayDiff returns the elements of a that are not present in b, keeping the
// order and multiplicity of a. The result is non-nil.
//
// Complexity: O(len(a) + len(b)).
func ArrayDiff[T comparable](a, b []T) []T {
	exclude := make(map[T]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}

	out := make([]T, 0, len(a))
	for _, v := range a {
		if _, drop := exclude[v]; !drop {
			out = append(out, v)
		}
	}

	return out
}

// UniqueInOrder collapses every run of equal adjacent elements into one,
// e.g. "AAAABBBCCDAABBB" → "ABCDAB".
//
// Complexity: O(n).
func UniqueInOrder[T comparable](seq []T) []T {
	out := make([]T, 0, len(seq))
	for i, v := range seq {
		if i == 0 || v != seq[i-1] {
			out = append(out, v)
		}
	}

	return out
}

// MoveZeros returns arr with every zero moved to the end while the relative
// order of the non-zero values is kept.
//
// Complexity: O(n).
func MoveZeros[T constraints.Integer](arr []T) []T {
	out := make([]T, len(arr)) // zero-filled tail
	j := 0
	for _, v := range arr {
		if v != 0 {
			out[j] = v
			j++
		}
	}

	return out
}

// PartsSums returns the sums of every suffix of ls, from the whole slice down
// to the empty suffix: len(result) == len(ls)+1 and the last element is 0.
//
// Complexity: O(n).
func PartsSums[T constraints.Integer | constraints.Float](ls []T) []T {
	out := make([]T, len(ls)+1)
	for i := len(ls) - 1; i >= 0; i-- {
		out[i] = out[i+1] + ls[i]
	}

	return out
}

// FindOutlier returns the single value whose parity differs from all others
// (one odd among evens, or one even among odds). The majority parity is
// decided by the first three values.
//
// Errors: ErrNoOutlier for fewer than three values or when every value shares
// the majority parity.
// Complexity: O(n).
func FindOutlier[T constraints.Integer](values []T) (T, error) {
	if len(values) < 3 {
		return 0, ErrNoOutlier
	}

	odd := 0
	for _, v := range values[:3] {
		if isOdd(v) {
			odd++
		}
	}
	wantOdd := odd < 2 // the outlier is odd when evens dominate

	for _, v := range values {
		if isOdd(v) == wantOdd {
			return v, nil
		}
	}

	return 0, ErrNoOutlier
}

func isOdd[T constraints.Integer](v T) bool {
	return v%2 != 0
}
