// Package sums finds combinations of integers that add up to a target.
//
// What & Why:
//
//	ThreeSum returns every distinct multiset {a, b, c} drawn from the input with
//	a + b + c == 0. It sorts a copy of the input and runs the classic two-pointer
//	sweep: for each outer index the inner pointers are reset to bracket the rest
//	of the slice and move inward, skipping repeated values so each value triple
//	is reported once. Results are collected into a TripletSet keyed on the
//	ascending triple, so distinct index triples that realise the same values
//	collapse into one entry.
//
//	SumPairs returns the pair that reaches a target earliest when scanning left
//	to right.
//
// Complexity:
//
//	ThreeSum: O(n²) time after an O(n log n) sort, O(n + k) extra memory for k results.
//	SumPairs: O(n) time, O(n) memory.
//
// Errors:
//
//	None. Every input, including empty or short slices, has a defined result.
package sums
