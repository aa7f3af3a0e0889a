// Package sequence provides small generic helpers over slices: set
// difference, run-length deduplication, zero shifting, suffix sums and
// parity outlier detection.
//
// All helpers are pure: inputs are never mutated and results own fresh
// backing arrays.
package sequence
