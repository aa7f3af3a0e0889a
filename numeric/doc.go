// Package numeric collects integer predicates and digit manipulations:
// primality, perfect squares, digit squaring, multiplicative persistence and
// multiplication tables.
//
// Square roots are computed exactly on integers; floating point is only used
// for an initial estimate that is corrected before any comparison.
package numeric
