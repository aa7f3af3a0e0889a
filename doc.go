// Package katas is a collection of small, self-contained algorithms, each a
// pure function with its own tests.
//
// What's inside:
//
//	matrix/   — exact integer determinants by cofactor expansion (+ big.Int variant)
//	sums/     — ThreeSum (distinct zero-sum triplets) and SumPairs
//	sequence/ — generic slice helpers: ArrayDiff, UniqueInOrder, MoveZeros, PartsSums, FindOutlier
//	numeric/  — IsPrime, IsSquare, FindNextSquare, SquareDigits, Persistence, MultiplicationTable
//	text/     — CreatePhoneNumber, Disemvowel, CamelCase, RevRot, FindMissingLetter, GoodVsEvil
//	deadfish/ — the four-command Deadfish interpreter
//	cmd/katas — a cobra driver over threesum, det and deadfish
//
// Nothing here keeps state between calls and nothing performs I/O, so every
// function is safe to call concurrently on independent inputs.
//
// Quick example:
//
//	| 1 3 |
//	| 2 5 |   det = 1·5 − 3·2 = −1
//
//	go get github.com/katalvlaran/katas
package katas
