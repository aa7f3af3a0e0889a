package sums

import (
	"fmt"
	"slices"
)

// Triplet is an unordered multiset of three integers, stored in ascending
// order so that == on two Triplets is multiset equality.
type Triplet [3]int

// NewTriplet returns the canonical (ascending) Triplet for a, b, c.
func NewTriplet(a, b, c int) Triplet {
	t := Triplet{a, b, c}
	slices.Sort(t[:])

	return t
}

// Sum returns a + b + c.
func (t Triplet) Sum() int {
	return t[0] + t[1] + t[2]
}

// String renders the triplet as "(a, b, c)".
func (t Triplet) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t[0], t[1], t[2])
}

// compareTriplets orders triplets lexicographically.
func compareTriplets(x, y Triplet) int {
	return slices.Compare(x[:], y[:])
}

// TripletSet is a set of canonical triplets.
// The zero value is not usable; create one with NewTripletSet.
type TripletSet map[Triplet]struct{}

// NewTripletSet allocates an empty set with room for n entries.
func NewTripletSet(n int) TripletSet {
	return make(TripletSet, n)
}

// Add inserts the canonical form of t and reports whether it was new.
func (s TripletSet) Add(t Triplet) bool {
	t = NewTriplet(t[0], t[1], t[2])
	if _, ok := s[t]; ok {
		return false
	}
	s[t] = struct{}{}

	return true
}

// Has reports whether the canonical form of t is in the set.
func (s TripletSet) Has(t Triplet) bool {
	_, ok := s[NewTriplet(t[0], t[1], t[2])]

	return ok
}

// Len returns the number of distinct triplets.
func (s TripletSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending lexicographic order.
// The result is non-nil even for an empty set.
func (s TripletSet) Sorted() []Triplet {
	out := make([]Triplet, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.SortFunc(out, compareTriplets)

	return out
}
