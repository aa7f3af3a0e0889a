// SPDX-License-Identifier: MIT

package sums

import "slices"

// ThreeSum returns every distinct triplet of values from nums that sums to zero.
//
// Implementation:
//   - Stage 1: sort a copy of nums ascending (the input is never mutated).
//   - Stage 2: for each outer index i, skipping values equal to nums[i-1],
//     reset lo = i+1 and hi = n-1 and converge:
//     sum < 0 → lo++, sum > 0 → hi--, sum == 0 → record, then step both
//     pointers past their duplicates.
//   - Stage 3: stop once nums[i] > 0, since no later triplet can reach zero.
//
// Behavior highlights:
//   - Each result is the ascending value triple; no triplet appears twice no
//     matter how many index triples realise it.
//   - Results are returned in ascending lexicographic order.
//   - len(nums) < 3 yields an empty, non-nil slice.
//
// Complexity:
//   - Time O(n log n + n²), Space O(n) for the sorted copy plus the result set.
func ThreeSum(nums []int) []Triplet {
	n := len(nums)
	found := NewTripletSet(0)
	if n < 3 {
		return found.Sorted()
	}

	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	for i := 0; i < n-2; i++ {
		a := sorted[i]
		if a > 0 {
			break
		}
		if i > 0 && a == sorted[i-1] {
			continue // same outer value already swept
		}

		lo, hi := i+1, n-1
		for lo < hi {
			sum := a + sorted[lo] + sorted[hi]
			switch {
			case sum < 0:
				lo++
			case sum > 0:
				hi--
			default:
				found.Add(Triplet{a, sorted[lo], sorted[hi]})
				b, c := sorted[lo], sorted[hi]
				for lo < hi && sorted[lo] == b {
					lo++
				}
				for lo < hi && sorted[hi] == c {
					hi--
				}
			}
		}
	}

	return found.Sorted()
}
