package sums

// SumPairs finds the pair of values in ints that adds up to target and whose
// second element appears earliest in the slice. The pair is returned in input
// order. ok is false when no such pair exists.
//
// Complexity: O(n) time, O(n) memory.
func SumPairs(ints []int, target int) (first, second int, ok bool) {
	seen := make(map[int]struct{}, len(ints))
	for _, v := range ints {
		if _, hit := seen[target-v]; hit {
			return target - v, v, true
		}
		seen[v] = struct{}{}
	}

	return 0, 0, false
}
