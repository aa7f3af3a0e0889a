package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/katas/sequence"
)

func ExampleUniqueInOrder() {
	fmt.Println(string(sequence.UniqueInOrder([]rune("AAAABBBCCDAABBB"))))
	// Output: ABCDAB
}

func ExampleArrayDiff() {
	fmt.Println(sequence.ArrayDiff([]int{1, 2, 2, 3}, []int{2}))
	// Output: [1 3]
}
