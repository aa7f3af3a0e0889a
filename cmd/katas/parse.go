package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/katas/matrix"
)

var errNoRows = errors.New("at least one row is required")

// parseInts converts every argument to an int.
func parseInts(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", a, err)
		}
		nums = append(nums, n)
	}

	return nums, nil
}

// parseMatrix turns arguments like "1,3" "2,5" into matrix rows.
// Shape is not checked here; that is left to matrix.DeterminantChecked.
func parseMatrix(args []string) (matrix.Matrix, error) {
	if len(args) == 0 {
		return nil, errNoRows
	}

	m := make(matrix.Matrix, 0, len(args))
	for i, a := range args {
		fields := strings.Split(a, ",")
		row := make([]int64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: parse %q: %w", i, f, err)
			}
			row = append(row, v)
		}
		m = append(m, row)
	}

	return m, nil
}
