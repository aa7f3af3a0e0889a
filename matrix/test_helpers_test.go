// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for determinant tests.
package matrix_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/katas/matrix"
)

// recoverErr runs fn and returns the error it panicked with, or nil if it
// returned normally. Non-error panic values are converted with fmt.Errorf.
func recoverErr(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e

			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	fn()

	return nil
}

// randomMatrix builds an n×n matrix with entries in [-bound, bound].
func randomMatrix(rng *rand.Rand, n int, bound int64) matrix.Matrix {
	m := make(matrix.Matrix, n)
	for i := range m {
		m[i] = make([]int64, n)
		for j := range m[i] {
			m[i][j] = rng.Int63n(2*bound+1) - bound
		}
	}

	return m
}

// leibniz is the reference permutation expansion:
// det(m) = Σ_σ sgn(σ) Π_i m[i][σ(i)].
func leibniz(m matrix.Matrix) int64 {
	n := len(m)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var det int64
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			prod := int64(1)
			for i, c := range perm {
				prod *= m[i][c]
			}
			if inversions(perm)%2 == 1 {
				prod = -prod
			}
			det += prod

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)

	return det
}

// inversions counts pairs i<j with p[i] > p[j].
func inversions(p []int) int {
	count := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				count++
			}
		}
	}

	return count
}
