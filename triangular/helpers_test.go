// SPDX-License-Identifier: MIT
package triangular_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsparse/csc"
)

const tol = 1e-8

// requireClose asserts got ≈ want within tol relative to the larger norm.
func requireClose(t *testing.T, want, got mat.Matrix, msgAndArgs ...interface{}) {
	t.Helper()
	scale := math.Max(1, math.Max(mat.Norm(want, math.Inf(1)), mat.Norm(got, math.Inf(1))))
	require.True(t, mat.EqualApprox(want, got, tol*scale), msgAndArgs...)
}

// denseVec wraps x as an n×1 column.
func denseVec(x []float64) *mat.Dense {
	return mat.NewDense(len(x), 1, append([]float64(nil), x...))
}

// product returns a·b as dense.
func product(a mat.Matrix, b mat.Matrix) *mat.Dense {
	var c mat.Dense
	c.Mul(a, b)

	return &c
}

// sorted returns an ascending copy.
func sorted(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)

	return out
}

// column returns B[:,j] as a dense slice.
func column(B *csc.Matrix, j int) []float64 {
	out := make([]float64, B.NumRows)
	for p := B.ColIdx[j]; p < B.ColIdx[j+1]; p++ {
		out[B.NzRows[p]] = B.NzValues[p]
	}

	return out
}
