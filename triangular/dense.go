// SPDX-License-Identifier: MIT

// Package triangular - dense right-hand sides.
//
// Contract shared by SolveL, SolveTranL and SolveU:
//   - x holds b on entry and the solution on return (in place).
//   - The diagonal is the first stored entry of each column of L and the last
//     of each column of U. It is not checked; a zero diagonal yields ±Inf/NaN.
//   - No pivoting: permute G and b beforehand.

package triangular

import "github.com/katalvlaran/lvsparse/csc"

// SolveL solves L·x = b by forward substitution, column by column.
//
// Complexity: O(n + nz).
func SolveL(L *csc.Matrix, x []float64) {
	n := L.NumCols
	if len(x) < n {
		panic(triangularErrorf(opSolveL, ErrShortBuffer))
	}

	idx0 := L.ColIdx[0]
	var idx1 int
	var xj float64
	for col := 0; col < n; col++ {
		idx1 = L.ColIdx[col+1]
		x[col] /= L.NzValues[idx0]
		xj = x[col]
		for p := idx0 + 1; p < idx1; p++ {
			x[L.NzRows[p]] -= L.NzValues[p] * xj
		}
		idx0 = idx1
	}
}

// SolveTranL solves Lᵗ·x = b. Columns of L are rows of Lᵗ, so each unknown
// is a dot product against already solved entries, from the last column back.
func SolveTranL(L *csc.Matrix, x []float64) {
	n := L.NumCols
	if len(x) < n {
		panic(triangularErrorf(opSolveTranL, ErrShortBuffer))
	}

	var idx0 int
	for j := n - 1; j >= 0; j-- {
		idx0 = L.ColIdx[j]
		for p := idx0 + 1; p < L.ColIdx[j+1]; p++ {
			x[j] -= L.NzValues[p] * x[L.NzRows[p]]
		}
		x[j] /= L.NzValues[idx0]
	}
}

// SolveU solves U·x = b by backward substitution.
func SolveU(U *csc.Matrix, x []float64) {
	n := U.NumCols
	if len(x) < n {
		panic(triangularErrorf(opSolveU, ErrShortBuffer))
	}

	idx1 := U.ColIdx[n]
	var idx0 int
	var xj float64
	for col := n - 1; col >= 0; col-- {
		idx0 = U.ColIdx[col]
		x[col] /= U.NzValues[idx1-1]
		xj = x[col]
		for p := idx0; p < idx1-1; p++ {
			x[U.NzRows[p]] -= U.NzValues[p] * xj
		}
		idx1 = idx0
	}
}
