// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/lvsparse/csc"

// SolveTran solves Gᵗ·X = B for sparse X and B, G square triangular.
//
// With pinv, logical column c of the triangle is stored in column pinv[c] of
// G (the convention of Solve), and the system solved is Lᵗ·X = B for that
// logical L.
//
// Implementation:
//   - B[:,k] is scattered into a dense x and its rows are marked.
//   - Lᵗ of a lower L is upper, so unknowns resolve from the last to the
//     first; an upper L resolves first to last.
//   - Each unknown is finished by solveTranColumn: the dot product of its
//     column against already resolved entries, then the division by the
//     diagonal, which always comes last.
//   - An unknown joins the pattern of X[:,k] when b has it or any resolved
//     entry touches it structurally, so the pattern is a superset of the
//     true non-zeros (exact cancellation keeps its entry).
//   - x and the marks are reset over the pattern only.
//
// Panics:
//   - ErrNonSquare when G is not square.
//   - ErrDimensionMismatch when B.NumRows != G.NumRows.
//
// Complexity: O(n + nz(G)) per column of B.
func SolveTran(G *csc.Matrix, lower bool, B, X *csc.Matrix, pinv []int, ws *Workspace) {
	n := G.NumRows
	if G.NumCols != n {
		panic(triangularErrorf(opSolveTran, ErrNonSquare))
	}
	if B.NumRows != n {
		panic(triangularErrorf(opSolveTran, ErrDimensionMismatch))
	}
	if ws == nil {
		ws = &Workspace{}
	}
	x := csc.AdjustFloat(&ws.x, n)
	clear(x)
	ws.reach.Reserve(n)
	marked := ws.reach.marked

	X.Reshape(n, B.NumCols, 0)
	var start int
	for colB := 0; colB < B.NumCols; colB++ {
		start = X.NzLength
		// 1. Scatter b and mark its rows as structurally non-zero.
		for p := B.ColIdx[colB]; p < B.ColIdx[colB+1]; p++ {
			x[B.NzRows[p]] = B.NzValues[p]
			marked[B.NzRows[p]] = true
		}

		// 2. Lᵗ is upper triangular: resolve from the last unknown; Uᵗ from the first.
		if lower {
			for c := n - 1; c >= 0; c-- {
				solveTranStep(G, c, pinv, x, marked, X)
			}
		} else {
			for c := 0; c < n; c++ {
				solveTranStep(G, c, pinv, x, marked, X)
			}
		}

		// 3. Reset only what this column touched.
		for p := start; p < X.NzLength; p++ {
			x[X.NzRows[p]] = 0
			marked[X.NzRows[p]] = false
		}
		X.ColIdx[colB+1] = X.NzLength
	}
	X.IndicesSorted = false
}

// solveTranStep resolves unknown c and appends it to X when it is non-zero
// structurally.
func solveTranStep(G *csc.Matrix, c int, pinv []int, x []float64, marked []bool, X *csc.Matrix) {
	J := pivotColumn(G, c, pinv)
	if J < 0 {
		if !marked[c] {
			return
		}
	} else if !solveTranColumn(G, J, c, x, marked) {
		return
	}

	marked[c] = true
	if X.NzLength == len(X.NzRows) {
		X.GrowMaxLength(2*X.NzLength+1, true)
	}
	X.NzRows[X.NzLength] = c
	X.NzValues[X.NzLength] = x[c]
	X.NzLength++
}

// solveTranColumn computes x[c] = (x[c] - Σ G[r,J]·x[r]) / G[c,J] over the
// marked rows r != c of stored column J. The diagonal entry is the one in row
// c and is applied after the sum is complete. It reports false, leaving x
// untouched, when neither x[c] nor any resolved entry contributes.
func solveTranColumn(G *csc.Matrix, J, c int, x []float64, marked []bool) bool {
	touched := marked[c]
	var diag, sum float64
	var r int
	for p := G.ColIdx[J]; p < G.ColIdx[J+1]; p++ {
		r = G.NzRows[p]
		if r == c {
			diag = G.NzValues[p]
			continue
		}
		if marked[r] {
			sum += G.NzValues[p] * x[r]
			touched = true
		}
	}
	if !touched {
		return false
	}
	x[c] = (x[c] - sum) / diag

	return true
}
