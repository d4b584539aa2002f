// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/lvsparse/csc"

// Reach is scratch for the reachability search: a visit mark per node and a
// child cursor per stack level. The zero value is ready; marks are all false
// between calls.
type Reach struct {
	marked []bool
	cursor []int
}

// Reserve makes room for graphs of n nodes. Growth drops the old arrays,
// which are all-false between calls anyway.
func (r *Reach) Reserve(n int) {
	if len(r.marked) < n {
		r.marked = make([]bool, n)
	}
	if len(r.cursor) < n {
		r.cursor = make([]int, n)
	}
}

// Workspace bundles the scratch of Solve and SolveTran. The zero value is
// ready; do not share one between goroutines.
type Workspace struct {
	x     csc.FloatBuffer
	xi    csc.IntBuffer
	reach Reach
}

// pivotColumn returns the stored column of G that carries logical column j,
// or -1 when j has no usable column: a negative pivot, or j past the last
// column of a tall G.
func pivotColumn(G *csc.Matrix, j int, pinv []int) int {
	J := j
	if pinv != nil {
		J = pinv[j]
	}
	if J < 0 || J >= G.NumCols {
		return -1
	}

	return J
}

// SearchNzRowsInX computes the rows of x that are structurally non-zero in
// G·x = B[:,colB], in an order that is valid for substitution.
//
// Implementation:
//   - The graph has an edge j → i for each stored G[i, J], J the pivot column of j.
//   - A depth-first search runs from each unvisited row of B[:,colB]. Nodes are
//     emitted in finishing order into the tail of xi, so xi[top:] lists every
//     node after all nodes that depend on it.
//   - The head of xi doubles as the explicit DFS stack; depth is bounded by n,
//     never by the call stack.
//   - Marks are cleared over xi[top:] before returning, so the cost tracks the
//     size of the result rather than n.
//
// Inputs:
//   - G: lower or upper triangle (possibly tall, possibly column-pivoted).
//   - pinv: optional; logical column j lives in stored column pinv[j]. Negative
//     entries mark columns that are not available yet; they have no children.
//   - xi: output, len >= G.NumRows.
//   - reach: optional scratch; nil allocates.
//
// Returns: top, with the pattern in xi[top:G.NumRows].
//
// Complexity: O(|result| + edges among result rows).
func SearchNzRowsInX(G, B *csc.Matrix, colB int, pinv []int, xi []int, reach *Reach) int {
	n := G.NumRows
	if len(xi) < n {
		panic(triangularErrorf(opSearchX, ErrShortBuffer))
	}
	if B.NumRows > n {
		panic(triangularErrorf(opSearchX, ErrDimensionMismatch))
	}
	if reach == nil {
		reach = &Reach{}
	}
	reach.Reserve(n)

	top := n
	var row int
	for p := B.ColIdx[colB]; p < B.ColIdx[colB+1]; p++ {
		row = B.NzRows[p]
		if !reach.marked[row] {
			top = reach.depthFirst(row, G, top, pinv, xi)
		}
	}

	for p := top; p < n; p++ {
		reach.marked[xi[p]] = false
	}

	return top
}

// depthFirst runs one iterative DFS from start and returns the new top.
func (r *Reach) depthFirst(start int, G *csc.Matrix, top int, pinv []int, xi []int) int {
	head := 0
	xi[head] = start

	var j, J, end, child int
	var done bool
	for head >= 0 {
		j = xi[head]
		J = pivotColumn(G, j, pinv)
		if !r.marked[j] {
			r.marked[j] = true
			if J < 0 {
				r.cursor[head] = 0
			} else {
				r.cursor[head] = G.ColIdx[J]
			}
		}

		end = 0
		if J >= 0 {
			end = G.ColIdx[J+1]
		}
		done = true
		for p := r.cursor[head]; p < end; p++ {
			child = G.NzRows[p]
			if r.marked[child] {
				continue
			}
			r.cursor[head] = p + 1 // resume here when j is on top again
			head++
			xi[head] = child
			done = false

			break
		}

		if done {
			head--
			top--
			xi[top] = j
		}
	}

	return top
}

// SolveColB solves G·x = B[:,colB] for a single sparse column.
//
// The rows reached by SearchNzRowsInX are cleared in x, B's column is
// scattered into them, and a single substitution pass runs over xi[top:].
// For lower G the diagonal is the first entry of its column, for upper G the
// last. Rows without a usable pivot column are left as residuals.
//
// x must have len >= G.NumRows; only x[xi[top:]] is meaningful on return.
// xi must have len >= G.NumRows.
//
// Returns top, with the pattern in xi[top:G.NumRows].
func SolveColB(G *csc.Matrix, lower bool, B *csc.Matrix, colB int, x []float64,
	pinv []int, xi []int, reach *Reach) int {
	n := G.NumRows
	if len(x) < n {
		panic(triangularErrorf(opSolveColB, ErrShortBuffer))
	}
	top := SearchNzRowsInX(G, B, colB, pinv, xi, reach)

	// 1. Sparse clear over the reached pattern, then scatter b.
	for p := top; p < n; p++ {
		x[xi[p]] = 0
	}
	for p := B.ColIdx[colB]; p < B.ColIdx[colB+1]; p++ {
		x[B.NzRows[p]] = B.NzValues[p]
	}

	// 2. Substitute in reach order; the diagonal sits first in a lower
	//    column and last in an upper one.
	var j, J, p0, p1 int
	var xj float64
	for px := top; px < n; px++ {
		j = xi[px]
		J = pivotColumn(G, j, pinv)
		if J < 0 {
			continue
		}
		if lower {
			x[j] /= G.NzValues[G.ColIdx[J]]
			p0, p1 = G.ColIdx[J]+1, G.ColIdx[J+1]
		} else {
			x[j] /= G.NzValues[G.ColIdx[J+1]-1]
			p0, p1 = G.ColIdx[J], G.ColIdx[J+1]-1
		}
		xj = x[j]
		for p := p0; p < p1; p++ {
			x[G.NzRows[p]] -= G.NzValues[p] * xj
		}
	}

	return top
}

// Solve solves G·X = B for sparse X and B, one column of B at a time.
//
// X is reshaped to G.NumCols × B.NumCols. With pinv, G's stored column
// pinv[j] is logical column j and X is indexed by logical row. Reached rows
// whose pivot is negative are stored with their residual value, as an
// up-looking LU reads them back to choose the next pivot. For a tall lower G
// only the square part is solved; the trailing rows fall outside X and are
// not stored. Row indices in X are in substitution order, not sorted.
//
// Panics with ErrDimensionMismatch when B.NumRows != G.NumRows.
//
// Complexity: per column, proportional to the reached pattern plus its edges.
func Solve(G *csc.Matrix, lower bool, B, X *csc.Matrix, pinv []int, ws *Workspace) {
	if B.NumRows != G.NumRows {
		panic(triangularErrorf(opSolve, ErrDimensionMismatch))
	}
	if ws == nil {
		ws = &Workspace{}
	}
	n := G.NumRows
	x := csc.AdjustFloat(&ws.x, n)
	xi := csc.Adjust(&ws.xi, n)

	X.Reshape(G.NumCols, B.NumCols, 0)
	var top, j, need int
	for colB := 0; colB < B.NumCols; colB++ {
		top = SolveColB(G, lower, B, colB, x, pinv, xi, &ws.reach)

		need = X.NzLength + n - top
		if need > len(X.NzRows) {
			X.GrowMaxLength(max(2*X.NzLength, need), true)
		}
		for p := top; p < n; p++ {
			j = xi[p]
			if j >= X.NumRows {
				continue
			}
			X.NzRows[X.NzLength] = j
			X.NzValues[X.NzLength] = x[j]
			X.NzLength++
		}
		X.ColIdx[colB+1] = X.NzLength
	}
	X.IndicesSorted = false
}
