// SPDX-License-Identifier: MIT

package symbolic

import "github.com/katalvlaran/lvsparse/csc"

// TreeWork is reusable scratch for EliminationTree. The zero value is ready.
type TreeWork struct {
	ancestors AncestorTracker
	previous  csc.IntBuffer // ata: last column that touched each row
}

// EliminationTree computes the elimination tree of A into parent.
//
// Implementation:
//   - Columns k = 0..n-1 are processed in order, and parent[k] starts as -1.
//   - Each stored row i < k walks the compressed ancestor chain from i up to k.
//     The root reached has no parent yet and is adopted by k.
//   - With ata = true the tree describes AᵗA without forming it. For row r the
//     walk starts at the last column that touched r, so every pair of columns
//     sharing a row is linked.
//
// Inputs:
//   - A: without ata, the upper triangle of a symmetric matrix (entries below
//     the diagonal are skipped); with ata, any matrix (usually tall).
//   - parent: output, len(parent) >= A.NumCols; parent[i] == -1 marks a root.
//   - work: optional scratch; nil allocates.
//
// Panics (contract violation):
//   - ErrShortBuffer when parent is too short.
//
// Determinism: the tree depends only on A's pattern.
// Complexity: O(nz · α(n)) time, O(n + m) scratch.
func EliminationTree(A *csc.Matrix, ata bool, parent []int, work *TreeWork) {
	m, n := A.NumRows, A.NumCols
	if len(parent) < n {
		panic(symbolicErrorf(opEliminationTree, ErrShortBuffer))
	}
	if work == nil {
		work = &TreeWork{}
	}

	work.ancestors.Reset(n)
	var previous []int
	if ata {
		previous = csc.Adjust(&work.previous, m)
		for r := range previous {
			previous[r] = -1
		}
	}

	// For each column k, every entry above the diagonal (or, in ata mode, the
	// previous column sharing a row) is attached to k through its current root.
	var row, i int
	for k := 0; k < n; k++ {
		parent[k] = -1
		for p := A.ColIdx[k]; p < A.ColIdx[k+1]; p++ {
			row = A.NzRows[p]
			i = row
			if ata {
				i = previous[row]
			}
			if root := work.ancestors.Attach(i, k); root >= 0 {
				parent[root] = k
			}
			if ata {
				previous[row] = k
			}
		}
	}
}

// IsForest reports whether parent describes an elimination forest on n nodes:
// every entry is -1 or a larger index. Such a forest is acyclic by construction.
func IsForest(parent []int, n int) bool {
	if len(parent) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if p := parent[i]; p != -1 && (p <= i || p >= n) {
			return false
		}
	}

	return true
}
