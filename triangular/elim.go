// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/lvsparse/csc"

// SearchNzRowsElim computes the non-zero pattern of row k of the Cholesky
// factor L of a symmetric A, given A's elimination tree. It is the
// row-pattern query of an up-looking factorization.
//
// Row k of A is read as column k (A is symmetric; only its upper triangle,
// rows <= k, is used). From each entry A[i,k] the tree path i → parent[i] → …
// is followed until it meets a node already visited; every new node is a
// column with L[k,node] != 0.
//
// Inputs:
//   - s: output, len >= A.NumCols; also the per-path stack.
//   - marked: scratch, len >= A.NumCols, all false on entry; all false again on return.
//
// A is only read, so concurrent calls on the same A with their own s and
// marked are safe.
//
// Returns top, with the pattern in s[top:A.NumCols] in topological order.
// k itself is not part of the pattern.
func SearchNzRowsElim(A *csc.Matrix, k int, parent, s []int, marked []bool) int {
	n := A.NumCols
	if len(s) < n || len(marked) < n || len(parent) < n {
		panic(triangularErrorf(opSearchElim, ErrShortBuffer))
	}

	top := n
	marked[k] = true
	var i, length int
	for p := A.ColIdx[k]; p < A.ColIdx[k+1]; p++ {
		i = A.NzRows[p]
		if i > k {
			continue
		}
		length = 0
		for ; i != -1 && !marked[i]; i = parent[i] {
			s[length] = i
			length++
			marked[i] = true
		}
		// push the path onto the output stack
		for length > 0 {
			top--
			length--
			s[top] = s[length]
		}
	}

	for p := top; p < n; p++ {
		marked[s[p]] = false
	}
	marked[k] = false

	return top
}
