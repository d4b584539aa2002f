// SPDX-License-Identifier: MIT

// Package symbolic - column counts of a Cholesky (or QR R) factor.
//
// The row-subtree method: the nonzero pattern of row i of L is a subtree of
// the elimination tree whose leaves are the "first" columns j < i with
// A[j,i] != 0 in postorder. Counting leaves and subtracting the least common
// ancestor of consecutive leaves gives every column count in near linear time
// without forming L.

package symbolic

import "github.com/katalvlaran/lvsparse/csc"

// leaf classification returned by ColumnCounter.isLeaf
const (
	notLeaf = iota
	firstLeaf
	subsequentLeaf
)

// ColumnCounter predicts the number of nonzeros in each column of the
// Cholesky factor of A (or of AᵗA in ata mode) from A's pattern, its
// elimination tree and a postorder of that tree.
//
// A ColumnCounter keeps its scratch between calls and is not safe for
// concurrent use.
type ColumnCounter struct {
	ata bool

	ancestors AncestorTracker
	maxFirst  []int // largest first[j] seen so far for row i
	prevLeaf  []int // previous leaf found in row subtree i
	first     []int // first[j]: smallest postorder rank among j's descendants
	head      []int // ata: per-rank list of rows, len n+1
	next      []int // ata: next row in the same list
	postInv   []int // ata: rank of each node

	at csc.Matrix    // transpose of the input
	gw csc.IntBuffer // transpose scratch
}

// NewColumnCounter returns a counter. With ata set the counts describe the
// factor of AᵗA (the R of a QR factorization); otherwise A is read as the
// upper triangle of a symmetric matrix.
func NewColumnCounter(ata bool) *ColumnCounter {
	return &ColumnCounter{ata: ata}
}

// ATA reports the mode chosen at construction.
func (c *ColumnCounter) ATA() bool { return c.ata }

// ColumnCounts is a one-shot helper around NewColumnCounter(ata).Process.
func ColumnCounts(A *csc.Matrix, ata bool, parent, post, counts []int) {
	NewColumnCounter(ata).Process(A, parent, post, counts)
}

// Process writes the predicted column counts of the factor into counts.
//
// Implementation:
//   - Stage 1: first descendants. A node whose first descendant is unset when
//     reached in postorder is a leaf and starts with delta 1.
//   - Stage 2 (ata): rows of A are bucketed by the smallest postorder rank of
//     their columns, emulating the columns of AᵗA without forming it.
//   - Stage 3: for every node j in postorder and every entry (j, i) with i > j,
//     classify j in the row subtree of i. A first leaf adds one to delta[j].
//     A subsequent leaf adds one to delta[j] and removes one from the least
//     common ancestor with the previous leaf. Finished subtrees are linked
//     under their parent.
//   - Stage 4: deltas are summed child to parent in ascending index order,
//     which is a valid topological order since parent[j] > j.
//
// Inputs:
//   - A: square upper triangle (ata=false) or any matrix (ata=true).
//   - parent, post: elimination tree of A and one of its postorders.
//   - counts: output, len >= A.NumCols; also used for the deltas.
//
// Panics:
//   - ErrShortBuffer when parent, post or counts is shorter than A.NumCols.
//   - ErrNonSquare when ata is false and A is not square.
//
// Notes:
//   - The counts are exact for the structural factor; numeric cancellation can
//     only make the real factor sparser.
//   - An isolated column counts its diagonal: counts[j] == 1.
//
// Complexity: O(nz · α(n)) time, O(m + n) scratch plus the transpose of A.
func (c *ColumnCounter) Process(A *csc.Matrix, parent, post, counts []int) {
	n := A.NumCols
	if len(parent) < n || len(post) < n || len(counts) < n {
		panic(symbolicErrorf(opColumnCounts, ErrShortBuffer))
	}
	if !c.ata && A.NumRows != n {
		panic(symbolicErrorf(opColumnCounts, ErrNonSquare))
	}

	// 1. Scratch, transpose, and the first descendant of every node.
	c.initialize(A)
	delta := counts
	c.findFirstDescendant(parent, post, delta)
	// 2. In ata mode rows are grouped by the earliest column they touch.
	if c.ata {
		c.initATA(post)
	}
	c.ancestors.Reset(n)

	// 3. Walk the tree in postorder; each leaf of a row subtree adds one,
	//    each least common ancestor takes the overlap back.

	atp, ati := c.at.ColIdx, c.at.NzRows
	var j, i, lca int
	for k := 0; k < n; k++ {
		j = post[k]
		if parent[j] != -1 {
			delta[parent[j]]-- // j is not a root
		}
		for J := c.listHead(k, j); J != -1; J = c.listNext(J) {
			for p := atp[J]; p < atp[J+1]; p++ {
				i = ati[p]
				switch c.isLeaf(i, j, &lca) {
				case firstLeaf:
					delta[j]++
				case subsequentLeaf:
					delta[j]++
					delta[lca]--
				}
			}
		}
		if parent[j] != -1 {
			c.ancestors.Link(j, parent[j])
		}
	}

	// 4. Sum the deltas up the tree.
	for j = 0; j < n; j++ {
		if parent[j] != -1 {
			counts[parent[j]] += counts[j]
		}
	}
}

// initialize sizes the scratch and transposes A.
func (c *ColumnCounter) initialize(A *csc.Matrix) {
	m, n := A.NumRows, A.NumCols
	c.maxFirst = fillNeg(c.maxFirst, n)
	c.prevLeaf = fillNeg(c.prevLeaf, n)
	c.first = fillNeg(c.first, n)
	if c.ata {
		c.head = fillNeg(c.head, n+1)
		c.next = fillNeg(c.next, m)
		c.postInv = fillNeg(c.postInv, n)
	}
	csc.Transpose(A, &c.at, &c.gw)
}

func (c *ColumnCounter) findFirstDescendant(parent, post, delta []int) {
	n := len(c.first)
	for k := 0; k < n; k++ {
		j := post[k]
		if c.first[j] == -1 {
			delta[j] = 1 // leaf
		} else {
			delta[j] = 0
		}
		for ; j != -1 && c.first[j] == -1; j = parent[j] {
			c.first[j] = k
		}
	}
}

// initATA links every row i of A into head[k], k being the smallest
// postorder rank among the columns of row i. Empty rows land in head[n],
// which the main loop never visits.
func (c *ColumnCounter) initATA(post []int) {
	n := len(c.first)
	for k := 0; k < n; k++ {
		c.postInv[post[k]] = k
	}
	atp, ati := c.at.ColIdx, c.at.NzRows
	for i := 0; i < c.at.NumCols; i++ {
		k := n
		for p := atp[i]; p < atp[i+1]; p++ {
			k = min(k, c.postInv[ati[p]])
		}
		c.next[i] = c.head[k]
		c.head[k] = i
	}
}

func (c *ColumnCounter) listHead(k, j int) int {
	if c.ata {
		return c.head[k]
	}

	return j
}

func (c *ColumnCounter) listNext(J int) int {
	if c.ata {
		return c.next[J]
	}

	return -1
}

// isLeaf classifies j in the row subtree of i. For a subsequent leaf, lca is
// set to the least common ancestor of j and the previous leaf.
func (c *ColumnCounter) isLeaf(i, j int, lca *int) int {
	if i <= j || c.first[j] <= c.maxFirst[i] {
		return notLeaf
	}
	c.maxFirst[i] = c.first[j]
	jprev := c.prevLeaf[i]
	c.prevLeaf[i] = j
	if jprev == -1 {
		return firstLeaf
	}
	*lca = c.ancestors.Find(jprev)

	return subsequentLeaf
}

// fillNeg returns buf resized to n with every entry set to -1.
func fillNeg(buf []int, n int) []int {
	if cap(buf) < n {
		buf = make([]int, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = -1
	}

	return buf
}
