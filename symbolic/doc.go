// Package symbolic implements the structural analysis that precedes a sparse
// Cholesky (or QR) factorization: nothing here touches numeric values.
//
// Pipeline:
//
//	A (upper triangle, or any matrix with ata=true)
//	  → EliminationTree  parent[j]: smallest i > j with L[i,j] != 0, or -1
//	  → Postorder        post: descendants before ancestors, subtrees contiguous
//	  → ColumnCounts     counts[j]: nonzeros in column j of L, diagonal included
//
// AncestorTracker is the shared union-find (path compression, no rank) used by
// the tree builder and the column counter.
//
// Every traversal is iterative. Elimination trees of already triangular or
// banded inputs degenerate into chains as deep as the matrix is wide.
//
// Error model:
//   - Undersized outputs are contract violations and panic with an error
//     wrapping ErrShortBuffer (or ErrNonSquare).
//   - Malformed CSC structure is not validated on the hot path; see csc.CheckStructure.
//
// Concurrency: inputs are read-only; scratch (TreeWork, PostorderWork,
// ColumnCounter) must not be shared between goroutines.
package symbolic
