// Package lvsparse is the symbolic half of a sparse direct solver: everything
// a Cholesky or LU factorization needs to know about a matrix before it
// touches a single value, plus the sparse triangular solves that drive the
// numeric phase.
//
// 🚀 What is inside?
//
//	• csc/        — compressed sparse column storage, transpose, permutations, gonum bridge
//	• fillreduce/ — applies an injected fill-reducing ordering (P·A·Pᵗ or P·A·Q)
//	• symbolic/   — union-find ancestors, elimination tree, postorder, column counts
//	• triangular/ — dense and sparse triangular solves, reach search, row patterns, quality
//
// ✨ Why lvsparse?
//
//   - No recursion – every graph walk runs on an explicit stack, so depth is
//     bounded by n rather than by the goroutine stack
//   - No hidden allocation – scratch lives in caller-owned workspaces that are
//     reused across calls
//   - Pure Go – no cgo, gonum only as a bridge and test oracle
//
// Typical pipeline:
//
//	ap := fillreduce.NewApplier(fillreduce.WithStrategy(s), fillreduce.WithSymmetric(true))
//	C, _ := ap.Apply(A)
//	symbolic.EliminationTree(C, false, parent, nil)
//	symbolic.Postorder(parent, n, post, nil)
//	symbolic.ColumnCounts(C, false, parent, post, counts)
//
// See examples/ for a full factorization of a grid Laplacian.
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
