// Package triangular solves sparse triangular systems stored in CSC form.
//
// What:
//
//   - SolveL, SolveTranL, SolveU: dense right-hand side, solved in place.
//   - SolveColB, Solve: sparse right-hand side. The non-zero pattern of the
//     solution is found first by a reachability search (SearchNzRowsInX), so
//     the work is proportional to the fill of x, not to n.
//   - SolveTran: Gᵗ·X = B with sparse X and B.
//   - SearchNzRowsElim: the row pattern of a Cholesky factor from the
//     elimination tree, for up-looking factorizations.
//   - QualityTriangular: a scale-free singularity indicator.
//
// Conventions:
//
//   - In a lower triangle the diagonal is the first entry of each column; in
//     an upper triangle it is the last. Zero diagonals are not checked and
//     surface as ±Inf/NaN.
//   - Pivots: with pinv, logical column j of the triangle is stored in
//     column pinv[j]; a negative pinv[j] marks a column that is not
//     available, and row j is left as a residual.
//   - Every graph walk is iterative with an explicit stack.
//
// Scratch (Reach, Workspace, xi, s, mark arrays) is caller-owned and reused
// across calls. Matrices are only read, so concurrent solves on a shared G are
// safe as long as each goroutine has its own scratch.
package triangular
