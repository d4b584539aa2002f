// SPDX-License-Identifier: MIT

package triangular

import (
	"math"

	"github.com/katalvlaran/lvsparse/csc"
)

// QualityTriangular returns |Π diag[i] / max|diag||| over the leading
// min(rows, cols) diagonal of T. The value is scale invariant and in [0, 1];
// values near zero flag a nearly singular triangle. It returns 0 when every
// diagonal entry is zero (or the diagonal is empty).
//
// Complexity: O(nz).
func QualityTriangular(T *csc.Matrix) float64 {
	n := min(T.NumRows, T.NumCols)

	var maxAbs float64
	for i := 0; i < n; i++ {
		maxAbs = math.Max(maxAbs, math.Abs(T.Get(i, i)))
	}
	if maxAbs == 0 {
		return 0
	}

	quality := 1.0
	for i := 0; i < n; i++ {
		quality *= T.Get(i, i) / maxAbs
	}

	return math.Abs(quality)
}
