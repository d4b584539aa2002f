// SPDX-License-Identifier: MIT
// Package csc - structural plumbing shared by the symbolic and triangular kernels.
//
// Purpose:
//   - Transpose, permutations (row, two-sided, symmetric) and permutation inverses.
//   - Row concatenation used to build tall systems.
//
// Contract:
//   - Output matrices are reshaped; a nil output allocates a new one.
//   - Inputs are never modified.
//   - Length violations are programmer errors and panic with a wrapped sentinel.

package csc

import "fmt"

// Transpose writes aᵗ into at (allocated when nil) and returns it. Row
// indices of the result come out sorted.
//
// Implementation:
//   - Stage 1: histogram of row occurrences in a.
//   - Stage 2: ColSum turns it into column pointers of aᵗ.
//   - Stage 3: scatter entries column by column, so each output column is ascending.
//
// Complexity: O(rows + cols + nz).
func Transpose(a, at *Matrix, gw *IntBuffer) *Matrix {
	if at == nil {
		at = &Matrix{}
	}
	w := AdjustZeroed(gw, a.NumRows, a.NumRows)
	for p := 0; p < a.NzLength; p++ {
		w[a.NzRows[p]]++
	}

	at.Reshape(a.NumCols, a.NumRows, a.NzLength)
	at.ColSum(w)

	var q int
	for j := 0; j < a.NumCols; j++ {
		for p := a.ColIdx[j]; p < a.ColIdx[j+1]; p++ {
			q = w[a.NzRows[p]]
			w[a.NzRows[p]]++
			at.NzRows[q] = j
			at.NzValues[q] = a.NzValues[p]
		}
	}
	at.IndicesSorted = true

	return at
}

// ValidatePermutation reports ErrBadPermutation unless p is a bijection on 0..n-1.
func ValidatePermutation(p []int, n int) error {
	if len(p) != n {
		return fmt.Errorf("length %d, want %d: %w", len(p), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("p[%d]=%d: %w", i, v, ErrBadPermutation)
		}
		seen[v] = true
	}

	return nil
}

// PermutationInverse writes the inverse of p into inverse (allocated when
// nil or too short) so that inverse[p[i]] == i, and returns it.
func PermutationInverse(p, inverse []int) []int {
	if len(inverse) < len(p) {
		inverse = make([]int, len(p))
	}
	for i, v := range p {
		inverse[v] = i
	}

	return inverse[:len(p)]
}

// PermuteRowInv moves row i of in to row permInv[i] of out.
func PermuteRowInv(permInv []int, in, out *Matrix) *Matrix {
	if len(permInv) < in.NumRows {
		panic(cscErrorf(opPermute, ErrShortBuffer))
	}

	return Permute(permInv, in, nil, out)
}

// Permute computes out[permRowInv[i], j] = in[i, permCol[j]]. Either vector
// may be nil to leave that side unpermuted.
//
// Complexity: O(cols + nz).
func Permute(permRowInv []int, in *Matrix, permCol []int, out *Matrix) *Matrix {
	if permRowInv != nil && len(permRowInv) < in.NumRows {
		panic(cscErrorf(opPermute, ErrShortBuffer))
	}
	if permCol != nil && len(permCol) < in.NumCols {
		panic(cscErrorf(opPermute, ErrShortBuffer))
	}
	if out == nil {
		out = &Matrix{}
	}
	out.Reshape(in.NumRows, in.NumCols, in.NzLength)

	q := 0
	var src, row int
	for j := 0; j < in.NumCols; j++ {
		src = j
		if permCol != nil {
			src = permCol[j]
		}
		for p := in.ColIdx[src]; p < in.ColIdx[src+1]; p++ {
			row = in.NzRows[p]
			if permRowInv != nil {
				row = permRowInv[row]
			}
			out.NzRows[q] = row
			out.NzValues[q] = in.NzValues[p]
			q++
		}
		out.ColIdx[j+1] = q
	}
	out.NzLength = q
	out.IndicesSorted = permRowInv == nil && in.IndicesSorted

	return out
}

// PermuteSymmetric applies P·A·Pᵗ to a symmetric matrix stored as its upper
// triangle. Entries below the diagonal of in are ignored; out holds the upper
// triangle of the permuted matrix.
//
// Implementation:
//   - Stage 1: count entries per output column (the larger of the two permuted indices).
//   - Stage 2: ColSum, then scatter each entry to (min, max) of its permuted coordinates.
//
// Complexity: O(n + nz).
func PermuteSymmetric(in *Matrix, permInv []int, out *Matrix, gw *IntBuffer) *Matrix {
	if in.NumRows != in.NumCols {
		panic(cscErrorf(opPermSym, ErrNonSquare))
	}
	n := in.NumCols
	if len(permInv) != n {
		panic(cscErrorf(opPermSym, ErrDimensionMismatch))
	}
	if out == nil {
		out = &Matrix{}
	}

	w := AdjustZeroed(gw, n, n)
	out.Reshape(n, n, 0)

	var i, i2, j2 int
	for j := 0; j < n; j++ {
		j2 = permInv[j]
		for p := in.ColIdx[j]; p < in.ColIdx[j+1]; p++ {
			i = in.NzRows[p]
			if i > j {
				continue
			}
			i2 = permInv[i]
			w[max(i2, j2)]++
		}
	}

	out.ColSum(w)

	var q int
	for j := 0; j < n; j++ {
		j2 = permInv[j]
		for p := in.ColIdx[j]; p < in.ColIdx[j+1]; p++ {
			i = in.NzRows[p]
			if i > j {
				continue
			}
			i2 = permInv[i]
			q = w[max(i2, j2)]
			w[max(i2, j2)]++
			out.NzRows[q] = min(i2, j2)
			out.NzValues[q] = in.NzValues[p]
		}
	}

	return out
}

// PermuteVector computes output[k] = input[perm[k]].
func PermuteVector(perm []int, input, output []float64) {
	for k, p := range perm {
		output[k] = input[p]
	}
}

// PermuteInvVector computes output[perm[k]] = input[k].
func PermuteInvVector(perm []int, input, output []float64) {
	for k, p := range perm {
		output[p] = input[k]
	}
}

// ConcatRows stacks top above bottom. Both must have the same column count.
func ConcatRows(top, bottom, out *Matrix) *Matrix {
	if top.NumCols != bottom.NumCols {
		panic(cscErrorf(opConcatRows, ErrDimensionMismatch))
	}
	if out == nil {
		out = &Matrix{}
	}
	out.Reshape(top.NumRows+bottom.NumRows, top.NumCols, top.NzLength+bottom.NzLength)

	q := 0
	for j := 0; j < top.NumCols; j++ {
		for p := top.ColIdx[j]; p < top.ColIdx[j+1]; p++ {
			out.NzRows[q] = top.NzRows[p]
			out.NzValues[q] = top.NzValues[p]
			q++
		}
		for p := bottom.ColIdx[j]; p < bottom.ColIdx[j+1]; p++ {
			out.NzRows[q] = bottom.NzRows[p] + top.NumRows
			out.NzValues[q] = bottom.NzValues[p]
			q++
		}
		out.ColIdx[j+1] = q
	}
	out.NzLength = q
	out.IndicesSorted = top.IndicesSorted && bottom.IndicesSorted

	return out
}
