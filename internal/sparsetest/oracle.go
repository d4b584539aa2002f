// SPDX-License-Identifier: MIT

package sparsetest

import "github.com/katalvlaran/lvsparse/csc"

// Pattern is a dense boolean nonzero pattern, Pattern[i][j] == A[i,j] != 0.
type Pattern [][]bool

// NewPattern returns an all-false rows×cols pattern.
func NewPattern(rows, cols int) Pattern {
	p := make(Pattern, rows)
	for i := range p {
		p[i] = make([]bool, cols)
	}

	return p
}

// SymmetricPattern mirrors the stored upper-triangle entries of a into a
// full symmetric n×n pattern with a structurally present diagonal.
func SymmetricPattern(a *csc.Matrix) Pattern {
	n := a.NumCols
	p := NewPattern(n, n)
	for j := 0; j < n; j++ {
		p[j][j] = true
		for q := a.ColIdx[j]; q < a.ColIdx[j+1]; q++ {
			if i := a.NzRows[q]; i <= j {
				p[i][j], p[j][i] = true, true
			}
		}
	}

	return p
}

// GramPattern returns the pattern of AᵗA with the diagonal present.
func GramPattern(a *csc.Matrix) Pattern {
	n := a.NumCols
	rows := make([][]int, a.NumRows)
	for j := 0; j < n; j++ {
		for q := a.ColIdx[j]; q < a.ColIdx[j+1]; q++ {
			rows[a.NzRows[q]] = append(rows[a.NzRows[q]], j)
		}
	}
	p := NewPattern(n, n)
	for j := 0; j < n; j++ {
		p[j][j] = true
	}
	for _, cols := range rows {
		for _, x := range cols {
			for _, y := range cols {
				p[x][y] = true
			}
		}
	}

	return p
}

// Factor performs boolean symbolic elimination on a symmetric pattern and
// returns the full pattern of L + Lᵗ. It is O(n³) and meant for small n.
func Factor(sym Pattern) Pattern {
	n := len(sym)
	f := NewPattern(n, n)
	for i := range sym {
		copy(f[i], sym[i])
	}
	for k := 0; k < n; k++ {
		for i := k + 1; i < n; i++ {
			if !f[i][k] {
				continue
			}
			for j := k + 1; j < n; j++ {
				if f[j][k] {
					f[i][j], f[j][i] = true, true
				}
			}
		}
	}

	return f
}

// Cholesky returns the elimination tree and the exact column counts
// (diagonal included) of the structural factor of sym.
func Cholesky(sym Pattern) (parent, counts []int) {
	f := Factor(sym)
	n := len(f)
	parent = make([]int, n)
	counts = make([]int, n)
	for k := 0; k < n; k++ {
		parent[k] = -1
		for i := k; i < n; i++ {
			if !f[i][k] {
				continue
			}
			counts[k]++
			if i > k && parent[k] == -1 {
				parent[k] = i
			}
		}
	}

	return parent, counts
}

// RowPattern returns the columns j < k with L[k,j] != 0, ascending.
func RowPattern(f Pattern, k int) []int {
	var out []int
	for j := 0; j < k; j++ {
		if f[k][j] {
			out = append(out, j)
		}
	}

	return out
}

// ToCSC converts a pattern into a matrix with ones at the true positions.
func (p Pattern) ToCSC() *csc.Matrix {
	rows := len(p)
	cols := 0
	if rows > 0 {
		cols = len(p[0])
	}
	m := csc.MustNew(rows, cols, 0)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if p[i][j] {
				_ = m.Set(i, j, 1)
			}
		}
	}

	return m
}

// SupportOf returns the rows of x whose value is not exactly zero.
func SupportOf(x []float64) []int {
	var out []int
	for i, v := range x {
		if v != 0 {
			out = append(out, i)
		}
	}

	return out
}
