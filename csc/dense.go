// SPDX-License-Identifier: MIT

package csc

import "gonum.org/v1/gonum/mat"

// ToDense materializes m as a gonum dense matrix. An empty shape yields an
// empty *mat.Dense, since gonum rejects zero-length dimensions.
func (m *Matrix) ToDense() *mat.Dense {
	if m.NumRows == 0 || m.NumCols == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.NumRows, m.NumCols, nil)
	for j := 0; j < m.NumCols; j++ {
		for p := m.ColIdx[j]; p < m.ColIdx[j+1]; p++ {
			d.Set(m.NzRows[p], j, d.At(m.NzRows[p], j)+m.NzValues[p])
		}
	}

	return d
}

// FromDense converts any gonum matrix into CSC, storing entries whose
// magnitude exceeds the drop tolerance (exact zeros by default). Columns are
// scanned top to bottom, so the result has sorted indices.
//
// Complexity: O(rows*cols).
func FromDense(d mat.Matrix, opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	rows, cols := d.Dims()

	nz := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if keep(d.At(i, j), o.dropTol) {
				nz++
			}
		}
	}

	m := MustNew(rows, cols, nz)
	q := 0
	var v float64
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v = d.At(i, j)
			if !keep(v, o.dropTol) {
				continue
			}
			m.NzRows[q] = i
			m.NzValues[q] = v
			q++
		}
		m.ColIdx[j+1] = q
	}
	m.NzLength = q
	m.IndicesSorted = true

	return m
}

func keep(v, tol float64) bool {
	if v < 0 {
		v = -v
	}

	return v > tol
}
