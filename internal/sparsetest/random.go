// SPDX-License-Identifier: MIT
// Package sparsetest - deterministic random CSC matrices and brute-force
// oracles shared by package tests.
//
// Determinism:
//   - Every generator takes an explicit *rand.Rand; no time-based sources.
//   - Trial order is fixed (column ascending, row ascending), so a seed pins the output.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Parallel subtests seed their own.
package sparsetest

import (
	"math/rand"

	"github.com/katalvlaran/lvsparse/csc"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// RNG returns a deterministic source; seed == 0 selects defaultSeed.
func RNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// value draws a non-zero entry in [-1,-0.1] ∪ [0.1,1].
func value(rng *rand.Rand) float64 {
	v := 0.1 + 0.9*rng.Float64()
	if rng.Intn(2) == 0 {
		return -v
	}

	return v
}

// Rectangle returns a rows×cols matrix whose entries are present independently
// with probability density. Indices are sorted.
func Rectangle(rng *rand.Rand, rows, cols int, density float64) *csc.Matrix {
	m := csc.MustNew(rows, cols, 0)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if rng.Float64() < density {
				_ = m.Set(i, j, value(rng))
			}
		}
	}

	return m
}

// Triangle returns an n×n lower (or upper) triangular matrix with a
// well-conditioned non-zero diagonal and off-diagonal entries present with
// probability density. Rows are sorted, so the diagonal is the first entry of
// each column of a lower triangle and the last of an upper one.
func Triangle(rng *rand.Rand, n int, lower bool, density float64) *csc.Matrix {
	m := csc.MustNew(n, n, 0)
	var d float64
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			switch {
			case i == j:
				d = 1 + rng.Float64()
				if rng.Intn(2) == 0 {
					d = -d
				}
				_ = m.Set(i, j, d)
			case (lower && i > j) || (!lower && i < j):
				if rng.Float64() < density {
					_ = m.Set(i, j, 0.5*value(rng))
				}
			}
		}
	}

	return m
}

// SPD returns the full (both triangles) pattern and values of a random
// symmetric positive definite n×n matrix. Off-diagonal pairs appear with
// probability density; the diagonal dominates each row.
func SPD(rng *rand.Rand, n int, density float64) *csc.Matrix {
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		for i := j + 1; i < n; i++ {
			if rng.Float64() < density {
				v := value(rng)
				dense[i][j], dense[j][i] = v, v
			}
		}
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum = 1
		for j := 0; j < n; j++ {
			if dense[i][j] < 0 {
				sum -= dense[i][j]
			} else {
				sum += dense[i][j]
			}
		}
		dense[i][i] = sum
	}

	m := csc.MustNew(n, n, 0)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if dense[i][j] != 0 {
				_ = m.Set(i, j, dense[i][j])
			}
		}
	}

	return m
}

// Upper keeps the entries of a with row <= column.
func Upper(a *csc.Matrix) *csc.Matrix {
	out := csc.MustNew(a.NumRows, a.NumCols, a.NzLength)
	q := 0
	for j := 0; j < a.NumCols; j++ {
		for p := a.ColIdx[j]; p < a.ColIdx[j+1]; p++ {
			if a.NzRows[p] > j {
				continue
			}
			out.NzRows[q] = a.NzRows[p]
			out.NzValues[q] = a.NzValues[p]
			q++
		}
		out.ColIdx[j+1] = q
	}
	out.NzLength = q
	out.IndicesSorted = a.IndicesSorted

	return out
}

// Vector returns n random values in [-1, 1].
func Vector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}
