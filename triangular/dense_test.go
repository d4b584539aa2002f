// SPDX-License-Identifier: MIT
package triangular_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/csc"
	"github.com/katalvlaran/lvsparse/internal/sparsetest"
	"github.com/katalvlaran/lvsparse/triangular"
)

// TestDenseSolvesRoundTrip: G·solve(G,b) ≈ b for N in [1,20].
func TestDenseSolvesRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		lower bool
		solve func(*csc.Matrix, []float64)
		tran  bool
	}{
		{"SolveL", true, triangular.SolveL, false},
		{"SolveTranL", true, triangular.SolveTranL, true},
		{"SolveU", false, triangular.SolveU, false},
	}
	for i, tc := range cases {
		tc := tc
		seed := int64(100 + i)
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rng := sparsetest.RNG(seed)
			for trial := 0; trial < 100; trial++ {
				n := 1 + rng.Intn(20)
				G := sparsetest.Triangle(rng, n, tc.lower, rng.Float64())
				b := sparsetest.Vector(rng, n)

				x := append([]float64(nil), b...)
				tc.solve(G, x)

				Gd := G.ToDense()
				if tc.tran {
					requireClose(t, denseVec(b), product(Gd.T(), denseVec(x)), "trial %d", trial)
				} else {
					requireClose(t, denseVec(b), product(Gd, denseVec(x)), "trial %d", trial)
				}
			}
		})
	}
}

// TestSolveUOfTransposedL solves with Lᵗ stored explicitly as an upper
// triangle and compares with SolveTranL.
func TestSolveUOfTransposedL(t *testing.T) {
	rng := sparsetest.RNG(9)
	L := sparsetest.Triangle(rng, 12, true, 0.4)
	U := csc.Transpose(L, nil, nil)
	b := sparsetest.Vector(rng, 12)

	x1 := append([]float64(nil), b...)
	x2 := append([]float64(nil), b...)
	triangular.SolveTranL(L, x1)
	triangular.SolveU(U, x2)
	require.InDeltaSlice(t, x1, x2, tol)
}

// TestSolveLZeroDiagonal lets the degeneracy surface as Inf rather than an error.
func TestSolveLZeroDiagonal(t *testing.T) {
	L := csc.Diag(1, 0, 2)
	x := []float64{1, 1, 1}
	triangular.SolveL(L, x)
	require.Equal(t, 1.0, x[0])
	require.True(t, x[1] > 1e300)
	require.Equal(t, 0.5, x[2])
}

func TestDenseSolvesPanicOnShortX(t *testing.T) {
	L := csc.Identity(3)
	short := make([]float64, 2)
	require.Panics(t, func() { triangular.SolveL(L, short) })
	require.Panics(t, func() { triangular.SolveTranL(L, short) })
	require.Panics(t, func() { triangular.SolveU(L, short) })
}

func TestDenseSolvesEmpty(t *testing.T) {
	E := csc.MustNew(0, 0, 0)
	triangular.SolveL(E, nil)
	triangular.SolveTranL(E, nil)
	triangular.SolveU(E, nil)
}
