// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvsparse/csc"
	"github.com/katalvlaran/lvsparse/internal/sparsetest"
	"github.com/katalvlaran/lvsparse/symbolic"
)

// ColumnCountsSuite checks predicted counts against boolean symbolic
// Cholesky, sharing one counter per mode across trials.
type ColumnCountsSuite struct {
	suite.Suite
	rng *rand.Rand
	sym *symbolic.ColumnCounter
	ata *symbolic.ColumnCounter
}

func (s *ColumnCountsSuite) SetupTest() {
	s.rng = sparsetest.RNG(31)
	s.sym = symbolic.NewColumnCounter(false)
	s.ata = symbolic.NewColumnCounter(true)
}

// analyze runs tree, postorder and counts with the given counter.
func (s *ColumnCountsSuite) analyze(A *csc.Matrix, c *symbolic.ColumnCounter) (parent, post, counts []int) {
	n := A.NumCols
	parent = make([]int, n)
	post = make([]int, n)
	counts = make([]int, n)
	symbolic.EliminationTree(A, c.ATA(), parent, nil)
	symbolic.Postorder(parent, n, post, nil)
	c.Process(A, parent, post, counts)

	return parent, post, counts
}

// TestRandomSPD: N in [1,50], density in [0.05,0.5].
func (s *ColumnCountsSuite) TestRandomSPD() {
	for trial := 0; trial < 200; trial++ {
		n := 1 + s.rng.Intn(50)
		density := 0.05 + 0.45*s.rng.Float64()
		A := sparsetest.Upper(sparsetest.SPD(s.rng, n, density))

		_, want := sparsetest.Cholesky(sparsetest.SymmetricPattern(A))
		_, _, got := s.analyze(A, s.sym)
		s.Require().Equal(want, got, "trial %d n=%d", trial, n)
	}
}

// TestATASquareAndTall compares ata counts with the factor of AᵗA, including
// empty rows and disconnected column blocks.
func (s *ColumnCountsSuite) TestATASquareAndTall() {
	for trial := 0; trial < 200; trial++ {
		n := 1 + s.rng.Intn(20)
		m := n + s.rng.Intn(10)
		A := sparsetest.Rectangle(s.rng, m, n, 0.05+0.3*s.rng.Float64())

		wantParent, want := sparsetest.Cholesky(sparsetest.GramPattern(A))
		parent, _, got := s.analyze(A, s.ata)
		s.Require().Equal(wantParent, parent, "trial %d", trial)
		s.Require().Equal(want, got, "trial %d %dx%d", trial, m, n)
	}
}

// TestReuseIsDeterministic runs the same input twice through one counter.
func (s *ColumnCountsSuite) TestReuseIsDeterministic() {
	A := sparsetest.Upper(sparsetest.SPD(s.rng, 40, 0.2))
	_, _, first := s.analyze(A, s.sym)

	// a different, larger problem in between must not leak into the next call
	_, _, _ = s.analyze(sparsetest.Upper(sparsetest.SPD(s.rng, 70, 0.3)), s.sym)

	_, _, second := s.analyze(A, s.sym)
	s.Require().Equal(first, second)
}

func TestColumnCountsSuite(t *testing.T) {
	suite.Run(t, new(ColumnCountsSuite))
}

// TestColumnCountsFixtures covers the hand-traced counts, including the
// 3×3 SPD scenario.
func TestColumnCountsFixtures(t *testing.T) {
	for _, fx := range loadTrees(t) {
		A, err := fx.Matrix()
		require.NoError(t, err)
		n := A.NumCols

		parent := make([]int, n)
		post := make([]int, n)
		counts := make([]int, n)
		symbolic.EliminationTree(A, false, parent, nil)
		symbolic.Postorder(parent, n, post, nil)
		symbolic.ColumnCounts(A, false, parent, post, counts)

		_, oracle := sparsetest.Cholesky(sparsetest.SymmetricPattern(A))
		require.Equal(t, oracle, counts, fx.Name)
		if want, ok := fx.Ints["counts"]; ok {
			require.Equal(t, want, counts, fx.Name)
		}
	}
}

func TestColumnCountsIsolated(t *testing.T) {
	A := csc.Identity(4)
	parent := []int{-1, -1, -1, -1}
	post := []int{0, 1, 2, 3}
	counts := make([]int, 4)
	symbolic.ColumnCounts(A, false, parent, post, counts)
	require.Equal(t, []int{1, 1, 1, 1}, counts)
}

func TestColumnCountsPanics(t *testing.T) {
	A := csc.Identity(3)
	require.Panics(t, func() {
		symbolic.ColumnCounts(A, false, []int{-1, -1, -1}, []int{0, 1, 2}, make([]int, 2))
	})
	require.Panics(t, func() {
		symbolic.ColumnCounts(csc.MustNew(4, 3, 0), false, []int{-1, -1, -1}, []int{0, 1, 2}, make([]int, 3))
	})
}
