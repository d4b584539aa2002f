// SPDX-License-Identifier: MIT
// Package csc_test contains unit tests for the CSC storage and accessors.
package csc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsparse/csc"
)

// TestNewInvalidDimensions ensures New rejects negative shapes.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := csc.New(-1, 3, 0)
	require.ErrorIs(t, err, csc.ErrInvalidDimensions)

	_, err = csc.New(3, -1, 0)
	require.ErrorIs(t, err, csc.ErrInvalidDimensions)

	_, err = csc.New(3, 3, -1)
	require.ErrorIs(t, err, csc.ErrInvalidDimensions)

	m, err := csc.New(0, 0, 0)
	require.NoError(t, err)
	require.True(t, csc.CheckStructure(m))
}

// TestSetGetRemove checks insertion keeps columns sorted and Remove undoes it.
func TestSetGetRemove(t *testing.T) {
	t.Parallel()

	m := csc.MustNew(4, 3, 0)
	require.NoError(t, m.Set(2, 1, 5))
	require.NoError(t, m.Set(0, 1, 7))
	require.NoError(t, m.Set(3, 0, 1))
	require.NoError(t, m.Set(2, 1, 6)) // overwrite

	require.Equal(t, 3, m.NonZeroCount())
	require.Equal(t, 6.0, m.Get(2, 1))
	require.Equal(t, 7.0, m.Get(0, 1))
	require.Equal(t, 0.0, m.Get(1, 1))
	require.True(t, csc.CheckStructure(m))
	require.Equal(t, []int{0, 2}, m.NzRows[m.ColIdx[1]:m.ColIdx[2]])

	require.NoError(t, m.Remove(0, 1))
	require.False(t, m.IsAssigned(0, 1))
	require.Equal(t, 2, m.NonZeroCount())
	require.NoError(t, m.Remove(0, 1)) // absent entry is a no-op
	require.True(t, csc.CheckStructure(m))
}

// TestAtSetOutOfRange ensures the public accessors return ErrOutOfRange.
func TestAtSetOutOfRange(t *testing.T) {
	m := csc.MustNew(2, 2, 0)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, csc.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, csc.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), csc.ErrOutOfRange)
	require.ErrorIs(t, m.Remove(0, -1), csc.ErrOutOfRange)
}

func TestCopyIsIndependent(t *testing.T) {
	m := csc.Diag(1, 2, 3)
	c := m.Copy()
	require.NoError(t, c.Set(0, 2, 9))

	require.False(t, m.IsAssigned(0, 2))
	require.Equal(t, 9.0, c.Get(0, 2))
	require.True(t, mat.Equal(csc.Diag(1, 2, 3).ToDense(), m.ToDense()))
}

// TestDenseRoundTrip converts gonum → CSC → gonum.
func TestDenseRoundTrip(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(3, 4, []float64{
		1, 0, 0, 2,
		0, 0, 3, 0,
		4, 1e-12, 0, 5,
	})

	m := csc.FromDense(d)
	require.Equal(t, 6, m.NonZeroCount())
	require.True(t, m.IndicesSorted)
	require.True(t, csc.CheckStructure(m))
	require.True(t, mat.Equal(d, m.ToDense()))

	dropped := csc.FromDense(d, csc.WithDropTolerance(1e-9))
	require.Equal(t, 5, dropped.NonZeroCount())
	require.False(t, dropped.IsAssigned(2, 1))
}

func TestWithDropTolerancePanics(t *testing.T) {
	require.Panics(t, func() { csc.WithDropTolerance(-1) })
}

func TestIdentity(t *testing.T) {
	id := csc.Identity(4)
	d := id.ToDense()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.Equal(t, want, d.At(i, j))
		}
	}
}

// TestCheckStructure flags broken column pointers and duplicate rows.
func TestCheckStructure(t *testing.T) {
	m := csc.Diag(1, 2, 3)
	require.True(t, csc.CheckStructure(m))

	broken := m.Copy()
	broken.NzRows[1] = 0 // duplicate row 0 is fine across columns
	require.True(t, csc.CheckStructure(broken))

	broken.NzRows[1] = 5
	require.False(t, csc.CheckStructure(broken))

	broken = m.Copy()
	broken.ColIdx[1], broken.ColIdx[2] = 2, 1
	require.False(t, csc.CheckStructure(broken))

	require.False(t, csc.CheckStructure(nil))
}

func TestValidateStructure(t *testing.T) {
	require.NoError(t, csc.ValidateStructure(csc.Identity(4)))
	require.ErrorIs(t, csc.ValidateStructure(nil), csc.ErrNilMatrix)

	cases := map[string]func(m *csc.Matrix){
		"first_pointer":  func(m *csc.Matrix) { m.ColIdx[0] = 1 },
		"nz_length":      func(m *csc.Matrix) { m.NzLength = 2 },
		"decreasing":     func(m *csc.Matrix) { m.ColIdx[1], m.ColIdx[2] = 2, 1 },
		"row_range":      func(m *csc.Matrix) { m.NzRows[2] = -1 },
		"duplicate_row":  func(m *csc.Matrix) { m.ColIdx[1] = 0; m.NzRows[1] = 0 },
		"short_pointers": func(m *csc.Matrix) { m.ColIdx = m.ColIdx[:2] },
	}
	for name, breakIt := range cases {
		breakIt := breakIt
		t.Run(name, func(t *testing.T) {
			m := csc.Diag(1, 2, 3)
			breakIt(m)
			require.ErrorIs(t, csc.ValidateStructure(m), csc.ErrBadStructure)
			require.False(t, csc.CheckStructure(m))
		})
	}
}
