// SPDX-License-Identifier: MIT

package fillreduce

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/csc"
)

// Applier applies a fill-reducing ordering to a matrix before symbolic
// analysis. It owns the permuted copy and the permutation vectors; both stay
// valid until the next call to Apply. An Applier is not safe for concurrent use.
type Applier struct {
	opts Options

	applied bool
	p       []int
	q       []int
	pinv    []int

	permuted csc.Matrix
	gw       csc.IntBuffer
}

// NewApplier returns an Applier configured by opts.
func NewApplier(opts ...Option) *Applier {
	return &Applier{opts: gatherOptions(opts...)}
}

// Apply returns the permuted form of A.
//
// Behavior:
//   - Without a strategy, A itself is returned and IsApplied reports false.
//     Callers must consult IsApplied, not pointer identity.
//   - With a strategy, its row permutation p is validated against A.NumRows
//     and inverted into pinv. Symmetric mode computes P·A·Pᵗ on the upper
//     triangle and ignores any column permutation. Otherwise rows are moved by
//     pinv and, when the strategy supplies q, columns are gathered by q.
//   - A is never modified; the result lives in storage owned by the Applier.
//
// Errors:
//   - ErrNilMatrix for a nil A.
//   - ErrStrategy wrapping the strategy's own error.
//   - ErrBadPermutation (also matching csc.ErrBadPermutation) when p or q is
//     not a bijection of the right length. The call is not retried.
//   - ErrNonSquare in symmetric mode for a rectangular A.
//   - csc.ErrBadStructure when A violates the CSC invariants. The strategy
//     is not consulted for such an A.
//
// Complexity: O(m + n + nz) plus the strategy's cost.
func (a *Applier) Apply(A *csc.Matrix) (*csc.Matrix, error) {
	a.applied = false
	a.p, a.q = nil, nil
	if A == nil {
		return nil, fillreduceErrorf(opApply, ErrNilMatrix)
	}
	if a.opts.strategy == nil {
		return A, nil
	}
	if err := csc.ValidateStructure(A); err != nil {
		return nil, fillreduceErrorf(opApply, err)
	}
	if a.opts.symmetric && A.NumRows != A.NumCols {
		return nil, fillreduceErrorf(opApply, ErrNonSquare)
	}

	row, col, err := a.opts.strategy.Process(A)
	if err != nil {
		return nil, fillreduceErrorf(opApply, fmt.Errorf("%w: %w", ErrStrategy, err))
	}
	if err = csc.ValidatePermutation(row, A.NumRows); err != nil {
		return nil, fillreduceErrorf(opApply, fmt.Errorf("row: %w: %w", ErrBadPermutation, err))
	}
	if a.opts.symmetric {
		col = nil
	} else if col != nil {
		if err = csc.ValidatePermutation(col, A.NumCols); err != nil {
			return nil, fillreduceErrorf(opApply, fmt.Errorf("col: %w: %w", ErrBadPermutation, err))
		}
	}

	a.pinv = csc.PermutationInverse(row, a.pinv)
	a.p, a.q = row, col
	if a.opts.symmetric {
		csc.PermuteSymmetric(A, a.pinv, &a.permuted, &a.gw)
	} else {
		csc.Permute(a.pinv, A, col, &a.permuted)
	}
	a.applied = true

	return &a.permuted, nil
}

// IsApplied reports whether the last Apply permuted its input.
func (a *Applier) IsApplied() bool { return a.applied }

// Symmetric reports whether the applier works on symmetric upper triangles.
func (a *Applier) Symmetric() bool { return a.opts.symmetric }

// P returns the row permutation of the last Apply, or nil.
func (a *Applier) P() []int { return a.p }

// Pinv returns the inverse of P, or nil when nothing was applied.
func (a *Applier) Pinv() []int {
	if !a.applied {
		return nil
	}

	return a.pinv
}

// Q returns the column permutation of the last Apply, or nil when columns
// were left in place (or follow P in symmetric mode).
func (a *Applier) Q() []int { return a.q }
