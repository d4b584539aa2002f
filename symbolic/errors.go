// SPDX-License-Identifier: MIT

package symbolic

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by the panics of the symbolic kernels.
// They are contract violations: the caller passed an undersized output or a
// non-conforming input. Match them with errors.Is on the recovered value.
var (
	// ErrShortBuffer indicates an output array (parent, post, counts) shorter than required.
	ErrShortBuffer = errors.New("symbolic: output buffer too short")

	// ErrNonSquare indicates a square (symmetric upper-triangular) input was required.
	ErrNonSquare = errors.New("symbolic: matrix must be square")
)

// Operation tags used in wrapped panics.
const (
	opEliminationTree = "EliminationTree"
	opPostorder       = "Postorder"
	opColumnCounts    = "ColumnCounts"
)

func symbolicErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
