// SPDX-License-Identifier: MIT

package fillreduce

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Applier.Apply. Match with errors.Is.
var (
	// ErrNilMatrix is returned when Apply receives a nil matrix.
	ErrNilMatrix = errors.New("fillreduce: nil matrix")

	// ErrBadPermutation is returned when a strategy yields a vector that is not
	// a bijection of the right length. The error also wraps csc.ErrBadPermutation.
	ErrBadPermutation = errors.New("fillreduce: strategy returned a bad permutation")

	// ErrStrategy wraps a failure reported by the strategy itself.
	ErrStrategy = errors.New("fillreduce: ordering strategy failed")

	// ErrNonSquare is returned in symmetric mode for a rectangular matrix.
	ErrNonSquare = errors.New("fillreduce: symmetric mode needs a square matrix")
)

const opApply = "Apply"

func fillreduceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
