// SPDX-License-Identifier: MIT

package triangular

import (
	"errors"
	"fmt"
)

// Sentinel errors. The solvers treat every one of them as a contract
// violation and panic with a wrapped sentinel; use errors.Is on the recovered value.
var (
	// ErrShortBuffer indicates x, xi, s or a mark array shorter than the matrix requires.
	ErrShortBuffer = errors.New("triangular: buffer too short")

	// ErrDimensionMismatch indicates B does not have as many rows as G.
	ErrDimensionMismatch = errors.New("triangular: dimension mismatch")

	// ErrNonSquare indicates a square triangle was required.
	ErrNonSquare = errors.New("triangular: matrix must be square")
)

const (
	opSolveL     = "SolveL"
	opSolveTranL = "SolveTranL"
	opSolveU     = "SolveU"
	opSolve      = "Solve"
	opSolveColB  = "SolveColB"
	opSearchX    = "SearchNzRowsInX"
	opSolveTran  = "SolveTran"
	opSearchElim = "SearchNzRowsElim"
)

func triangularErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
