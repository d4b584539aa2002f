// SPDX-License-Identifier: MIT
// Package csc: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors return
// them (optionally wrapped with an operation tag); kernels that run on
// already-validated structures panic with them on contract violations.
// Callers match with errors.Is.

package csc

import "errors"

// ERROR PRIORITY (checked in this order by validators):
// shape -> index -> buffer length -> permutation -> structure.

var (
	// ErrInvalidDimensions indicates negative rows, columns or capacity.
	ErrInvalidDimensions = errors.New("csc: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("csc: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("csc: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("csc: matrix is not square")

	// ErrShortBuffer signals a caller-supplied array shorter than the contract requires.
	ErrShortBuffer = errors.New("csc: buffer too short")

	// ErrBadPermutation signals a vector that is not a bijection on 0..n-1.
	ErrBadPermutation = errors.New("csc: invalid permutation")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("csc: nil matrix")

	// ErrBadStructure signals column pointers or row indices violating the CSC invariants.
	ErrBadStructure = errors.New("csc: malformed structure")
)
