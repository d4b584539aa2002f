// Package csc provides compressed sparse column (CSC) matrices and the
// structural plumbing the symbolic and triangular kernels rely on.
//
// The package provides:
//
//   - Matrix: column pointers, row indices and values in parallel arrays,
//     with bounds-checked accessors (At, Set, Remove) and raw field access
//     for hot loops.
//   - IntBuffer / FloatBuffer and Adjust*: growable caller-owned scratch.
//   - Transpose, Permute, PermuteRowInv, PermuteSymmetric, PermutationInverse,
//     ConcatRows: structural transforms that never modify their inputs.
//   - ToDense / FromDense: conversion to and from gonum dense matrices.
//   - Fixture / LoadFixtures: YAML-described small matrices for tests and demos.
//
// Concurrency: a Matrix may be read concurrently; any writer needs exclusive access.
// Buffers are not goroutine-safe and must not be shared between concurrent calls.
package csc
