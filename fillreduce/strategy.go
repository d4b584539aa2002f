// SPDX-License-Identifier: MIT

package fillreduce

import "github.com/katalvlaran/lvsparse/csc"

// Strategy computes a fill-reducing ordering of a.
//
// row is the row permutation p (row p[k] of a becomes row k of the result).
// col is an optional column permutation q for two-sided orderings; nil means
// "same as rows" in symmetric mode and "unpermuted" otherwise. The strategy
// must not modify a.
type Strategy interface {
	Process(a *csc.Matrix) (row, col []int, err error)
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(a *csc.Matrix) (row, col []int, err error)

// Process calls f(a).
func (f StrategyFunc) Process(a *csc.Matrix) (row, col []int, err error) {
	return f(a)
}

// Fixed replays an ordering computed elsewhere, e.g. loaded from disk or
// reused across matrices with the same pattern.
type Fixed struct {
	Row []int
	Col []int
}

// Process returns the stored vectors.
func (f Fixed) Process(*csc.Matrix) (row, col []int, err error) {
	return f.Row, f.Col, nil
}
