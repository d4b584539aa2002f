// SPDX-License-Identifier: MIT

// Package fillreduce: functional configuration for Applier.
//
// Defaults:
//   - no strategy: Apply is the identity and reports IsApplied() == false.
//   - non-symmetric: rows (and optionally columns) are permuted as given.

package fillreduce

// DefaultSymmetric leaves symmetric handling off.
const DefaultSymmetric = false

const panicNilStrategy = "fillreduce: WithStrategy: strategy must be non-nil"

// Option mutates Options.
type Option func(*Options)

// Options holds the effective Applier configuration.
type Options struct {
	strategy  Strategy
	symmetric bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{symmetric: DefaultSymmetric}
}

// WithStrategy sets the ordering strategy. Panics on nil; omit the option to
// get the identity behavior.
func WithStrategy(s Strategy) Option {
	if s == nil {
		panic(panicNilStrategy)
	}

	return func(o *Options) { o.strategy = s }
}

// WithSymmetric treats the input as the upper triangle of a symmetric matrix
// and applies P·A·Pᵗ, producing the upper triangle of the result.
func WithSymmetric(on bool) Option {
	return func(o *Options) { o.symmetric = on }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
