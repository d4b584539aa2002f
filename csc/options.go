// SPDX-License-Identifier: MIT

// Package csc: functional configuration for dense ingestion.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).

package csc

import "math"

// DefaultDropTolerance keeps every non-zero entry when ingesting dense data.
const DefaultDropTolerance = 0.0

const panicDropToleranceInvalid = "csc: WithDropTolerance: tol must be finite, non-negative"

// Option mutates Options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	dropTol float64 // entries with |v| <= dropTol are not stored
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{dropTol: DefaultDropTolerance}
}

// WithDropTolerance drops dense entries whose magnitude is <= tol.
// Panics when tol is negative, NaN or infinite.
func WithDropTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicDropToleranceInvalid)
	}

	return func(o *Options) { o.dropTol = tol }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
