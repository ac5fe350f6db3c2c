// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

const panicEpsilonInvalid = "solver: WithEpsilon: eps must be finite, non-negative"

// Option configures Solve and Extract.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	eps     float64 // zero tests, integer snapping, residual checks
	integer bool    // fail with ErrNonInteger on fractional results
	verify  bool    // substitute results back into the equations
}

// WithEpsilon sets the tolerance shared by elimination, integer snapping and
// verification. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithIntegerResults requires every value to be within eps of an integer.
func WithIntegerResults() Option {
	return func(o *Options) { o.integer = true }
}

// WithVerify re-checks the solution against the input equations.
func WithVerify() Option {
	return func(o *Options) { o.verify = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: matrix.DefaultEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
