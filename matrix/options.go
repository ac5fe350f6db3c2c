// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and elimination.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance of every zero test: pivot
	// selection, residual rows and Row.IsZero.
	DefaultEpsilon = 1e-5

	// DefaultCheckDim controls whether NewFromRows rejects ragged input.
	// false ⇒ the column count is taken from the first row.
	DefaultCheckDim = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	checkDim bool    // DefaultCheckDim
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// CheckDim reports whether ragged rows are rejected.
func (o Options) CheckDim() bool { return o.checkDim }

// WithEpsilon sets the numeric tolerance eps used by zero tests.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - Larger eps treats more near-zero pivots as zero and reports more
//     systems as unsolvable; smaller eps lets noise act as a pivot.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithCheckDim makes NewFromRows fail with ErrDimensionMismatch on ragged rows.
func WithCheckDim() Option {
	return func(o *Options) { o.checkDim = true }
}

// NewOptions resolves option setters against documented defaults.
// Useful for callers that need to read the effective tolerance.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults in order
// (last-writer-wins). Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		checkDim: DefaultCheckDim,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
