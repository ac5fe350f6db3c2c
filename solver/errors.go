// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

var (
	// ErrNoEquations is returned when the input holds no equation at all.
	ErrNoEquations = errors.New("solver: no equations provided")

	// ErrNonInteger is returned under WithIntegerResults when a value lies
	// farther than epsilon from the nearest integer.
	ErrNonInteger = errors.New("solver: solution is not integer-valued")

	// ErrResidual is returned by Solution.Check (and by Solve under WithVerify)
	// when substituting the values back leaves a residual above epsilon.
	ErrResidual = errors.New("solver: equation not satisfied")

	// ErrUnknownVariable is returned by Solution.Check when an equation
	// references a name the solution does not carry.
	ErrUnknownVariable = errors.New("solver: unknown variable")
)

// Operation tags for error wrapping.
const (
	opAssemble = "Assemble"
	opExtract  = "Extract"
	opSolve    = "Solve"
	opCheck    = "Check"
)

// solverErrorf wraps err with an operation tag, preserving it via %w.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Kind classifies a failure of the pipeline.
type Kind int

const (
	// KindNone means no error.
	KindNone Kind = iota
	// KindNoEquations: empty input.
	KindNoEquations
	// KindDimensionMismatch: fewer equations than unknowns, or ragged rows.
	KindDimensionMismatch
	// KindRankDeficient: some unknown is left unconstrained.
	KindRankDeficient
	// KindContradictory: the equations are mutually inconsistent.
	KindContradictory
	// KindNonInteger: an integer result was required but not produced.
	KindNonInteger
	// KindResidual: verification by substitution failed.
	KindResidual
	// KindOther: anything else (nil matrix, NaN input, ...).
	KindOther
)

var kindNames = [...]string{
	KindNone:              "none",
	KindNoEquations:       "no-equations",
	KindDimensionMismatch: "dimension-mismatch",
	KindRankDeficient:     "rank-deficient",
	KindContradictory:     "contradictory",
	KindNonInteger:        "non-integer",
	KindResidual:          "residual",
	KindOther:             "other",
}

// String returns a stable, lower-case name for logs and reports.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// KindOf classifies err by matching the package and matrix sentinels.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNoEquations):
		return KindNoEquations
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return KindDimensionMismatch
	case errors.Is(err, matrix.ErrRankDeficient):
		return KindRankDeficient
	case errors.Is(err, matrix.ErrContradictory):
		return KindContradictory
	case errors.Is(err, ErrNonInteger):
		return KindNonInteger
	case errors.Is(err, ErrResidual):
		return KindResidual
	default:
		return KindOther
	}
}

// IsUnsolvable reports whether err means the system has no unique solution.
func IsUnsolvable(err error) bool {
	return errors.Is(err, matrix.ErrUnsolvable)
}
