// SPDX-License-Identifier: MIT

package solver

import (
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/linsolve/matrix"
)

// Solve runs Assemble → matrix.RREF → Extract and returns the value of every
// variable that appears in eqs.
// Errors (classify with KindOf):
//   - ErrNoEquations for empty input.
//   - matrix.ErrDimensionMismatch when unknowns outnumber equations.
//   - matrix.ErrRankDeficient / matrix.ErrContradictory (both ErrUnsolvable).
//   - ErrNonInteger under WithIntegerResults, ErrResidual under WithVerify.
//
// No partial Solution is ever returned together with an error.
func Solve(eqs []Equation, opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)

	reg, m, err := Assemble(eqs)
	if err != nil {
		return nil, err
	}
	rref, err := matrix.RREF(m, matrix.WithEpsilon(o.eps))
	if err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	sol, err := Extract(reg, rref, opts...)
	if err != nil {
		return nil, err
	}
	if o.verify {
		if err = verify(reg, m, sol, o.eps); err != nil {
			return nil, solverErrorf(opSolve, err)
		}
	}

	return sol, nil
}

// SolveSeq drains seq and solves the collected equations.
func SolveSeq(seq iter.Seq[Equation], opts ...Option) (Solution, error) {
	return Solve(slices.Collect(seq), opts...)
}

// verify evaluates the assembled rows at sol. Row i is equation i, so a
// failing residual names the offending input equation.
func verify(reg *Registry, m *matrix.Dense, sol Solution, eps float64) error {
	x := make([]float64, reg.Len())
	for i, name := range reg.names {
		x[i] = sol[name]
	}
	res, err := matrix.Residuals(m, x)
	if err != nil {
		return err
	}
	for i, r := range res {
		if math.Abs(r) > eps {
			return fmtIndexed(i, ErrResidual)
		}
	}

	return nil
}
