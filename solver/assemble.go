// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/linsolve/matrix"
)

// Assemble builds the variable registry and the augmented coefficient matrix.
// MAIN DESCRIPTION:
//   - Row i encodes eqs[i] as [c_0, …, c_{n-1}, -Constant] over the registry
//     columns, so that the last column is the right-hand side of
//     Σ c_j·x_j = -Constant.
//
// Implementation:
//   - Stage 1: reject empty input (ErrNoEquations).
//   - Stage 2: register names in first-appearance order, each equation's
//     names visited alphabetically.
//   - Stage 3: allocate every row at its final width and fill it; the matrix
//     is dimension-checked on construction.
//
// Complexity:
//   - Time O(E·(V + k log k)) for E equations, V variables, k names per equation.
func Assemble(eqs []Equation) (*Registry, *matrix.Dense, error) {
	if len(eqs) == 0 {
		return nil, nil, solverErrorf(opAssemble, ErrNoEquations)
	}

	reg := NewRegistry()
	for _, eq := range eqs {
		for _, name := range eq.Vars() {
			reg.Add(name)
		}
	}

	width := reg.Len() + 1
	rows := make([]matrix.Row, len(eqs))
	for i, eq := range eqs {
		row := make(matrix.Row, width)
		for name, coeff := range eq.Coeffs {
			col, _ := reg.Index(name)
			row[col] = float64(coeff)
		}
		row[width-1] = float64(-eq.Constant)
		rows[i] = row
	}

	m, err := matrix.NewFromRows(rows, matrix.WithCheckDim())
	if err != nil {
		return nil, nil, solverErrorf(opAssemble, err)
	}

	return reg, m, nil
}

// AssembleSeq drains seq and assembles the collected equations.
func AssembleSeq(seq iter.Seq[Equation]) (*Registry, *matrix.Dense, error) {
	return Assemble(slices.Collect(seq))
}

// fmtIndexed tags err with the zero-based equation index.
func fmtIndexed(i int, err error) error {
	return fmt.Errorf("equation %d: %w", i, err)
}
