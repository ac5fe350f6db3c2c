// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Gauss-Jordan elimination with partial pivoting over an augmented matrix
//     [A | b]: n equations, c-1 unknowns, the last column holds constants.
//   - Detect rank deficiency (no pivot in a column) and contradiction
//     (a residual row 0 = k with k != 0) as distinct sentinels.
//
// Determinism:
//   - Pivot ties resolve to the topmost candidate row.
//   - Fixed loop orders; no map iteration, no randomness.

package matrix

import (
	"math"
)

// Operation tags for error wrapping.
const (
	opEchelon = "Echelon"
	opRREF    = "RREF"
)

// Echelon reduces m in place to row-echelon form with partial pivoting.
// MAIN DESCRIPTION:
//   - Forward phase only; m is mutated (rows are swapped and reduced).
//
// Implementation:
//   - Stage 1: validate non-nil, uniform rows, Cols()>=2 and Rows()>=Cols()-1.
//   - Stage 2: for each pivot column k, pick the row (at or below the cursor)
//     with the largest |m[i][k]|, swap it to the cursor and eliminate column k
//     below it.
//   - Stage 3: every row left below the cursor must be zero within eps.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape precondition).
//   - ErrRankDeficient when a column has no pivot >= eps.
//   - ErrContradictory when a residual row carries a non-zero constant.
//
// Complexity:
//   - Time O(n·c²), Space O(1) beyond m.
func Echelon(m *Dense, opts ...Option) error {
	if err := validateForElimination(m); err != nil {
		return matrixErrorf(opEchelon, err)
	}
	o := gatherOptions(opts...)
	if err := echelon(m, o.eps); err != nil {
		return matrixErrorf(opEchelon, err)
	}

	return nil
}

// RREF computes the reduced row-echelon form of an augmented matrix.
// MAIN DESCRIPTION:
//   - Works on a private clone; the input is never mutated.
//   - Returns a (c-1)×c Dense: row i has a 1 in column i, zeros in the other
//     coefficient columns, and the value of unknown i in the last column.
//
// Implementation:
//   - Stage 1: clone into a *Dense and validate the shape.
//   - Stage 2: forward phase (see Echelon).
//   - Stage 3: backward phase from the last pivot up: normalize the pivot row,
//     then clear its column in every row above, zeroing the entry explicitly
//     so no rounding residue survives.
//   - Stage 4: truncate to the first c-1 rows.
//
// Errors:
//   - Same set as Echelon, wrapped with "RREF".
//
// Complexity:
//   - Time O(n·c²), Space O(n·c) for the clone.
func RREF(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	work, err := cloneDense(m)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	if err = validateForElimination(work); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	o := gatherOptions(opts...)
	if err = echelon(work, o.eps); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	backSubstitute(work)

	unknowns := work.c - 1
	work.rows = work.rows[:unknowns:unknowns]
	work.r = unknowns

	return work, nil
}

// validateForElimination runs the composite guard NotNil → UniformRows → Eliminable.
func validateForElimination(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateUniformRows(m); err != nil {
		return err
	}

	return ValidateEliminable(m)
}

// echelon is the unchecked forward phase.
func echelon(m *Dense, eps float64) error {
	n, unknowns := m.r, m.c-1
	top := 0
	for k := 0; k < unknowns; k++ {
		// Partial pivoting: largest magnitude in column k among rows top..n-1.
		p, best := top, math.Abs(m.rows[top][k])
		for i := top + 1; i < n; i++ {
			if a := math.Abs(m.rows[i][k]); a > best {
				p, best = i, a
			}
		}
		if nearZero(best, eps) {
			if hasContradiction(m.rows[top:], unknowns, eps) {
				return ErrContradictory
			}
			return ErrRankDeficient
		}

		m.rows[top], m.rows[p] = m.rows[p], m.rows[top]
		pivot := m.rows[top]
		top++
		if top == n {
			return nil
		}
		for i := top; i < n; i++ {
			if f := m.rows[i][k] / pivot[k]; f != 0 {
				m.rows[i].SubScaledInPlace(pivot, f)
			}
			m.rows[i][k] = 0
		}
	}

	// Rows below the last pivot must have vanished entirely.
	for i := top; i < n; i++ {
		if !m.rows[i].IsZero(eps) {
			return ErrContradictory
		}
	}

	return nil
}

// hasContradiction reports whether some row has all coefficients below eps
// but a constant (last entry) of magnitude >= eps.
func hasContradiction(rows []Row, unknowns int, eps float64) bool {
	for _, row := range rows {
		if row.IsZeroPrefix(unknowns, eps) && !nearZero(row[unknowns], eps) {
			return true
		}
	}

	return false
}

// backSubstitute turns an echelon matrix with non-zero pivots on the
// diagonal of its first c-1 rows into RREF.
func backSubstitute(m *Dense) {
	for i := m.c - 2; i >= 0; i-- {
		pivot := m.rows[i]
		pivot.DivInPlace(pivot[i])
		pivot[i] = 1
		for j := 0; j < i; j++ {
			if f := m.rows[j][i]; f != 0 {
				m.rows[j].SubScaledInPlace(pivot, f)
			}
			m.rows[j][i] = 0
		}
	}
}

// cloneDense copies any Matrix into a fresh *Dense.
// *Dense inputs take the row-copy fast path; other implementations go through At.
func cloneDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.rows[i][j] = v
		}
	}

	return out, nil
}
