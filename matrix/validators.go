// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap uniformly.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense is treated as nil as well.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateUniformRows checks that every row of d has exactly d.Cols() entries.
// Assumes d is not nil.
// Complexity: O(r).
func ValidateUniformRows(d *Dense) error {
	for i, row := range d.rows {
		if len(row) != d.c {
			return validatorErrorf(fmt.Sprintf("ValidateUniformRows: row %d", i), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateEliminable checks the shape precondition of Gauss-Jordan over an
// augmented matrix [A | b]: at least one unknown (Cols() >= 2) and at least
// as many equations as unknowns (Rows() >= Cols()-1).
// Assumes m is not nil.
func ValidateEliminable(m Matrix) error {
	if m.Cols() < 2 {
		return validatorErrorf("ValidateEliminable: Columns", ErrDimensionMismatch)
	}
	if m.Rows() < m.Cols()-1 {
		return validatorErrorf("ValidateEliminable: Rows", ErrDimensionMismatch)
	}

	return nil
}
