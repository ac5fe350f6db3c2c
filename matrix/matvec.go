// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opMatVec    = "MatVec"
	opResiduals = "Residuals"
)

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row over the row slice.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.Cols(), ErrDimensionMismatch))
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i, row := range d.rows {
			y[i] = dot(row, x, min(len(row), len(x)))
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residuals evaluates an augmented matrix [A | b] at x and returns A*x - b.
// len(x) must be m.Cols()-1. A solution of the system has every residual
// within the caller's tolerance.
func Residuals(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opResiduals, err)
	}
	unknowns := m.Cols() - 1
	if unknowns < 1 || len(x) != unknowns {
		return nil, matrixErrorf(opResiduals, fmt.Errorf("len(x)=%d, unknowns=%d: %w", len(x), unknowns, ErrDimensionMismatch))
	}

	ext := make([]float64, unknowns+1)
	copy(ext, x)
	ext[unknowns] = -1 // folds "- b" into the product

	y, err := MatVec(m, ext)
	if err != nil {
		return nil, matrixErrorf(opResiduals, err)
	}

	return y, nil
}

// dot returns Σ a[j]*x[j] for j < n, skipping zero x[j].
func dot(a Row, x []float64, n int) float64 {
	var acc float64
	for j := 0; j < n; j++ {
		if x[j] != 0 {
			acc += a[j] * x[j]
		}
	}

	return acc
}
