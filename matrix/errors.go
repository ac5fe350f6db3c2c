// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag via %w) and tests match them with errors.Is. Panics are reserved for
// programmer errors in row kernels (mismatched operand lengths).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Swap/View) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions: ragged rows under
	// dimension checking, or fewer equations than unknowns in elimination.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEmpty indicates that a matrix was requested from zero rows.
	ErrEmpty = errors.New("matrix: empty matrices not supported")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrUnsolvable is the umbrella failure of elimination: the system has no
	// unique solution. Both ErrRankDeficient and ErrContradictory match it.
	ErrUnsolvable = errors.New("matrix: system has no unique solution")
)

var (
	// ErrRankDeficient means some column has no usable pivot: at least one
	// unknown is left unconstrained.
	ErrRankDeficient = fmt.Errorf("%w: rank deficient", ErrUnsolvable)

	// ErrContradictory means a row reduced to 0 = c with c != 0.
	ErrContradictory = fmt.Errorf("%w: contradictory equations", ErrUnsolvable)
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
