// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric container and the Gauss-Jordan
// elimination engine used to solve linear systems.
//
// 🚀 What is inside?
//
//	Row    a fixed-length []float64 with elementwise arithmetic.
//	Dense  an ordered list of Rows plus a shape; row order is significant
//	       and changes during pivoting.
//	RREF   Gauss-Jordan elimination with partial pivoting that returns the
//	       reduced row-echelon form of an augmented matrix [A | b].
//
// ✨ Key properties:
//   - Public surface never panics on user input; sentinel errors are returned
//     and matched with errors.Is.
//   - Rank deficiency and contradiction are reported as distinct sentinels
//     (ErrRankDeficient, ErrContradictory), both matching ErrUnsolvable.
//   - RREF clones its input; callers keep their matrix untouched.
//   - The zero test is tolerance based and tunable through WithEpsilon.
//
// ⚙️ Usage:
//
//	m, err := matrix.NewFromRows([]matrix.Row{
//		{-1, 1, -2}, // -x + y = -2
//		{0, -1, -3}, //     -y = -3
//	}, matrix.WithCheckDim())
//	if err != nil {
//		// handle ErrDimensionMismatch / ErrEmpty
//	}
//	r, err := matrix.RREF(m)
//	// r.Row(0)[2] == 5 (x), r.Row(1)[2] == 3 (y)
//
// Complexity:
//
//	RREF runs in O(n·c²) time for n equations over c-1 unknowns and
//	O(n·c) extra memory for the working copy.
package matrix
