// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row is the unit of work of elimination: one equation, one slice.
//   - Pure operations (Scale, Add, Sub, Neg, ...) allocate a fresh Row.
//   - In-place kernels (ScaleInPlace, SubScaledInPlace) exist only for the
//     hot loops of the engine.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1, no hidden allocations in the in-place kernels.
//
// Note:
//   - Row/Row kernels require equal lengths. A mismatch is a programmer error
//     (Dense guarantees equal lengths after construction) and panics.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

const panicRowLength = "matrix: row length mismatch"

// Row is a fixed-length ordered sequence of float64 values.
type Row []float64

// Len returns the number of entries.
func (r Row) Len() int { return len(r) }

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)

	return out
}

// Scale returns alpha*r.
func (r Row) Scale(alpha float64) Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = v * alpha
	}

	return out
}

// Div returns r/alpha. Division by zero follows IEEE-754; callers guard pivots.
func (r Row) Div(alpha float64) Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = v / alpha
	}

	return out
}

// Neg returns -r.
func (r Row) Neg() Row { return r.Scale(-1) }

// AddScalar returns r + alpha elementwise.
func (r Row) AddScalar(alpha float64) Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = v + alpha
	}

	return out
}

// SubScalar returns r - alpha elementwise.
func (r Row) SubScalar(alpha float64) Row { return r.AddScalar(-alpha) }

// Add returns r + other elementwise. Panics if lengths differ.
func (r Row) Add(other Row) Row {
	mustSameLen(r, other)
	out := make(Row, len(r))
	for i := range r {
		out[i] = r[i] + other[i]
	}

	return out
}

// Sub returns r - other elementwise. Panics if lengths differ.
func (r Row) Sub(other Row) Row {
	mustSameLen(r, other)
	out := make(Row, len(r))
	for i := range r {
		out[i] = r[i] - other[i]
	}

	return out
}

// ScaleInPlace performs r *= alpha.
func (r Row) ScaleInPlace(alpha float64) {
	for i := range r {
		r[i] *= alpha
	}
}

// DivInPlace performs r /= alpha. Used to normalize a pivot row to 1.
func (r Row) DivInPlace(alpha float64) {
	for i := range r {
		r[i] /= alpha
	}
}

// SubScaledInPlace performs r -= alpha*other. Panics if lengths differ.
// This is the elimination kernel: one fused pass, no allocation.
func (r Row) SubScaledInPlace(other Row, alpha float64) {
	mustSameLen(r, other)
	for i := range r {
		r[i] -= alpha * other[i]
	}
}

// IsZero reports whether every |r[i]| < eps (exact zeros always qualify).
func (r Row) IsZero(eps float64) bool {
	return r.IsZeroPrefix(len(r), eps)
}

// IsZeroPrefix reports whether the first n entries are all below eps in
// magnitude. n is clamped to [0, len(r)].
func (r Row) IsZeroPrefix(n int, eps float64) bool {
	if n > len(r) {
		n = len(r)
	}
	for i := 0; i < n; i++ {
		if !nearZero(r[i], eps) {
			return false
		}
	}

	return true
}

// Equal reports whether r and other have the same length and every pair of
// entries differs by at most eps.
func (r Row) Equal(other Row, eps float64) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if math.Abs(r[i]-other[i]) > eps {
			return false
		}
	}

	return true
}

// String renders the row as "[a, b, c]".
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i, v := range r {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(formatEntry(v))
	}
	sb.WriteString(_fmtRowEnd)

	return sb.String()
}

// nearZero reports |v| < eps; an exact zero counts as zero even when eps == 0.
func nearZero(v, eps float64) bool {
	a := math.Abs(v)

	return a < eps || a == 0
}

// formatEntry renders v in the shortest form that round-trips ("%g"-like).
// Negative zero prints as 0.
func formatEntry(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

func mustSameLen(a, b Row) {
	if len(a) != len(b) {
		panic(panicRowLength)
	}
}
