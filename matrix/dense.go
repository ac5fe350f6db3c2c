// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (ordered rows) & safe accessors.
//
// Purpose:
//   - Keep every equation in its own Row so pivoting swaps row headers, not data.
//   - Guarantee safety at the public surface: At/Set/Row/Swap/View return errors
//     instead of panicking.
//   - Support no-copy views (View, Truncate) whose rows alias the parent.
//
// Complexity quicksheet:
//   - NewDense/NewFromRows: O(r*c); At/Set/Row/Swap: O(1); Clone: O(r*c); View: O(1).
package matrix

import (
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxSwap    = "Swap"
	ctxView    = "View"
	ctxFromRow = "NewFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowEnd   = "]"
	_fmtRowClose = _fmtRowEnd + "\n"
	_fmtSep      = ", "
)

// Dense is an ordered sequence of Rows plus a shape.
//   - r,c hold dimensions (rows, cols); c is the length of the first row.
//   - rows hold the data; order is semantically significant.
type Dense struct {
	r, c int   // row and column counts
	rows []Row // row headers; swapping them reorders equations in O(1)
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// One contiguous buffer, sliced per row: cache friendly and a single allocation.
	buf := make([]float64, rows*cols)
	rs := make([]Row, rows)
	for i := range rs {
		rs[i] = Row(buf[i*cols : (i+1)*cols : (i+1)*cols])
	}

	return &Dense{r: rows, c: cols, rows: rs}, nil
}

// NewFromRows builds a Dense from a non-empty ordered sequence of rows.
// MAIN DESCRIPTION:
//   - Copies every row so the caller's slices are never aliased.
//
// Implementation:
//   - Stage 1: reject empty input (ErrEmpty) and empty first row (ErrInvalidDimensions).
//   - Stage 2: when WithCheckDim is set, every row must match len(rows[0]).
//   - Stage 3: reject NaN/±Inf entries (ErrNaNInf) and copy.
//
// Behavior highlights:
//   - Without WithCheckDim ragged rows are accepted as given; the shape
//     reports len(rows[0]) columns and accessors bound-check each row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows []Row, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxFromRow, ErrEmpty)
	}
	c := len(rows[0])
	if c == 0 {
		return nil, matrixErrorf(ctxFromRow, ErrInvalidDimensions)
	}

	out := &Dense{r: len(rows), c: c, rows: make([]Row, len(rows))}
	for i, row := range rows {
		if o.checkDim && len(row) != c {
			return nil, denseErrorf(ctxFromRow, i, len(row), ErrDimensionMismatch)
		}
		for j, v := range row {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
		}
		out.rows[i] = row.Clone()
	}

	return out, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// At retrieves the element at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.rows[row][col], nil
}

// Set assigns v at (row, col). NaN/±Inf are rejected with ErrNaNInf.
func (m *Dense) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.rows[row][col] = v

	return nil
}

// Row returns the live row at index i. Mutations through the returned slice
// are visible in m.
func (m *Dense) Row(i int) (Row, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// Swap exchanges rows i and j in place. Swapping a row with itself is a no-op.
func (m *Dense) Swap(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// View returns rows [from, to) as a Dense that aliases m: element writes and
// swaps inside the view are visible in the parent.
// Errors:
//   - ErrOutOfRange when the range is outside [0, Rows()] or empty.
func (m *Dense) View(from, to int) (*Dense, error) {
	if from < 0 || to > m.r || from >= to {
		return nil, denseErrorf(ctxView, from, to, ErrOutOfRange)
	}

	return &Dense{r: to - from, c: m.c, rows: m.rows[from:to:to]}, nil
}

// Truncate is View(0, n).
func (m *Dense) Truncate(n int) (*Dense, error) { return m.View(0, n) }

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	rs := make([]Row, m.r)
	for i, row := range m.rows {
		rs[i] = row.Clone()
	}

	return &Dense{r: m.r, c: m.c, rows: rs}
}

// ToRows returns a deep copy of the data as plain slices.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i, row := range m.rows {
		out[i] = []float64(row.Clone())
	}

	return out
}

// Equal reports whether m and other share a shape and all entries agree
// within eps. A nil other is never equal.
func (m *Dense) Equal(other Matrix, eps float64) bool {
	if other == nil || m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			a, errA := m.At(i, j)
			b, errB := other.At(i, j)
			if errA != nil || errB != nil {
				return false
			}
			if d := a - b; d > eps || d < -eps {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer, one row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for _, row := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(formatEntry(v))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c && col < len(m.rows[row])
}
