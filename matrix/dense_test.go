// Package matrix_test contains unit tests for the Dense container.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the dimensions.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4) // create a Dense matrix of size 3x4
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates Set() followed by At(), and the NaN/Inf guard in Set().
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestNewFromRows covers empty input, ragged rows, non-finite values and copying.
func TestNewFromRows(t *testing.T) {
	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.NewFromRows([]matrix.Row{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	ragged := []matrix.Row{{1, 2, 3}, {4, 5}}
	_, err = matrix.NewFromRows(ragged, matrix.WithCheckDim())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Without dimension checking the ragged input is accepted; shape follows row 0.
	m, err := matrix.NewFromRows(ragged)
	require.NoError(t, err)
	require.Equal(t, 3, m.Cols())
	_, err = m.At(1, 2) // row 1 is short
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewFromRows([]matrix.Row{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Input rows must not be aliased.
	src := []matrix.Row{{1, 2}}
	m, err = matrix.NewFromRows(src)
	require.NoError(t, err)
	src[0][0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestRowSwap checks live row access and in-place swapping.
func TestRowSwap(t *testing.T) {
	m := mustRows(t, matrix.Row{1, 2}, matrix.Row{3, 4}, matrix.Row{5, 6})

	r0, err := m.Row(0)
	require.NoError(t, err)
	r0[1] = 20 // writes through to the matrix
	v, _ := m.At(0, 1)
	require.Equal(t, 20.0, v)

	require.NoError(t, m.Swap(0, 2))
	requireRowsInDelta(t, [][]float64{{5, 6}, {3, 4}, {1, 20}}, m)

	require.NoError(t, m.Swap(1, 1)) // self swap is a no-op
	require.ErrorIs(t, m.Swap(0, 3), matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestView ensures views alias their parent for writes and swaps.
func TestView(t *testing.T) {
	m := mustRows(t, matrix.Row{1, 1}, matrix.Row{2, 2}, matrix.Row{3, 3}, matrix.Row{4, 4})

	v, err := m.View(1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())

	require.NoError(t, v.Set(0, 0, -2)) // parent row 1
	require.NoError(t, v.Swap(0, 1))    // parent rows 1 and 2
	requireRowsInDelta(t, [][]float64{{1, 1}, {3, 3}, {-2, 2}, {4, 4}}, m)

	tr, err := m.Truncate(2)
	require.NoError(t, err)
	requireRowsInDelta(t, [][]float64{{1, 1}, {3, 3}}, tr)

	_, err = m.View(2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.View(0, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, matrix.Row{1, 0}, matrix.Row{0, 2})

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestEqual covers tolerant comparison across shapes and implementations.
func TestEqual(t *testing.T) {
	a := mustRows(t, matrix.Row{1, 2}, matrix.Row{3, 4})
	b := mustRows(t, matrix.Row{1, 2 + 1e-12}, matrix.Row{3, 4})

	require.True(t, a.Equal(b, 1e-9))
	require.True(t, a.Equal(hide{b}, 1e-9))
	require.False(t, a.Equal(b, 0))
	require.False(t, a.Equal(mustRows(t, matrix.Row{1, 2}), 1e-9))
	require.False(t, a.Equal(nil, 1e-9))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustRows(t, matrix.Row{1, 2}, matrix.Row{3, 4.5})

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
