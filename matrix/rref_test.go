// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRREF_Solvable runs the engine over small systems with known answers.
func TestRREF_Solvable(t *testing.T) {
	cases := []struct {
		name string
		in   []matrix.Row
		want [][]float64
	}{
		{
			// x = 2 + y, y = 3  →  -x + y = -2, -y = -3
			name: "chain",
			in:   []matrix.Row{{-1, 1, -2}, {0, -1, -3}},
			want: [][]float64{{1, 0, 5}, {0, 1, 3}},
		},
		{
			name: "single unknown",
			in:   []matrix.Row{{-1, -4}},
			want: [][]float64{{1, 4}},
		},
		{
			// zero in the leading position forces a swap
			name: "needs pivot swap",
			in:   []matrix.Row{{0, 1, 2}, {1, 0, 3}},
			want: [][]float64{{1, 0, 3}, {0, 1, 2}},
		},
		{
			// third equation is the sum of the first two
			name: "overdetermined consistent",
			in:   []matrix.Row{{1, 0, 1}, {0, 1, 2}, {1, 1, 3}},
			want: [][]float64{{1, 0, 1}, {0, 1, 2}},
		},
		{
			name: "three unknowns",
			in: []matrix.Row{
				{2, 1, -1, 8},
				{-3, -1, 2, -11},
				{-2, 1, 2, -3},
			},
			want: [][]float64{{1, 0, 0, 2}, {0, 1, 0, 3}, {0, 0, 1, -1}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustRows(t, tc.in...)
			got, err := matrix.RREF(m)
			require.NoError(t, err)
			requireRowsInDelta(t, tc.want, got)
		})
	}
}

// TestRREF_Failures covers every failure sentinel of the engine.
func TestRREF_Failures(t *testing.T) {
	cases := []struct {
		name string
		in   []matrix.Row
		want error
	}{
		{"x=5 and x=6", []matrix.Row{{-1, -5}, {-1, -6}}, matrix.ErrContradictory},
		{"a=b+1 and b=a+1", []matrix.Row{{-1, 1, -1}, {1, -1, -1}}, matrix.ErrContradictory},
		{"overdetermined inconsistent", []matrix.Row{{1, 0, 1}, {0, 1, 2}, {1, 1, 4}}, matrix.ErrContradictory},
		{"dependent rows", []matrix.Row{{1, 1, 2}, {2, 2, 4}}, matrix.ErrRankDeficient},
		{"unused unknown", []matrix.Row{{1, 0, 2}, {1, 0, 2}}, matrix.ErrRankDeficient},
		{"more unknowns than equations", []matrix.Row{{1, 2, 3}}, matrix.ErrDimensionMismatch},
		{"no unknowns", []matrix.Row{{5}}, matrix.ErrDimensionMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.RREF(mustRows(t, tc.in...))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRREF_UnsolvableUmbrella ensures both unsolvable causes match ErrUnsolvable
// while staying distinguishable from each other.
func TestRREF_UnsolvableUmbrella(t *testing.T) {
	assert.ErrorIs(t, matrix.ErrRankDeficient, matrix.ErrUnsolvable)
	assert.ErrorIs(t, matrix.ErrContradictory, matrix.ErrUnsolvable)
	assert.NotErrorIs(t, matrix.ErrRankDeficient, matrix.ErrContradictory)
	assert.NotErrorIs(t, matrix.ErrContradictory, matrix.ErrRankDeficient)
	assert.NotErrorIs(t, matrix.ErrDimensionMismatch, matrix.ErrUnsolvable)
}

// TestRREF_NilAndRagged checks guard rails on the input.
func TestRREF_NilAndRagged(t *testing.T) {
	_, err := matrix.RREF(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var d *matrix.Dense
	_, err = matrix.RREF(d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	ragged, err := matrix.NewFromRows([]matrix.Row{{1, 0, 1}, {0, 1}})
	require.NoError(t, err)
	_, err = matrix.RREF(ragged)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRREF_DoesNotMutateInput verifies that elimination works on a private copy.
func TestRREF_DoesNotMutateInput(t *testing.T) {
	m := mustRows(t, matrix.Row{0, 1, 2}, matrix.Row{1, 0, 3}, matrix.Row{1, 1, 5})
	before := m.ToRows()

	_, err := matrix.RREF(m)
	require.NoError(t, err)
	require.Equal(t, before, m.ToRows())
}

// TestRREF_Idempotent re-runs elimination on its own output.
func TestRREF_Idempotent(t *testing.T) {
	m := mustRows(t, matrix.Row{2, 1, -1, 8}, matrix.Row{-3, -1, 2, -11}, matrix.Row{-2, 1, 2, -3})

	once, err := matrix.RREF(m)
	require.NoError(t, err)
	twice, err := matrix.RREF(once)
	require.NoError(t, err)

	require.True(t, once.Equal(twice, matrix.DefaultEpsilon), "once:\n%s\ntwice:\n%s", once, twice)
}

// TestRREF_GenericMatrix forces the non-*Dense clone path.
func TestRREF_GenericMatrix(t *testing.T) {
	m := mustRows(t, matrix.Row{-1, 1, -2}, matrix.Row{0, -1, -3})

	got, err := matrix.RREF(hide{m})
	require.NoError(t, err)
	requireRowsInDelta(t, [][]float64{{1, 0, 5}, {0, 1, 3}}, got)
}

// TestRREF_Epsilon shows how the tolerance decides what counts as a pivot.
func TestRREF_Epsilon(t *testing.T) {
	m := mustRows(t, matrix.Row{1e-6, 2e-6}) // 1e-6·x = 2e-6

	_, err := matrix.RREF(m) // default eps = 1e-5 treats the pivot as zero
	require.ErrorIs(t, err, matrix.ErrRankDeficient)

	got, err := matrix.RREF(m, matrix.WithEpsilon(1e-9))
	require.NoError(t, err)
	requireRowsInDelta(t, [][]float64{{1, 2}}, got)
}

// TestEchelon_InPlace checks the forward phase result and its in-place contract.
func TestEchelon_InPlace(t *testing.T) {
	m := mustRows(t, matrix.Row{0, 1, 2}, matrix.Row{2, 0, 6})

	require.NoError(t, matrix.Echelon(m))
	requireRowsInDelta(t, [][]float64{{2, 0, 6}, {0, 1, 2}}, m)

	bad := mustRows(t, matrix.Row{1, 1, 1}, matrix.Row{1, 1, 2})
	require.ErrorIs(t, matrix.Echelon(bad), matrix.ErrContradictory)

	require.ErrorIs(t, matrix.Echelon(nil), matrix.ErrNilMatrix)
}

// TestRREF_RandomIntegerSystems solves random square systems with integer
// solutions and checks the recovered values.
func TestRREF_RandomIntegerSystems(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	solved := 0

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(5)
		x := make([]float64, n)
		for i := range x {
			x[i] = float64(rng.Intn(21) - 10)
		}

		rows := make([]matrix.Row, n)
		for i := range rows {
			row := make(matrix.Row, n+1)
			for j := 0; j < n; j++ {
				row[j] = float64(rng.Intn(7) - 3)
				row[n] += row[j] * x[j]
			}
			rows[i] = row
		}

		got, err := matrix.RREF(mustRows(t, rows...))
		if err != nil {
			require.ErrorIs(t, err, matrix.ErrUnsolvable, "trial %d", trial)
			continue
		}
		solved++
		for i := 0; i < n; i++ {
			v, err := got.At(i, n)
			require.NoError(t, err)
			require.InDelta(t, x[i], v, 1e-6, "trial %d unknown %d", trial, i)
		}
	}

	require.Greater(t, solved, 25, "most random integer systems are non-singular")
}
