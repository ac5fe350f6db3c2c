// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the engine tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance used by numeric assertions.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) code paths.
type hide struct{ matrix.Matrix }

// mustRows builds a dimension-checked Dense or fails the test.
func mustRows(t *testing.T, rows ...matrix.Row) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, matrix.WithCheckDim())
	require.NoError(t, err)

	return m
}

// requireRowsInDelta compares every entry of m against want within tol.
func requireRowsInDelta(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	got := m.ToRows()
	require.Len(t, got, len(want), "row count")
	for i := range want {
		require.Len(t, got[i], len(want[i]), "row %d length", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], got[i][j], tol, "entry (%d,%d)", i, j)
		}
	}
}
