// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mca/matrix"
)

// hide wraps a Matrix so kernels cannot see the concrete *Dense and must
// take the At/Set fallback path.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireRows asserts m equals want element-wise within delta.
func requireRows(t *testing.T, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], v, delta, "[%d,%d]", i, j)
		}
	}
}
