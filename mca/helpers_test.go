// SPDX-License-Identifier: MIT

package mca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mca/matrix"
)

// burgundyRows is the indicator table of Abdi & Valentin (2007), six wines
// described by three experts through ten variables (22 categories):
//
//	expert 1: fruity y/n, woody 1/2/3, coffee y/n
//	expert 2: red fruit y/n, roasted y/n, vanillin 1/2/3, woody y/n
//	expert 3: fruity y/n, butter y/n, woody y/n
var burgundyRows = [][]float64{
	{1, 0, 0, 0, 1, 0, 1, 1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
	{0, 1, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 0},
	{0, 1, 1, 0, 0, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 0, 1, 1, 0, 1, 0},
	{0, 1, 1, 0, 0, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 0, 1, 0, 1, 0},
	{1, 0, 0, 0, 1, 0, 1, 1, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 0, 1},
	{1, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1},
}

const burgundyK = 10

// writerRows counts the punctuation marks (period, comma, other) used by six
// French writers, Abdi & Williams (2010).
var writerRows = [][]float64{
	{7836, 13112, 6026},    // Rousseau
	{53655, 102383, 42413}, // Chateaubriand
	{115615, 184541, 59226},
	{161926, 340479, 62754},
	{38177, 105101, 12670},
	{46371, 58367, 14299}, // Giraudoux
}

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// transpose returns rowsᵀ.
func transpose(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows[0]))
	for j := range out {
		out[j] = make([]float64, len(rows))
		for i := range rows {
			out[j][i] = rows[i][j]
		}
	}
	return out
}

// requireCloseUpToSign compares got against want factor by factor (columns),
// flipping a factor of got when it points the other way. It returns the
// applied signs so that related quantities can be aligned the same way.
func requireCloseUpToSign(t *testing.T, want [][]float64, got *matrix.Dense, atol float64) []float64 {
	t.Helper()
	rows := got.ToRows()
	require.Len(t, rows, len(want), "rows")
	k := len(want[0])
	require.Equal(t, k, got.Cols(), "factors")

	signs := make([]float64, k)
	for j := 0; j < k; j++ {
		dot := 0.0
		for i := range want {
			dot += want[i][j] * rows[i][j]
		}
		signs[j] = 1
		if dot < 0 {
			signs[j] = -1
		}
		for i := range want {
			require.InDelta(t, want[i][j], signs[j]*rows[i][j], atol, "(%d,%d)", i, j)
		}
	}
	return signs
}

// requireClose compares a matrix to nested rows element-wise.
func requireClose(t *testing.T, want [][]float64, got *matrix.Dense, atol float64) {
	t.Helper()
	rows := got.ToRows()
	require.Len(t, rows, len(want))
	for i := range want {
		require.Len(t, rows[i], len(want[i]), "row %d", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], rows[i][j], atol, "(%d,%d)", i, j)
		}
	}
}

// scaled multiplies every entry by f (per-mille tables).
func scaled(m *matrix.Dense, f float64) *matrix.Dense {
	out, _ := matrix.Scale(m, f)
	return out.(*matrix.Dense)
}

func columnSums(t *testing.T, m *matrix.Dense) []float64 {
	t.Helper()
	s, err := matrix.ColSums(m)
	require.NoError(t, err)
	return s
}

func sumOf(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}
	return s
}

func isDescending(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] > v[i-1] || math.IsNaN(v[i]) {
			return false
		}
	}
	return true
}
