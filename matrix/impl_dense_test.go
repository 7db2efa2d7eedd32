// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mca/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseDefaultZero checks that a fresh matrix is zero-filled.
func TestNewDenseDefaultZero(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	rows, cols := m.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	requireRows(t, [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, m, 0)
}

func TestNewFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m := mustRows(t, src)
	requireRows(t, src, m, 0)

	// The caller's slices are not retained.
	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// The policy can be relaxed for controlled ingestion.
	m, err = matrix.NewFromRows([][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN()))
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	requireRows(t, [][]float64{{1, 0}, {0, 2}}, m, 0)
	requireRows(t, [][]float64{{3, 0}, {0, 2}}, clone, 0)
}

func TestRowColCopies(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = -1

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestLeadingCols(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	lead, err := m.LeadingCols(2)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 2}, {4, 5}}, lead, 0)

	all, err := m.LeadingCols(3)
	require.NoError(t, err)
	require.NoError(t, all.Set(0, 0, 42))
	requireRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m, 0)

	for _, n := range []int{0, -1, 4} {
		_, err = m.LeadingCols(n)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "n=%d", n)
	}
}

func TestDenseOf(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	fast, err := matrix.DenseOf(m)
	require.NoError(t, err)
	slow, err := matrix.DenseOf(hide{m})
	require.NoError(t, err)
	requireRows(t, m.ToRows(), fast, 0)
	requireRows(t, m.ToRows(), slow, 0)

	require.NoError(t, fast.Set(0, 0, 7))
	requireRows(t, [][]float64{{1, 2}, {3, 4}}, m, 0)

	_, err = matrix.DenseOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	_, err = matrix.DenseOf(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
