// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mca/matrix"
)

func TestValidators(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, matrix.ValidateNotNil(a))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameShape(a, a))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	ok := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateFinite(ok))
	require.NoError(t, matrix.ValidateFinite(hide{ok}))

	bad, err := matrix.NewFromRows([][]float64{{1, 2}, {math.Inf(1), 4}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{bad}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
