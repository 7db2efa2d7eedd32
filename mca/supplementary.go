// SPDX-License-Identifier: MIT

package mca

import (
	"fmt"

	"github.com/katalvlaran/mca/matrix"
)

const (
	opSupRows = "mca.SupRowScores"
	opSupCols = "mca.SupColScores"
)

// SupRowScores projects supplementary rows into the fitted factor space.
//
// Implementation:
//   - Stage 1: X must have J columns; every row is divided by its sum.
//   - Stage 2: result = X̃·G[:, :n]·diag(1/s[:n]), n capped at rank
//     (n == 0: rank).
//
// The inverse diagonal is 1/s, not the −1/σ of the textbook transition
// formula. With the Benzécri correction σ = −√L differs from s, and −1/σ
// would not map an active row back onto its row of F; 1/s reproduces F
// exactly under both scale policies. Corrected supplementary scores thus
// differ from tables built with −1/σ.
//
// Errors:
//   - ErrInvalidInput for a nil X or n < 0.
//   - ErrDimensionMismatch when X.Cols() != J.
//   - ErrNumericDegeneracy for a zero row sum or a zero singular value.
func (m *MCA) SupRowScores(X matrix.Matrix, n int) (*matrix.Dense, error) {
	k, err := m.supplementaryInput(X, n)
	if err != nil {
		return nil, mcaErrorf(opSupRows, err)
	}
	if X.Cols() != m.j {
		return nil, mcaErrorf(opSupRows, fmt.Errorf("%d columns, want %d: %w", X.Cols(), m.j, ErrDimensionMismatch))
	}

	sums, err := matrix.RowSums(X)
	if err != nil {
		return nil, mcaErrorf(opSupRows, err)
	}
	inv, err := nonZeroReciprocals("row", sums)
	if err != nil {
		return nil, mcaErrorf(opSupRows, err)
	}
	profiles, err := matrix.ScaleRows(X, inv)
	if err != nil {
		return nil, mcaErrorf(opSupRows, err)
	}
	g, err := m.colScores(m.rank)
	if err != nil {
		return nil, mcaErrorf(opSupRows, err)
	}
	out, err := m.transition(profiles, g, k)
	if err != nil {
		return nil, mcaErrorf(opSupRows, err)
	}
	return out, nil
}

// SupColScores projects supplementary columns: X must have as many rows as
// the active table; every column is divided by its sum and the result is
// X̃ᵀ·F[:, :n]·diag(1/s[:n]).
func (m *MCA) SupColScores(X matrix.Matrix, n int) (*matrix.Dense, error) {
	k, err := m.supplementaryInput(X, n)
	if err != nil {
		return nil, mcaErrorf(opSupCols, err)
	}
	if X.Rows() != m.rows {
		return nil, mcaErrorf(opSupCols, fmt.Errorf("%d rows, want %d: %w", X.Rows(), m.rows, ErrDimensionMismatch))
	}

	sums, err := matrix.ColSums(X)
	if err != nil {
		return nil, mcaErrorf(opSupCols, err)
	}
	inv, err := nonZeroReciprocals("column", sums)
	if err != nil {
		return nil, mcaErrorf(opSupCols, err)
	}
	profiles, err := matrix.ScaleCols(X, inv)
	if err != nil {
		return nil, mcaErrorf(opSupCols, err)
	}
	profilesT, err := matrix.Transpose(profiles)
	if err != nil {
		return nil, mcaErrorf(opSupCols, err)
	}
	f, err := m.rowScores(m.rank)
	if err != nil {
		return nil, mcaErrorf(opSupCols, err)
	}
	out, err := m.transition(profilesT, f, k)
	if err != nil {
		return nil, mcaErrorf(opSupCols, err)
	}
	return out, nil
}

func (m *MCA) supplementaryInput(X matrix.Matrix, n int) (int, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return m.capCount(n)
}

// transition computes profiles·scores[:, :k]·diag(1/s[:k]).
func (m *MCA) transition(profiles matrix.Matrix, scores *matrix.Dense, k int) (*matrix.Dense, error) {
	inv, err := nonZeroReciprocals("singular value", m.s[:k])
	if err != nil {
		return nil, err
	}
	lead, err := scores.LeadingCols(k)
	if err != nil {
		return nil, err
	}
	prod, err := matrix.Mul(profiles, lead)
	if err != nil {
		return nil, err
	}
	return matrix.ScaleCols(prod, inv)
}

func nonZeroReciprocals(what string, v []float64) ([]float64, error) {
	out := make([]float64, len(v))
	for i, x := range v {
		if x == 0 {
			return nil, fmt.Errorf("%s %d is zero: %w", what, i, ErrNumericDegeneracy)
		}
		out[i] = 1 / x
	}
	return out, nil
}
