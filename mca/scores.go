// SPDX-License-Identifier: MIT
// Package mca: factor scores.
//
// Purpose:
//   - Resolve how many factors a request retains (explicit n or percent rule).
//   - Compute F = D_r·P·diag(σ) and G = D_c·V·diag(σ) on demand and cache
//     them; σ = −√L under the Benzécri correction, s otherwise.
//
// Contracts:
//   - n == 0 means "not given"; n < 0 is ErrInvalidInput; n > rank is capped.
//   - Returned matrices are fresh copies; callers may mutate them.

package mca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mca/matrix"
)

const (
	opRowScores = "mca.RowScores"
	opColScores = "mca.ColScores"
)

// factorCount resolves the number of factors for (percent, n).
//
// Percent rule: the smallest k ≥ 1 with Σ_{i<k} L_i ≥ percent·ΣL.
func (m *MCA) factorCount(percent float64, n int) (int, error) {
	if math.IsNaN(percent) || percent < 0 || percent > 1 {
		return 0, fmt.Errorf("percent %v outside [0,1]: %w", percent, ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("factor count %d must be positive: %w", n, ErrInvalidInput)
	}
	if n > 0 {
		return min(n, m.rank), nil
	}

	cum := floats.CumSum(make([]float64, m.rank), m.e[:m.rank])
	target := cum[m.rank-1] * percent
	for k, v := range cum {
		if v >= target {
			return k + 1, nil
		}
	}
	return m.rank, nil
}

// capCount resolves n for the methods without a percent rule:
// 0 or anything above rank means rank.
func (m *MCA) capCount(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("factor count %d must be positive: %w", n, ErrInvalidInput)
	}
	if n == 0 || n > m.rank {
		return m.rank, nil
	}
	return n, nil
}

// scale returns the first n entries of σ.
func (m *MCA) scale(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if m.corrected {
			out[i] = -math.Sqrt(m.e[i])
		} else {
			out[i] = m.s[i]
		}
	}
	return out
}

// project computes diag(inv)·basis[:, :n]·diag(σ[:n]).
func (m *MCA) project(basis *matrix.Dense, inv []float64, n int) (*matrix.Dense, error) {
	lead, err := basis.LeadingCols(n)
	if err != nil {
		return nil, err
	}
	scaled, err := matrix.ScaleRows(lead, inv)
	if err != nil {
		return nil, err
	}
	return matrix.ScaleCols(scaled, m.scale(n))
}

// rowScores makes sure F holds at least n factors.
func (m *MCA) rowScores(n int) (*matrix.Dense, error) {
	if m.f != nil && m.f.Cols() >= n {
		return m.f, nil
	}
	f, err := m.project(m.p, m.invR, n)
	if err != nil {
		return nil, err
	}
	m.f, m.distR = f, nil
	return m.f, nil
}

// colScores makes sure G holds at least n factors.
func (m *MCA) colScores(n int) (*matrix.Dense, error) {
	if m.g != nil && m.g.Cols() >= n {
		return m.g, nil
	}
	g, err := m.project(m.q, m.invC, n)
	if err != nil {
		return nil, err
	}
	m.g, m.distC = g, nil
	return m.g, nil
}

// RowScores returns the row factor scores F, items × min(n, rank), or the
// percent-rule count of factors when n == 0.
//
// Errors:
//   - ErrInvalidInput for percent outside [0,1] or n < 0.
func (m *MCA) RowScores(percent float64, n int) (*matrix.Dense, error) {
	k, err := m.factorCount(percent, n)
	if err != nil {
		return nil, mcaErrorf(opRowScores, err)
	}
	f, err := m.rowScores(k)
	if err != nil {
		return nil, mcaErrorf(opRowScores, err)
	}
	out, err := f.LeadingCols(k)
	if err != nil {
		return nil, mcaErrorf(opRowScores, err)
	}
	return out, nil
}

// ColScores returns the column factor scores G, J × min(n, rank), or the
// percent-rule count of factors when n == 0.
func (m *MCA) ColScores(percent float64, n int) (*matrix.Dense, error) {
	k, err := m.factorCount(percent, n)
	if err != nil {
		return nil, mcaErrorf(opColScores, err)
	}
	g, err := m.colScores(k)
	if err != nil {
		return nil, mcaErrorf(opColScores, err)
	}
	out, err := g.LeadingCols(k)
	if err != nil {
		return nil, mcaErrorf(opColScores, err)
	}
	return out, nil
}
