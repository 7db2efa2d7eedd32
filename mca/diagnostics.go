// SPDX-License-Identifier: MIT

package mca

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mca/matrix"
)

const (
	opRowCos2          = "mca.RowCos2"
	opColCos2          = "mca.ColCos2"
	opRowContributions = "mca.RowContributions"
	opColContributions = "mca.ColContributions"
	opExplainedVar     = "mca.ExplainedVariance"
	opDistances        = "mca.Distances"
)

// RowDistances returns dr, the squared distance of every row to the origin
// of the factor space (squared norms of F over all rank factors).
func (m *MCA) RowDistances() ([]float64, error) {
	if err := m.rowDistances(); err != nil {
		return nil, mcaErrorf(opDistances, err)
	}
	return append([]float64(nil), m.distR...), nil
}

// ColDistances returns dc, the column analogue of RowDistances.
func (m *MCA) ColDistances() ([]float64, error) {
	if err := m.colDistances(); err != nil {
		return nil, mcaErrorf(opDistances, err)
	}
	return append([]float64(nil), m.distC...), nil
}

func (m *MCA) rowDistances() error {
	f, err := m.rowScores(m.rank)
	if err != nil {
		return err
	}
	if m.distR == nil {
		m.distR, err = matrix.RowNormsSq(f)
	}
	return err
}

func (m *MCA) colDistances() error {
	g, err := m.colScores(m.rank)
	if err != nil {
		return err
	}
	if m.distC == nil {
		m.distC, err = matrix.RowNormsSq(g)
	}
	return err
}

// RowCos2 returns the squared cosines F²/dr of the first n factors
// (n == 0: all rank factors). A row at the origin gets zeros.
func (m *MCA) RowCos2(n int) (*matrix.Dense, error) {
	k, err := m.capCount(n)
	if err != nil {
		return nil, mcaErrorf(opRowCos2, err)
	}
	if err = m.rowDistances(); err != nil {
		return nil, mcaErrorf(opRowCos2, err)
	}
	out, err := cos2(m.f, m.distR, k)
	if err != nil {
		return nil, mcaErrorf(opRowCos2, err)
	}
	return out, nil
}

// ColCos2 returns the squared cosines G²/dc of the first n factors.
func (m *MCA) ColCos2(n int) (*matrix.Dense, error) {
	k, err := m.capCount(n)
	if err != nil {
		return nil, mcaErrorf(opColCos2, err)
	}
	if err = m.colDistances(); err != nil {
		return nil, mcaErrorf(opColCos2, err)
	}
	out, err := cos2(m.g, m.distC, k)
	if err != nil {
		return nil, mcaErrorf(opColCos2, err)
	}
	return out, nil
}

func cos2(scores *matrix.Dense, dist []float64, k int) (*matrix.Dense, error) {
	lead, err := scores.LeadingCols(k)
	if err != nil {
		return nil, err
	}
	sq, err := matrix.Square(lead)
	if err != nil {
		return nil, err
	}
	return matrix.ScaleRows(sq, reciprocals(dist))
}

// reciprocals maps v to 1/v, keeping 0 for 0.
func reciprocals(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if x != 0 {
			out[i] = 1 / x
		}
	}
	return out
}

// RowContributions returns r_i·F_ik²/L_k for the first n factors (percent
// rule when n == 0). Each column sums to 1.
//
// Errors:
//   - ErrInvalidInput for percent outside [0,1] or n < 0.
//   - ErrNumericDegeneracy when a selected eigenvalue is zero.
func (m *MCA) RowContributions(percent float64, n int) (*matrix.Dense, error) {
	k, err := m.factorCount(percent, n)
	if err != nil {
		return nil, mcaErrorf(opRowContributions, err)
	}
	f, err := m.rowScores(m.rank)
	if err != nil {
		return nil, mcaErrorf(opRowContributions, err)
	}
	out, err := m.contributions(f, m.r, k)
	if err != nil {
		return nil, mcaErrorf(opRowContributions, err)
	}
	return out, nil
}

// ColContributions returns c_j·G_jk²/L_k for the first n factors, the
// column-mass-weighted analogue of RowContributions.
func (m *MCA) ColContributions(percent float64, n int) (*matrix.Dense, error) {
	k, err := m.factorCount(percent, n)
	if err != nil {
		return nil, mcaErrorf(opColContributions, err)
	}
	g, err := m.colScores(m.rank)
	if err != nil {
		return nil, mcaErrorf(opColContributions, err)
	}
	out, err := m.contributions(g, m.c, k)
	if err != nil {
		return nil, mcaErrorf(opColContributions, err)
	}
	return out, nil
}

func (m *MCA) contributions(scores *matrix.Dense, mass []float64, k int) (*matrix.Dense, error) {
	inv := make([]float64, k)
	for i, l := range m.e[:k] {
		if l == 0 {
			return nil, fmt.Errorf("eigenvalue %d is zero: %w", i, ErrNumericDegeneracy)
		}
		inv[i] = 1 / l
	}
	lead, err := scores.LeadingCols(k)
	if err != nil {
		return nil, err
	}
	sq, err := matrix.Square(lead)
	if err != nil {
		return nil, err
	}
	weighted, err := matrix.ScaleRows(sq, mass)
	if err != nil {
		return nil, err
	}
	return matrix.ScaleCols(weighted, inv)
}

// ExplainedVariance returns the share of inertia explained by each of the
// first n factors (n == 0: all components).
//
// Without greenacre the ratio is E/ΣE. With greenacre the Benzécri
// eigenvalues are divided by Greenacre's adjusted inertia
// K/(K−1)·(Σs⁴ − (J−K)/K²), whether or not the engine was fitted with the
// correction.
//
// Errors:
//   - ErrInvalidInput for n < 0.
//   - ErrNumericDegeneracy for K == 1 (greenacre) or a zero denominator.
func (m *MCA) ExplainedVariance(greenacre bool, n int) ([]float64, error) {
	if n < 0 {
		return nil, mcaErrorf(opExplainedVar, fmt.Errorf("factor count %d: %w", n, ErrInvalidInput))
	}

	var num []float64
	var denom float64
	if greenacre {
		if m.k == 1 {
			return nil, mcaErrorf(opExplainedVar, fmt.Errorf("greenacre with K=1: %w", ErrNumericDegeneracy))
		}
		kf, jf := float64(m.k), float64(m.j)
		var s4 float64
		for _, v := range m.s {
			s4 += v * v * v * v
		}
		num = benzecri(m.s, m.k)
		denom = kf / (kf - 1) * (s4 - (jf-kf)/(kf*kf))
	} else {
		num = append([]float64(nil), m.e...)
		denom = m.inertia
	}
	if denom == 0 {
		return nil, mcaErrorf(opExplainedVar, fmt.Errorf("zero total inertia: %w", ErrNumericDegeneracy))
	}

	floats.Scale(1/denom, num)
	if n > 0 && n < len(num) {
		num = num[:n]
	}
	return num, nil
}
