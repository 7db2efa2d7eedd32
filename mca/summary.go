// SPDX-License-Identifier: MIT

package mca

import (
	"errors"

	"github.com/katalvlaran/mca/matrix"
)

const opSummarize = "mca.Summarize"

// Summary is a serializable report of a fitted analysis.
type Summary struct {
	K         int     `json:"k" yaml:"k"`
	J         int     `json:"j" yaml:"j"`
	Items     int     `json:"items" yaml:"items"`
	Rank      int     `json:"rank" yaml:"rank"`
	Factors   int     `json:"factors" yaml:"factors"`
	Corrected bool    `json:"benzecri" yaml:"benzecri"`
	Inertia   float64 `json:"inertia" yaml:"inertia"`

	SingularValues    []float64 `json:"singular_values" yaml:"singular_values"`
	Eigenvalues       []float64 `json:"eigenvalues" yaml:"eigenvalues"`
	ExplainedVariance []float64 `json:"explained_variance" yaml:"explained_variance"`
	GreenacreVariance []float64 `json:"greenacre_variance,omitempty" yaml:"greenacre_variance,omitempty"`

	RowLabels []string  `json:"row_labels,omitempty" yaml:"row_labels,omitempty"`
	ColLabels []string  `json:"col_labels,omitempty" yaml:"col_labels,omitempty"`
	RowMasses []float64 `json:"row_masses" yaml:"row_masses"`
	ColMasses []float64 `json:"col_masses" yaml:"col_masses"`

	RowScores        [][]float64 `json:"row_scores" yaml:"row_scores"`
	ColScores        [][]float64 `json:"col_scores" yaml:"col_scores"`
	RowContributions [][]float64 `json:"row_contributions" yaml:"row_contributions"`
	ColContributions [][]float64 `json:"col_contributions" yaml:"col_contributions"`
	RowCos2          [][]float64 `json:"row_cos2" yaml:"row_cos2"`
	ColCos2          [][]float64 `json:"col_cos2" yaml:"col_cos2"`
}

// Summarize gathers eigenvalues, explained variance and the row/column
// scores, contributions and squared cosines for the factors selected by
// (percent, n).
//
// The Greenacre ratios are omitted when they are undefined (K == 1).
func (m *MCA) Summarize(percent float64, n int) (*Summary, error) {
	k, err := m.factorCount(percent, n)
	if err != nil {
		return nil, mcaErrorf(opSummarize, err)
	}

	sum := &Summary{
		K:              m.k,
		J:              m.j,
		Items:          m.items,
		Rank:           m.rank,
		Factors:        k,
		Corrected:      m.corrected,
		Inertia:        m.inertia,
		SingularValues: m.SingularValues(),
		Eigenvalues:    m.Eigenvalues(),
		RowLabels:      m.RowLabels(),
		ColLabels:      m.ColLabels(),
		RowMasses:      m.RowMasses(),
		ColMasses:      m.ColMasses(),
	}

	if sum.ExplainedVariance, err = m.ExplainedVariance(false, 0); err != nil {
		return nil, err
	}
	if sum.GreenacreVariance, err = m.ExplainedVariance(true, 0); err != nil {
		if !errors.Is(err, ErrNumericDegeneracy) {
			return nil, err
		}
		sum.GreenacreVariance = nil
	}

	steps := []struct {
		dst *[][]float64
		fn  func() (*matrix.Dense, error)
	}{
		{&sum.RowScores, func() (*matrix.Dense, error) { return m.RowScores(percent, k) }},
		{&sum.ColScores, func() (*matrix.Dense, error) { return m.ColScores(percent, k) }},
		{&sum.RowContributions, func() (*matrix.Dense, error) { return m.RowContributions(percent, k) }},
		{&sum.ColContributions, func() (*matrix.Dense, error) { return m.ColContributions(percent, k) }},
		{&sum.RowCos2, func() (*matrix.Dense, error) { return m.RowCos2(k) }},
		{&sum.ColCos2, func() (*matrix.Dense, error) { return m.ColCos2(k) }},
	}
	for _, st := range steps {
		d, err := st.fn()
		if err != nil {
			return nil, err
		}
		*st.dst = d.ToRows()
	}

	return sum, nil
}
