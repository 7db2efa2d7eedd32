// SPDX-License-Identifier: MIT

package mca

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mca/matrix"
	"github.com/katalvlaran/mca/svd"
)

// eps floors √mass in the diagonal normalizers so empty categories do not
// divide by zero.
const eps = 0x1p-52

// MCA is a fitted multiple correspondence analysis.
//
// Everything up to the retained eigenvalues is computed by New; factor scores
// and row/column distances are computed on first request and cached. The
// cache only grows: a request for more factors than cached recomputes it.
//
// An MCA is not safe for concurrent use; serialize access or build one engine
// per goroutine.
type MCA struct {
	log zerolog.Logger

	k, j  int // variables and categories
	rows  int // active rows
	items int // rows for dense mode, retained components for sparse mode

	corrected bool
	sparse    bool

	r, c       []float64     // row/column masses
	invR, invC []float64     // diagonals of D_r, D_c
	p, q       *matrix.Dense // left (rows×m) and right (J×m) singular vectors
	s, e       []float64     // singular values, eigenvalues (corrected or s²)
	rank       int
	inertia    float64

	// lazily computed
	f, g         *matrix.Dense
	distR, distC []float64

	rowLabels, colLabels []string
}

// New fits the analysis on X (rows = items, columns = categories or counts).
//
// Implementation:
//   - Stage 1: resolve options and (X, K, J).
//   - Stage 2: correspondence matrix, masses and standardized residuals.
//   - Stage 3: decomposition of D_r·Z_c·D_c (dense or truncated), ordered
//     descending and sign-oriented.
//   - Stage 4: eigenvalues (Benzécri-corrected or s²), rank and inertia.
//
// Errors:
//   - ErrInvalidInput for bad options, empty/negative/non-finite input,
//     ncols outside [1, cols].
//   - ErrNumericDegeneracy for a zero grand total or K == 1 with the
//     correction on.
//   - wrapped svd errors when the factorization fails.
func New(X matrix.Matrix, opts ...Option) (*MCA, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, mcaErrorf(opNew, err)
	}
	x, k, j, err := processInput(X, o)
	if err != nil {
		return nil, mcaErrorf(opNew, err)
	}

	m := &MCA{
		log:       o.log,
		k:         k,
		j:         j,
		rows:      x.Rows(),
		corrected: o.benzecri,
		sparse:    o.sparse,
	}

	a, err := m.correspondence(x)
	if err != nil {
		return nil, mcaErrorf(opNew, err)
	}
	if err = m.decompose(a, o); err != nil {
		return nil, mcaErrorf(opNew, err)
	}
	if err = m.eigenvalues(o.tol); err != nil {
		return nil, mcaErrorf(opNew, err)
	}

	m.log.Debug().
		Int("rows", m.rows).
		Int("k", m.k).
		Int("j", m.j).
		Int("components", len(m.s)).
		Int("rank", m.rank).
		Float64("inertia", m.inertia).
		Bool("benzecri", m.corrected).
		Bool("sparse", o.sparse).
		Bool("approximate", o.approximate).
		Msg("mca: fitted")

	return m, nil
}

// correspondence sets the masses and normalizers and returns D_r·Z_c·D_c.
func (m *MCA) correspondence(x *matrix.Dense) (*matrix.Dense, error) {
	total, err := matrix.Sum(x)
	if err != nil {
		return nil, mcaErrorf(opCorrespond, err)
	}
	if total == 0 || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%s: grand total %v: %w: %w", opCorrespond, total, ErrNumericDegeneracy, ErrInvalidInput)
	}

	z, err := matrix.Scale(x, 1/total)
	if err != nil {
		return nil, mcaErrorf(opCorrespond, err)
	}
	if m.r, err = matrix.RowSums(z); err != nil {
		return nil, mcaErrorf(opCorrespond, err)
	}
	if m.c, err = matrix.ColSums(z); err != nil {
		return nil, mcaErrorf(opCorrespond, err)
	}
	m.invR, m.invC = invSqrt(m.r), invSqrt(m.c)

	expected, err := matrix.Outer(m.r, m.c)
	if err != nil {
		return nil, mcaErrorf(opCorrespond, err)
	}
	zc, err := matrix.Sub(z, expected)
	if err != nil {
		return nil, mcaErrorf(opCorrespond, err)
	}
	left, err := matrix.ScaleRows(zc, m.invR)
	if err != nil {
		return nil, mcaErrorf(opCorrespond, err)
	}
	a, err := matrix.ScaleCols(left, m.invC)
	if err != nil {
		return nil, mcaErrorf(opCorrespond, err)
	}

	return a, nil
}

func invSqrt(mass []float64) []float64 {
	out := make([]float64, len(mass))
	for i, v := range mass {
		out[i] = 1 / (eps + math.Sqrt(v))
	}
	return out
}

// decompose factors a and stores P, s, V and the item count.
//
// Dense mode keeps min(rows, J) components. Truncated mode asks for
// min(rows, J) − 1 components, fewer when an explicit WithNCols is smaller
// (K derived from encoded columns does not count); the
// truncated result comes back ascending and is reordered by svd.Descending.
func (m *MCA) decompose(a *matrix.Dense, o Options) error {
	g, err := matrix.ToGonum(a)
	if err != nil {
		return mcaErrorf(opDecompose, err)
	}

	var t *svd.Triple
	if o.sparse {
		comps := min(a.Rows(), a.Cols()) - 1
		if o.ncolsSet && o.ncols < comps {
			comps = o.ncols
		}
		if comps < 1 {
			return fmt.Errorf("%s: truncated mode needs at least two rows and columns: %w", opDecompose, ErrInvalidInput)
		}
		if t, err = svd.Truncated(g, comps); err != nil {
			return mcaErrorf(opDecompose, err)
		}
		if t, err = svd.Descending(t); err != nil {
			return mcaErrorf(opDecompose, err)
		}
		m.items = comps
	} else {
		if t, err = svd.Dense(g); err != nil {
			return mcaErrorf(opDecompose, err)
		}
		m.items = m.rows
	}
	if t, err = svd.Orient(t); err != nil {
		return mcaErrorf(opDecompose, err)
	}

	if m.p, err = matrix.FromGonum(t.U); err != nil {
		return mcaErrorf(opDecompose, err)
	}
	if m.q, err = matrix.FromGonum(t.V); err != nil {
		return mcaErrorf(opDecompose, err)
	}
	m.s = append([]float64(nil), t.S...)

	return nil
}

// eigenvalues derives E, the rank and the total inertia from s.
// A rank that computes to zero means "keep everything".
func (m *MCA) eigenvalues(tol float64) error {
	if m.corrected {
		if m.k == 1 {
			return fmt.Errorf("%s: Benzécri correction with K=1: %w", opEigenvalues, ErrNumericDegeneracy)
		}
		m.e = benzecri(m.s, m.k)
	} else {
		m.e = squares(m.s)
	}
	m.inertia = floats.Sum(m.e)

	m.rank = len(m.e)
	for i, v := range m.e {
		if v < tol {
			m.rank = i
			break
		}
	}
	if m.rank == 0 {
		m.rank = len(m.e)
	}

	return nil
}

// benzecri applies E_k = (K/(K−1)·(s_k² − 1/K))² for s_k² > 1/K, else 0.
func benzecri(s []float64, k int) []float64 {
	kf := float64(k)
	out := make([]float64, len(s))
	for i, v := range s {
		sq := v * v
		if sq > 1/kf {
			d := kf / (kf - 1) * (sq - 1/kf)
			out[i] = d * d
		}
	}
	return out
}

func squares(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v * v
	}
	return out
}
