// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// nullRel is the relative size below which a singular value recovered from a
// Gram matrix is treated as zero. Squaring halves the usable precision, so
// values under roughly sqrt(eps)·max cannot be resolved.
const nullRel = 1e-6

// Triple holds a (possibly truncated) decomposition A ≈ U·diag(S)·Vᵀ.
//
// U is m×k, S has k entries, V is n×k: column j of U and V is the j-th
// left/right singular vector, paired with S[j].
type Triple struct {
	U *mat.Dense
	S []float64
	V *mat.Dense
}

// Components returns k, the number of singular triplets held.
func (t *Triple) Components() int { return len(t.S) }

// IsDescending reports whether S is sorted from largest to smallest.
func (t *Triple) IsDescending() bool {
	for j := 1; j < len(t.S); j++ {
		if t.S[j] > t.S[j-1] {
			return false
		}
	}
	return true
}

// validate checks the block shapes against len(S).
func (t *Triple) validate() error {
	if t == nil || t.U == nil || t.V == nil {
		return ErrShape
	}
	_, uc := t.U.Dims()
	_, vc := t.V.Dims()
	if uc != len(t.S) || vc != len(t.S) {
		return fmt.Errorf("U has %d, V has %d, S has %d components: %w", uc, vc, len(t.S), ErrShape)
	}
	return nil
}

func dims(a mat.Matrix) (m, n int, err error) {
	if a == nil {
		return 0, 0, ErrEmpty
	}
	m, n = a.Dims()
	if m == 0 || n == 0 {
		return 0, 0, ErrEmpty
	}
	return m, n, nil
}

// Dense computes the thin SVD of a: U is m×p, V is n×p with p = min(m, n).
// Singular values are returned in descending order.
func Dense(a mat.Matrix) (*Triple, error) {
	if _, _, err := dims(a); err != nil {
		return nil, fmt.Errorf("svd.Dense: %w", err)
	}

	var f mat.SVD
	if ok := f.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("svd.Dense: %w", ErrNoConvergence)
	}
	var u, v mat.Dense
	f.UTo(&u)
	f.VTo(&v)

	return &Triple{U: &u, S: f.Values(nil), V: &v}, nil
}

// Truncated computes the k largest singular triplets of a.
//
// The right (tall input) or left (wide input) singular vectors are the
// eigenvectors of the smaller Gram matrix, the other side is recovered as
// A·v/σ (resp. Aᵀ·u/σ). Triplets whose singular value is numerically zero get
// a zero partner vector.
//
// The result is in ASCENDING order of singular value; pass it through
// Descending before use.
func Truncated(a mat.Matrix, k int) (*Triple, error) {
	m, n, err := dims(a)
	if err != nil {
		return nil, fmt.Errorf("svd.Truncated: %w", err)
	}
	p := min(m, n)
	if k < 1 || k > p {
		return nil, fmt.Errorf("svd.Truncated: k=%d outside [1,%d]: %w", k, p, ErrRank)
	}

	tall := m >= n
	gram := mat.NewSymDense(p, nil)
	if tall {
		gram.SymOuterK(1, a.T()) // AᵀA, n×n
	} else {
		gram.SymOuterK(1, a) // AAᵀ, m×m
	}

	var es mat.EigenSym
	if ok := es.Factorize(gram, true); !ok {
		return nil, fmt.Errorf("svd.Truncated: %w", ErrNoConvergence)
	}
	vals := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Keep the k largest eigenpairs; they sit at the tail of the ascending order.
	lo := p - k
	s := make([]float64, k)
	basis := mat.NewDense(p, k, nil)
	for j := 0; j < k; j++ {
		s[j] = math.Sqrt(math.Max(vals[lo+j], 0))
		basis.SetCol(j, mat.Col(nil, lo+j, &vecs))
	}

	var partner mat.Dense
	if tall {
		partner.Mul(a, basis)
	} else {
		partner.Mul(a.T(), basis)
	}
	cutoff := nullRel * floats.Max(s)
	rows, _ := partner.Dims()
	col := make([]float64, rows)
	for j := 0; j < k; j++ {
		mat.Col(col, j, &partner)
		if s[j] > cutoff {
			floats.Scale(1/s[j], col)
		} else {
			floats.Scale(0, col)
		}
		partner.SetCol(j, col)
	}

	if tall {
		return &Triple{U: &partner, S: s, V: basis}, nil
	}
	return &Triple{U: basis, S: s, V: &partner}, nil
}
