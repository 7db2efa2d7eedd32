// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Descending returns a copy of t whose singular values are sorted from
// largest to smallest, with the columns of U and V permuted alongside.
//
// Truncated solvers report ascending order while full SVDs report descending
// order; every consumer downstream assumes descending. An ascending input is
// simply reversed, an already descending input is copied unchanged.
func Descending(t *Triple) (*Triple, error) {
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("svd.Descending: %w", err)
	}
	k := len(t.S)
	perm := make([]int, k)
	for j := range perm {
		perm[j] = k - 1 - j // reversal is the common case (ascending input)
	}
	if t.IsDescending() {
		for j := range perm {
			perm[j] = j
		}
	} else {
		sort.SliceStable(perm, func(a, b int) bool { return t.S[perm[a]] > t.S[perm[b]] })
	}

	return permute(t, perm), nil
}

// Orient returns a copy of t where each singular pair (u_j, v_j) is flipped
// so that the largest-magnitude entry of v_j is positive.
//
// The decomposition is unchanged; only the arbitrary sign is fixed. When
// several entries of v_j share the largest magnitude (indicator tables often
// do) the first one decides, and rounding differences between solvers can
// pick a different "first". Dense and truncated results therefore agree up to
// the sign of such factors, and the orientation need not match published
// tables.
func Orient(t *Triple) (*Triple, error) {
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("svd.Orient: %w", err)
	}
	out := permute(t, identity(len(t.S)))
	ur, _ := out.U.Dims()
	vr, _ := out.V.Dims()
	ucol := make([]float64, ur)
	vcol := make([]float64, vr)
	for j := range out.S {
		mat.Col(vcol, j, out.V)
		best := 0
		for i := 1; i < vr; i++ {
			if math.Abs(vcol[i]) > math.Abs(vcol[best]) {
				best = i
			}
		}
		if vcol[best] >= 0 {
			continue
		}
		mat.Col(ucol, j, out.U)
		for i := range ucol {
			ucol[i] = -ucol[i]
		}
		for i := range vcol {
			vcol[i] = -vcol[i]
		}
		out.U.SetCol(j, ucol)
		out.V.SetCol(j, vcol)
	}

	return out, nil
}

func identity(k int) []int {
	perm := make([]int, k)
	for j := range perm {
		perm[j] = j
	}
	return perm
}

// permute builds a fresh Triple whose j-th component is t's perm[j]-th.
func permute(t *Triple, perm []int) *Triple {
	ur, _ := t.U.Dims()
	vr, _ := t.V.Dims()
	k := len(perm)
	out := &Triple{
		U: mat.NewDense(ur, k, nil),
		S: make([]float64, k),
		V: mat.NewDense(vr, k, nil),
	}
	for j, src := range perm {
		out.S[j] = t.S[src]
		out.U.SetCol(j, mat.Col(nil, src, t.U))
		out.V.SetCol(j, mat.Col(nil, src, t.V))
	}
	return out
}
