// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge between Dense and gonum's mat.Dense so that factorizations
//     (SVD, symmetric eigen) can run on gonum while the rest of the pipeline
//     stays on Dense.
//   - Conversions always copy; neither side aliases the other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
		return mat.NewDense(r, c, buf), nil
	}

	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			buf[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// Errors: ErrInvalidDimensions for empty inputs (gonum allows 0×0 receivers).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, err))
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out.data[base+j] = g.At(i, j)
		}
	}

	return out, nil
}
