// SPDX-License-Identifier: MIT

package mca

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mca/dataset"
	"github.com/katalvlaran/mca/dummy"
	"github.com/katalvlaran/mca/matrix"
)

const (
	opNew         = "mca.New"
	opNewFrame    = "mca.NewFromFrame"
	opParseCount  = "mca.ParseCount"
	opCorrespond  = "mca.correspondence"
	opDecompose   = "mca.decompose"
	opEigenvalues = "mca.eigenvalues"
)

// ParseCount converts a textual positive count (ncols, number of factors) as
// received from a command line or a JSON document.
// An empty string, zero, a negative or non-integer value is ErrInvalidInput.
func ParseCount(name, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s: %s is empty: %w", opParseCount, name, ErrInvalidInput)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: %s=%q is not a positive integer: %w", opParseCount, name, s, ErrInvalidInput)
	}
	return n, nil
}

// processInput resolves (X, K, J) for a ready numeric matrix.
//
// Implementation:
//   - Stage 1: reject nil and column-less inputs.
//   - Stage 2: K = ncols when given (0 < K ≤ cols), else the column count;
//     encoded variables from NewFromFrame take precedence.
//   - Stage 3: take a private copy and reject non-finite or negative cells.
//
// The caller's matrix is never retained nor mutated.
func processInput(X matrix.Matrix, o Options) (*matrix.Dense, int, int, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	cols := X.Cols()
	if cols == 0 || X.Rows() == 0 {
		return nil, 0, 0, fmt.Errorf("input has no columns or rows: %w", ErrInvalidInput)
	}

	k := cols
	if o.ncolsSet {
		if o.ncols <= 0 || o.ncols > cols {
			return nil, 0, 0, fmt.Errorf("ncols %d outside [1,%d]: %w", o.ncols, cols, ErrInvalidInput)
		}
		k = o.ncols
	}
	if o.varsSet {
		if o.vars > cols {
			return nil, 0, 0, fmt.Errorf("%d variables for %d columns: %w", o.vars, cols, ErrInvalidInput)
		}
		k = o.vars
	}

	x, err := matrix.DenseOf(X)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err = matrix.ValidateFinite(x); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for i, row := range x.ToRows() {
		for j, v := range row {
			if v < 0 {
				return nil, 0, 0, fmt.Errorf("negative cell (%d,%d)=%v: %w", i, j, v, ErrInvalidInput)
			}
		}
	}

	return x, k, cols, nil
}

// NewFromFrame runs the analysis on a table of records.
//
// When cols is non-empty those variables are indicator-encoded with
// dummy.Encode and K = len(cols), overriding any WithNCols for K. An explicit
// WithNCols still caps the truncated component count. Otherwise every
// cell must be numeric and the frame is analysed as New would.
//
// Row labels come from the frame index, column labels from the indicator
// labels ("variable:value") or the frame header.
func NewFromFrame(f *dataset.Frame, cols []string, opts ...Option) (*MCA, error) {
	if f == nil {
		return nil, mcaErrorf(opNewFrame, ErrInvalidInput)
	}

	var (
		X      matrix.Matrix
		labels []string
	)
	if len(cols) > 0 {
		ind, err := dummy.Encode(f, cols)
		if err != nil {
			return nil, mcaErrorf(opNewFrame, fmt.Errorf("%w: %w", ErrInvalidInput, err))
		}
		X, labels = ind.Dense, ind.Labels
		opts = append(opts[:len(opts):len(opts)], withVariables(len(cols)))
	} else {
		num, err := f.Numeric()
		if err != nil {
			return nil, mcaErrorf(opNewFrame, fmt.Errorf("%w: %w", ErrInvalidInput, err))
		}
		X, labels = num, f.Header
	}

	m, err := New(X, opts...)
	if err != nil {
		// New already tags its errors.
		return nil, err
	}
	m.colLabels = append([]string(nil), labels...)
	if f.Index != nil {
		m.rowLabels = append([]string(nil), f.Index...)
	}
	return m, nil
}
