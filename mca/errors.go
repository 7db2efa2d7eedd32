// SPDX-License-Identifier: MIT
// Package mca: sentinel error set.
//
// Every exported method returns one of these sentinels wrapped with its
// operation tag (mcaErrorf); callers match with errors.Is. Failures coming
// from the decomposition (svd.ErrNoConvergence, svd.ErrEmpty) are wrapped, not
// replaced, so they stay matchable too.

package mca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports malformed arguments: empty input, an out-of-range
	// column count K, a negative factor count, percent outside [0,1], negative
	// or non-finite cells.
	ErrInvalidInput = errors.New("mca: invalid input")

	// ErrNumericDegeneracy reports a computation that would divide by zero
	// outside the epsilon-guarded normalization (zero grand total, zero row
	// sum of a supplementary point, K == 1 under the Benzécri correction).
	ErrNumericDegeneracy = errors.New("mca: numeric degeneracy")

	// ErrDimensionMismatch reports supplementary data whose shape does not
	// line up with the active table.
	ErrDimensionMismatch = errors.New("mca: dimension mismatch")
)

// mcaErrorf wraps err with an operation tag, preserving it via %w.
func mcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
