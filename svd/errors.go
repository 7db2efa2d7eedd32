// SPDX-License-Identifier: MIT

package svd

import "errors"

var (
	// ErrEmpty indicates a nil or zero-sized input matrix.
	ErrEmpty = errors.New("svd: empty matrix")

	// ErrRank indicates a truncation rank outside [1, min(m, n)].
	ErrRank = errors.New("svd: invalid truncation rank")

	// ErrNoConvergence indicates that the factorization did not converge.
	ErrNoConvergence = errors.New("svd: factorization did not converge")

	// ErrShape indicates that a Triple's blocks disagree on the number of components.
	ErrShape = errors.New("svd: inconsistent triple shape")
)
