// Package svd provides the singular value decompositions used by the
// correspondence-analysis engine, on top of gonum.
//
// Two primitives are offered:
//
//   - Dense: the thin SVD of an m×n matrix (gonum mat.SVD). Singular values
//     come back in descending order.
//   - Truncated: the k largest singular triplets, obtained from the symmetric
//     eigen-decomposition of the smaller Gram matrix (AᵀA or AAᵀ). Like most
//     truncated/sparse solvers it reports the triplets in ASCENDING order.
//
// Callers normalize either result with Descending, the single place where
// ordering is fixed, and optionally with Orient, which fixes the sign of each
// singular pair.
//
// Errors:
//   - ErrEmpty:        nil or zero-sized input.
//   - ErrRank:         truncation rank outside [1, min(m, n)].
//   - ErrNoConvergence: the underlying LAPACK routine did not converge.
package svd
