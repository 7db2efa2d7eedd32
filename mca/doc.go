// Package mca implements Multiple Correspondence Analysis.
//
// An engine is fitted once from a non-negative indicator or count matrix X
// and then queried for projections and diagnostics:
//
//	Z   = X / ΣX                        correspondence matrix
//	r,c = row and column sums of Z      masses
//	A   = D_r·(Z − r·cᵀ)·D_c            D_r = diag(1/√r), D_c = diag(1/√c)
//	A   = P·diag(s)·Vᵀ                  singular value decomposition
//	E   = Benzécri(s) or s²             eigenvalues, cut at TOL → rank, L
//	F   = D_r·P·diag(σ)                 row factor scores
//	G   = D_c·V·diag(σ)                 column factor scores
//
// with σ = −√L under the Benzécri correction and σ = s otherwise. The
// negative root is a fixed sign convention: scores are only defined up to a
// per-factor sign, and the engine additionally orients every singular pair
// (see svd.Orient) so that results are reproducible across decomposition
// modes.
//
// Factor counts: every query takes n, where n == 0 means "not given". Scores
// and contributions then fall back to the percent rule (smallest prefix of L
// reaching percent·ΣL), the other queries to the rank. n < 0 is
// ErrInvalidInput; n above the rank is capped.
//
// Diagnostics:
//   - RowCos2/ColCos2: squared cosines F²/dr (G²/dc), dr the squared distance
//     of each row to the origin over all rank factors.
//   - RowContributions/ColContributions: r·F²/L (c·G²/L); every factor's
//     contributions sum to one.
//   - ExplainedVariance: E/ΣE, or Benzécri eigenvalues over Greenacre's
//     adjusted inertia.
//   - SupRowScores/SupColScores: supplementary points through the
//     transition formulas.
//
// F, G and their distances are computed lazily and cached. An engine is not
// safe for concurrent use.
//
// Sentinel errors: ErrInvalidInput, ErrNumericDegeneracy,
// ErrDimensionMismatch; all wrapped with an operation tag, match with
// errors.Is.
package mca
