// Package matrix provides a small, deterministic dense linear-algebra toolkit.
//
// The matrix package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy (NewDense, NewFromRows).
//   - Kernels: Mul, Transpose, Scale, Sub, Hadamard, Outer.
//   - Diagonal scaling without materializing the diagonal: ScaleRows (diag(d)·X)
//     and ScaleCols (X·diag(d)).
//   - Reductions: Sum, RowSums, ColSums, RowNormsSq.
//   - A copy-only bridge to gonum (ToGonum, FromGonum) for factorizations.
//
// Every function returns fresh results and never mutates its operands.
// Errors are package sentinels (see errors.go) wrapped with the operation
// name; match them with errors.Is.
package matrix
