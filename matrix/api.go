// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Public facade over the private kernels (ew*, reductions).
//   - Keep exported names short and stable; implementations live in impl_*.go
//     and ops_elementwise.go.

package matrix

// ---------- Diagonal scaling ----------

// ScaleRows returns diag(scale)·X: every row i multiplied by scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows).
// Time: O(r*c). Space: O(r*c).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) { return ewScaleRows(X, scale) }

// ScaleCols returns X·diag(scale): every column j multiplied by scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols).
// Time: O(r*c). Space: O(r*c).
func ScaleCols(X Matrix, scale []float64) (*Dense, error) { return ewScaleCols(X, scale) }

// Square returns X∘X (element-wise square).
func Square(X Matrix) (Matrix, error) { return Hadamard(X, X) }

// ---------- Reductions ----------

// Sum returns the grand total of all elements.
func Sum(X Matrix) (float64, error) { return sum(X) }

// RowSums returns vector r where r[i] = sum_j X[i,j].
func RowSums(X Matrix) ([]float64, error) { return rowSums(X) }

// ColSums returns vector c where c[j] = sum_i X[i,j].
func ColSums(X Matrix) ([]float64, error) { return colSums(X) }

// RowNormsSq returns d[i] = sum_j X[i,j]², the squared distance of row i to the origin.
func RowNormsSq(X Matrix) ([]float64, error) { return rowNormsSq(X) }

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
