// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the reductions needed by correspondence-style analyses:
//     grand total, row/column marginals, squared row norms.
//   - Keep tight loops centralized; Dense fast-paths avoid At.
//
// Exposed API (see api.go):
//   - Sum(X)        -> Σ_ij X[i,j]
//   - RowSums(X)    -> r[i] = Σ_j X[i,j]
//   - ColSums(X)    -> c[j] = Σ_i X[i,j]
//   - RowNormsSq(X) -> d[i] = Σ_j X[i,j]²
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.

package matrix

// Operation name constants for unified error wrapping.
const (
	opSum        = "Sum"
	opRowSums    = "RowSums"
	opColSums    = "ColSums"
	opRowNormsSq = "RowNormsSq"
)

// reduceRows folds every row of X with f(acc, v) into out[i].
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Dense fast-path on the flat buffer; At fallback otherwise.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func reduceRows(tag string, X Matrix, f func(acc, v float64) float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, r)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out[i] = f(out[i], d.data[base+j])
			}
		}
		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out[i] = f(out[i], v)
		}
	}

	return out, nil
}

func add(acc, v float64) float64 { return acc + v }

func addSq(acc, v float64) float64 { return acc + v*v }

// rowSums returns r[i] = Σ_j X[i,j].
func rowSums(X Matrix) ([]float64, error) { return reduceRows(opRowSums, X, add) }

// rowNormsSq returns d[i] = Σ_j X[i,j]² (squared Euclidean norm of each row).
func rowNormsSq(X Matrix) ([]float64, error) { return reduceRows(opRowNormsSq, X, addSq) }

// colSums returns c[j] = Σ_i X[i,j].
// Complexity: Time O(r*c), Space O(c).
func colSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out[j] += d.data[base+j]
			}
		}
		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// sum returns the grand total Σ_ij X[i,j].
// Complexity: Time O(r*c), Space O(r).
func sum(X Matrix) (float64, error) {
	rs, err := reduceRows(opSum, X, add)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range rs {
		total += v
	}

	return total, nil
}
