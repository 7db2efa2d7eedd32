// SPDX-License-Identifier: MIT

package mca

// K returns the number of categorical variables.
func (m *MCA) K() int { return m.k }

// J returns the number of columns (categories) of the analysed matrix.
func (m *MCA) J() int { return m.j }

// Items returns the item count used to shape the scores: the number of rows
// in dense mode, the number of computed components in truncated mode.
func (m *MCA) Items() int { return m.items }

// Rank returns the number of retained factors.
func (m *MCA) Rank() int { return m.rank }

// Inertia returns ΣE.
func (m *MCA) Inertia() float64 { return m.inertia }

// Corrected reports whether the Benzécri correction is applied.
func (m *MCA) Corrected() bool { return m.corrected }

// Sparse reports whether the truncated decomposition was used.
func (m *MCA) Sparse() bool { return m.sparse }

// RowMasses returns r.
func (m *MCA) RowMasses() []float64 { return clone(m.r) }

// ColMasses returns c.
func (m *MCA) ColMasses() []float64 { return clone(m.c) }

// SingularValues returns s, in descending order.
func (m *MCA) SingularValues() []float64 { return clone(m.s) }

// Eigenvalues returns E (Benzécri-corrected or s²).
func (m *MCA) Eigenvalues() []float64 { return clone(m.e) }

// Retained returns L = E[:rank].
func (m *MCA) Retained() []float64 { return clone(m.e[:m.rank]) }

// RowLabels returns the row labels, nil when the input had none.
func (m *MCA) RowLabels() []string { return cloneStrings(m.rowLabels) }

// ColLabels returns the column labels, nil when the input had none.
func (m *MCA) ColLabels() []string { return cloneStrings(m.colLabels) }

func clone(v []float64) []float64 { return append([]float64(nil), v...) }

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v...)
}
