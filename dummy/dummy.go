// SPDX-License-Identifier: MIT

// Package dummy turns categorical columns of a dataset.Frame into a 0/1
// indicator (complete disjunctive) matrix.
//
// For every selected variable one column is emitted per observed value, values
// sorted lexicographically within the variable; variables appear in the order
// they were requested. Each row therefore holds exactly one 1 per variable,
// so row sums equal the number of encoded variables.
package dummy

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mca/dataset"
	"github.com/katalvlaran/mca/matrix"
)

// ErrUnknownColumn is returned when a requested variable is not in the frame.
var ErrUnknownColumn = dataset.ErrUnknownColumn

// LabelSep joins a variable name and a value in column labels.
const LabelSep = ":"

// Group is the span [Start, End) of indicator columns produced by Variable.
type Group struct {
	Variable string   `json:"variable" yaml:"variable"`
	Start    int      `json:"start" yaml:"start"`
	End      int      `json:"end" yaml:"end"`
	Values   []string `json:"values" yaml:"values"`
}

// Indicator is an encoded matrix together with its column bookkeeping.
// It embeds *matrix.Dense and therefore satisfies matrix.Matrix.
type Indicator struct {
	*matrix.Dense
	Labels []string
	Groups []Group
}

// Variables returns the number of encoded variables (K for the engine).
func (ind *Indicator) Variables() int { return len(ind.Groups) }

// Encode dummy-codes cols of f. An empty cols encodes every column.
//
// Implementation:
//   - Stage 1: resolve each variable's column and its sorted distinct values.
//   - Stage 2: lay out the groups contiguously and fill the 1s.
//
// Errors:
//   - ErrUnknownColumn for a name missing from the header.
//   - matrix.ErrInvalidDimensions when the frame has no rows.
//
// Complexity:
//   - Time O(n·(K + J)), Space O(n·J) for n rows, K variables, J categories.
func Encode(f *dataset.Frame, cols []string) (*Indicator, error) {
	if len(cols) == 0 {
		cols = f.Header
	}

	groups := make([]Group, len(cols))
	cells := make([][]string, len(cols))
	width := 0
	for k, name := range cols {
		col, err := f.Column(name)
		if err != nil {
			return nil, fmt.Errorf("dummy.Encode: %w", err)
		}
		cells[k] = col
		values := distinct(col)
		groups[k] = Group{Variable: name, Start: width, End: width + len(values), Values: values}
		width += len(values)
	}

	out, err := matrix.NewDense(f.Rows(), width)
	if err != nil {
		return nil, fmt.Errorf("dummy.Encode: %d rows: %w", f.Rows(), err)
	}
	labels := make([]string, 0, width)
	for k, g := range groups {
		pos := make(map[string]int, len(g.Values))
		for off, v := range g.Values {
			pos[v] = g.Start + off
			labels = append(labels, g.Variable+LabelSep+v)
		}
		for i, v := range cells[k] {
			if err = out.Set(i, pos[v], 1); err != nil {
				return nil, fmt.Errorf("dummy.Encode: %w", err)
			}
		}
	}

	return &Indicator{Dense: out, Labels: labels, Groups: groups}, nil
}

func distinct(col []string) []string {
	seen := make(map[string]struct{}, len(col))
	var out []string
	for _, v := range col {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
