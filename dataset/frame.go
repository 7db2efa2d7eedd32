// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mca/matrix"
)

// Frame is a rectangular table of string cells with named columns and
// optional row labels.
//
// Invariants:
//   - len(Header) ≥ 1 and names are unique.
//   - every record has len(Header) cells.
//   - Index is nil or has one label per record.
type Frame struct {
	Index   []string
	Header  []string
	Records [][]string
}

// NewFrame validates and copies header, records and index into a Frame.
// Pass a nil index when rows are unlabeled.
func NewFrame(header []string, records [][]string, index []string) (*Frame, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("NewFrame: %w", ErrEmpty)
	}
	seen := make(map[string]struct{}, len(header))
	for _, h := range header {
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("NewFrame: %q: %w", h, ErrDuplicateColumn)
		}
		seen[h] = struct{}{}
	}
	if index != nil && len(index) != len(records) {
		return nil, fmt.Errorf("NewFrame: %d labels for %d records: %w", len(index), len(records), ErrRagged)
	}

	f := &Frame{
		Header:  append([]string(nil), header...),
		Records: make([][]string, len(records)),
	}
	if index != nil {
		f.Index = append([]string(nil), index...)
	}
	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("NewFrame: record %d has %d cells, want %d: %w", i, len(rec), len(header), ErrRagged)
		}
		f.Records[i] = append([]string(nil), rec...)
	}

	return f, nil
}

// Rows returns the number of records.
func (f *Frame) Rows() int { return len(f.Records) }

// Cols returns the number of columns.
func (f *Frame) Cols() int { return len(f.Header) }

// ColumnIndex returns the position of name in the header.
func (f *Frame) ColumnIndex(name string) (int, error) {
	for j, h := range f.Header {
		if h == name {
			return j, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
}

// Column returns a copy of the cells of column name, in row order.
func (f *Frame) Column(name string) ([]string, error) {
	j, err := f.ColumnIndex(name)
	if err != nil {
		return nil, fmt.Errorf("Column: %w", err)
	}
	out := make([]string, len(f.Records))
	for i, rec := range f.Records {
		out[i] = rec[j]
	}
	return out, nil
}

// Select returns a new frame holding only cols, in the given order.
func (f *Frame) Select(cols ...string) (*Frame, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("Select: %w", ErrEmpty)
	}
	idx := make([]int, len(cols))
	for k, name := range cols {
		j, err := f.ColumnIndex(name)
		if err != nil {
			return nil, fmt.Errorf("Select: %w", err)
		}
		idx[k] = j
	}
	return f.project(cols, idx)
}

// Drop returns a new frame without cols. Dropping every column is an error.
func (f *Frame) Drop(cols ...string) (*Frame, error) {
	drop := make(map[int]struct{}, len(cols))
	for _, name := range cols {
		j, err := f.ColumnIndex(name)
		if err != nil {
			return nil, fmt.Errorf("Drop: %w", err)
		}
		drop[j] = struct{}{}
	}
	var keep []string
	var idx []int
	for j, h := range f.Header {
		if _, ok := drop[j]; !ok {
			keep = append(keep, h)
			idx = append(idx, j)
		}
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("Drop: %w", ErrEmpty)
	}
	return f.project(keep, idx)
}

func (f *Frame) project(header []string, idx []int) (*Frame, error) {
	records := make([][]string, len(f.Records))
	for i, rec := range f.Records {
		row := make([]string, len(idx))
		for k, j := range idx {
			row[k] = rec[j]
		}
		records[i] = row
	}
	return NewFrame(header, records, f.Index)
}

// Numeric parses every cell as a float64 and returns the Rows×Cols matrix.
// Surrounding blanks are ignored.
//
// Errors:
//   - ErrEmpty when the frame has no records.
//   - ErrNotNumeric naming the first offending cell.
func (f *Frame) Numeric() (*matrix.Dense, error) {
	if len(f.Records) == 0 {
		return nil, fmt.Errorf("Numeric: %w", ErrEmpty)
	}
	rows := make([][]float64, len(f.Records))
	for i, rec := range f.Records {
		rows[i] = make([]float64, len(rec))
		for j, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("Numeric: row %d column %q value %q: %w", i, f.Header[j], cell, ErrNotNumeric)
			}
			rows[i][j] = v
		}
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Numeric: %w", err)
	}
	return m, nil
}
