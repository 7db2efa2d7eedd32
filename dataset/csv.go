// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// DefaultComma is the field delimiter used when none is configured.
	DefaultComma = ','
)

// Option configures ReadCSV.
type Option func(*readOptions)

type readOptions struct {
	comma    rune
	skipRows int
	indexCol bool
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *readOptions) { o.comma = r }
}

// WithSkipRows discards the first n lines before the header (title lines).
func WithSkipRows(n int) Option {
	return func(o *readOptions) {
		if n > 0 {
			o.skipRows = n
		}
	}
}

// WithIndexColumn treats the first column as row labels rather than data.
func WithIndexColumn() Option {
	return func(o *readOptions) { o.indexCol = true }
}

// ReadCSV reads a header line followed by records.
//
// Implementation:
//   - Stage 1: skip the configured number of leading lines.
//   - Stage 2: read all records with encoding/csv (fixed width enforced by
//     the reader; a short or long record is ErrRagged).
//   - Stage 3: split off the index column when requested and build the Frame.
//
// Header names and cells are trimmed of surrounding blanks.
func ReadCSV(r io.Reader, opts ...Option) (*Frame, error) {
	o := readOptions{comma: DefaultComma}
	for _, fn := range opts {
		fn(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // checked below so that skipped title lines may differ

	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	if len(all) <= o.skipRows {
		return nil, fmt.Errorf("ReadCSV: %w", ErrEmpty)
	}
	all = all[o.skipRows:]
	header := trimAll(all[0])
	body := all[1:]

	var index []string
	if o.indexCol {
		if len(header) < 2 {
			return nil, fmt.Errorf("ReadCSV: index column leaves no data: %w", ErrEmpty)
		}
		header = header[1:]
		index = make([]string, len(body))
	}
	records := make([][]string, len(body))
	for i, rec := range body {
		rec = trimAll(rec)
		if o.indexCol {
			if len(rec) == 0 {
				return nil, fmt.Errorf("ReadCSV: record %d: %w", i, ErrRagged)
			}
			index[i], rec = rec[0], rec[1:]
		}
		records[i] = rec
	}

	f, err := NewFrame(header, records, index)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	return f, nil
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string, opts ...Option) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadCSVFile: %w", err)
	}
	f, err := ReadCSV(fh, opts...)
	if cerr := fh.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("ReadCSVFile: %w", cerr)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadCSVFile %s: %w", path, err)
	}
	return f, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
