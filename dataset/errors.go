// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmpty indicates a table without a header or without columns.
	ErrEmpty = errors.New("dataset: empty table")

	// ErrRagged indicates a record whose width differs from the header.
	ErrRagged = errors.New("dataset: ragged record")

	// ErrUnknownColumn indicates a column name absent from the header.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrDuplicateColumn indicates a header that names the same column twice.
	ErrDuplicateColumn = errors.New("dataset: duplicate column")

	// ErrNotNumeric indicates a cell that does not parse as a float64.
	ErrNotNumeric = errors.New("dataset: value is not numeric")
)
