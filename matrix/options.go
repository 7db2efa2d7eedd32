// SPDX-License-Identifier: MIT
// Package matrix: ingestion options (numeric policy).
//
// Purpose:
//   - Single source of truth for the numeric policy applied when building a
//     Dense from caller data (NewFromRows).
//   - Functional options; last writer wins.

package matrix

// DefaultValidateNaNInf rejects NaN/±Inf at ingestion and in Set.
const DefaultValidateNaNInf = true

// Option mutates Options during construction.
type Option func(*Options)

// Options holds the resolved ingestion policy.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithNoValidateNaNInf disables the finite-only check. Use only for
// controlled ingestion where NaN carries meaning for the caller.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user options over package defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
