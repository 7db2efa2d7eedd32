// SPDX-License-Identifier: MIT
// Package mca: construction options.
//
// Purpose:
//   - Functional options over package defaults; last writer wins.
//   - Values are checked once, in New, so that no option can fail silently.

package mca

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultBenzecri enables the Benzécri eigenvalue correction.
	DefaultBenzecri = true

	// DefaultTolerance is the eigenvalue below which factors are cut off.
	DefaultTolerance = 1e-4

	// DefaultPercent is the share of retained inertia the percent rule aims for.
	DefaultPercent = 0.9
)

// Option mutates Options during construction.
type Option func(*Options)

// Options holds the resolved engine configuration.
type Options struct {
	ncols       int  // K supplied by the caller
	ncolsSet    bool // whether WithNCols was used; only this caps truncation
	vars        int  // K derived from encoded columns (NewFromFrame)
	varsSet     bool
	benzecri    bool
	tol         float64
	sparse      bool
	approximate bool
	log         zerolog.Logger
}

// WithNCols declares K, the number of categorical variables the (already
// encoded) input was built from. It must satisfy 0 < k ≤ number of columns.
func WithNCols(k int) Option {
	return func(o *Options) {
		o.ncols = k
		o.ncolsSet = true
	}
}

// withVariables sets K from the variables NewFromFrame encoded. Unlike
// WithNCols it does not limit the truncated component count.
func withVariables(k int) Option {
	return func(o *Options) {
		o.vars = k
		o.varsSet = true
	}
}

// WithBenzecri toggles the Benzécri eigenvalue correction.
func WithBenzecri(on bool) Option {
	return func(o *Options) { o.benzecri = on }
}

// WithTolerance sets the rank cut-off threshold (finite, ≥ 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithSparse selects the truncated decomposition.
func WithSparse() Option {
	return func(o *Options) { o.sparse = true }
}

// WithApproximate is reserved for an approximate truncation strategy. It is
// recorded and logged but does not change results.
func WithApproximate() Option {
	return func(o *Options) { o.approximate = true }
}

// WithLogger attaches a logger; construction facts are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.log = l }
}

// gatherOptions applies user options over package defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		benzecri: DefaultBenzecri,
		tol:      DefaultTolerance,
		log:      zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate checks the option values that do not depend on the input.
func (o Options) validate() error {
	if math.IsNaN(o.tol) || math.IsInf(o.tol, 0) || o.tol < 0 {
		return fmt.Errorf("tolerance %v: %w", o.tol, ErrInvalidInput)
	}
	if o.ncolsSet && o.ncols <= 0 {
		return fmt.Errorf("ncols %d must be positive: %w", o.ncols, ErrInvalidInput)
	}
	if o.varsSet && o.vars <= 0 {
		return fmt.Errorf("variables %d must be positive: %w", o.vars, ErrInvalidInput)
	}
	return nil
}
