// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper that applies them in order.
//
// Options are read once by New. Matrices derived from an existing one
// (Transpose, Mul, CellMap, ...) inherit its policy.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRows is the row count of the identity built from an empty table.
	DefaultRows = 3

	// DefaultCols is the column count of the identity built from an empty table.
	DefaultCols = 3

	// DefaultValidateNaNInf rejects NaN and ±Inf cells.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the absolute per-cell tolerance used by AllClose.
	DefaultEpsilon = 1e-9
)

const (
	panicShapeInvalid   = "matrix: WithShape: rows and cols must be > 0"
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options carries the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	rows, cols     int
	validateNaNInf bool
	eps            float64
}

func defaultOptions() Options {
	return Options{
		rows:           DefaultRows,
		cols:           DefaultCols,
		validateNaNInf: DefaultValidateNaNInf,
		eps:            DefaultEpsilon,
	}
}

// WithShape sets the shape of the identity built when New gets an empty table.
// Non-square shapes get ones where i == j. Panics unless rows, cols > 0.
func WithShape(rows, cols int) Option {
	if rows <= 0 || cols <= 0 {
		panic(panicShapeInvalid)
	}
	return func(o *Options) { o.rows, o.cols = rows, cols }
}

// WithValidateNaNInf enables finite-only ingestion (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf through. The flag propagates to
// every matrix derived from the one built with it.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithEpsilon sets the tolerance used by AllClose.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
