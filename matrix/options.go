// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Parse / ReadFile.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - NewOptions helper that applies them over the defaults.
//
// Triples are always applied in source order with Set semantics: a zero
// value is never stored and clears an earlier cell at the same coordinate.
// The options below only decide what counts as an error.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictBounds rejects triples outside the declared shape.
	DefaultStrictBounds = true

	// DefaultRejectDuplicates keeps last-write-wins for repeated coordinates.
	DefaultRejectDuplicates = false
)

// Options holds the resolved parser configuration. Fields are unexported;
// build values with NewOptions and WithX.
type Options struct {
	strictBounds     bool // true: out-of-shape triple is a FormatError; false: skipped
	rejectDuplicates bool // true: repeated coordinate is a FormatError
}

// Option mutates Options.
type Option func(*Options)

// WithStrictBounds toggles rejection of triples outside the declared
// rows/cols. When off, such triples are skipped, never stored.
func WithStrictBounds(on bool) Option {
	return func(o *Options) { o.strictBounds = on }
}

// WithRejectDuplicates toggles rejection of a coordinate that appears more
// than once in the source.
func WithRejectDuplicates(on bool) Option {
	return func(o *Options) { o.rejectDuplicates = on }
}

// NewOptions applies opts over the defaults. Nil options are ignored.
func NewOptions(opts ...Option) Options {
	o := Options{
		strictBounds:     DefaultStrictBounds,
		rejectDuplicates: DefaultRejectDuplicates,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// StrictBounds reports the resolved bounds policy.
func (o Options) StrictBounds() bool { return o.strictBounds }

// RejectDuplicates reports the resolved duplicate policy.
func (o Options) RejectDuplicates() bool { return o.rejectDuplicates }
