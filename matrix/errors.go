// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations MUST return these sentinels (possibly wrapped with a call-site
// tag) and tests MUST check them via errors.Is. No operation panics on a
// user-triggered error condition.

package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap with fmt.Errorf("Op: %w", ErrX) so callers still match with errors.Is.

var (
	// ErrFormat marks a malformed serialized source. Every *FormatError
	// matches it.
	ErrFormat = errors.New("matrix: malformed matrix source")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// declared dimensions on a write path (Set, Parse, FromDense).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0),
	// or when a zero-sized shape is handed to gonum which refuses it.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonInteger signals a NaN, ±Inf or fractional value on import from
	// a float64 source.
	ErrNonInteger = errors.New("matrix: non-integer value")
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sparseErrorf wraps an underlying error with Sparse method and cell context.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// FormatError describes why a serialized source was rejected.
// errors.Is(err, ErrFormat) holds for every *FormatError; Unwrap exposes the
// underlying cause (a *strconv.NumError, ErrOutOfRange, ErrBadShape, ...).
type FormatError struct {
	Line   int    // 1-based line number; 0 when the source as a whole is at fault
	Text   string // offending line with line-ending whitespace trimmed
	Reason string // human-readable diagnostic
	Err    error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("matrix: format error")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Text != "" {
		fmt.Fprintf(&b, " %q", e.Text)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
