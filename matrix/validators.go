// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for nil/shape/index checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// All checks are pure, deterministic and O(1).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape: %dx%d", rows, cols), ErrBadShape)
	}

	return nil
}

// ValidateIndex ensures (row, col) lies inside m's declared shape.
// Assumes m is not nil (caller must ensure).
func ValidateIndex(m *Sparse, row, col int) error {
	if row < 0 || row >= m.r {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: row %d of %d", row, m.r), ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: col %d of %d", col, m.c), ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions (Add/Sub).
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b *Sparse) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures a.Cols() == b.Rows() (Mul).
// Assumes a and b are not nil (caller must ensure).
func ValidateMulShape(a, b *Sparse) error {
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulShape: %dx%d by %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}
