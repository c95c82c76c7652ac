// SPDX-License-Identifier: MIT

// Package matrix: bridges between Sparse and gonum's dense matrices.
// Values cross the boundary as float64; integers beyond ±2^53 lose
// precision in ToDense.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// int64 range as float64; 2^63 itself is not representable as int64.
const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

// MaxDenseCells caps rows*cols for ToDense (2 GiB of float64 backing).
const MaxDenseCells = 1 << 28

// ToDense materializes m as a gonum *mat.Dense.
// gonum rejects zero-length dimensions, so 0×n and n×0 return ErrBadShape.
// Shapes whose rows*cols overflows int or exceeds MaxDenseCells also
// return ErrBadShape; a sparse matrix may declare any shape it likes.
// Complexity: O(rows*cols) memory, O(nnz) writes.
func (m *Sparse) ToDense() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, sparseErrorf("ToDense", m.r, m.c, ErrBadShape)
	}
	if m.r > math.MaxInt/m.c || m.r*m.c > MaxDenseCells {
		return nil, sparseErrorf("ToDense", m.r, m.c, ErrBadShape)
	}
	d := mat.NewDense(m.r, m.c, nil)
	for k, v := range m.data {
		d.Set(k.Row, k.Col, float64(v))
	}

	return d, nil
}

// FromDense builds a Sparse from any gonum matrix, keeping only nonzero
// cells. Every value must be a finite integer in int64 range, otherwise
// ErrNonInteger is returned with the offending cell.
// Stage 1 (Validate): nil source.
// Stage 2 (Execute): *mat.Dense fast-path over raw rows, or At fallback.
// Complexity: O(rows*cols).
func FromDense(src mat.Matrix) (*Sparse, error) {
	if src == nil {
		return nil, matrixErrorf("FromDense", ErrNilMatrix)
	}
	r, c := src.Dims()
	m := newSparse(r, c, 0)

	// Dense fast-path: read each row slice directly.
	if d, ok := src.(*mat.Dense); ok {
		for i := 0; i < r; i++ {
			for j, v := range d.RawRowView(i) {
				if err := m.importCell(i, j, v); err != nil {
					return nil, err
				}
			}
		}
		return m, nil
	}

	// Generic fallback via At.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.importCell(i, j, src.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// importCell stores v at (i,j) after the integer check.
func (m *Sparse) importCell(i, j int, v float64) error {
	if v == 0 {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < minInt64Float || v >= maxInt64Float {
		return sparseErrorf("FromDense", i, j, ErrNonInteger)
	}
	m.data[Coord{Row: i, Col: j}] = int64(v)

	return nil
}
