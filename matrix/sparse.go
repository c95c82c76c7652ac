// SPDX-License-Identifier: MIT

// Package matrix: Sparse storage, element access and bookkeeping.
// Sparse keeps nonzero cells in a map keyed by Coord, so element access is
// O(1) and memory is O(nnz) regardless of the declared shape.
package matrix

import (
	"maps"
	"sort"
	"strings"
)

// NewSparse creates an empty rows×cols Sparse.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Finalize): return the empty matrix or a wrapped ErrBadShape.
// Complexity: O(1).
func NewSparse(rows, cols int) (*Sparse, error) {
	// Validate dimensions; 0×n and n×0 are legal empty shapes.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, sparseErrorf("New", rows, cols, err)
	}

	return newSparse(rows, cols, 0), nil
}

// newSparse allocates without validation; callers guarantee the shape.
func newSparse(rows, cols, hint int) *Sparse {
	return &Sparse{r: rows, c: cols, data: make(map[Coord]int64, hint)}
}

// Rows returns the declared number of rows.
// Complexity: O(1).
func (m *Sparse) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the declared number of columns.
// Complexity: O(1).
func (m *Sparse) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Dims returns rows and columns, mirroring gonum's mat.Matrix.Dims.
func (m *Sparse) Dims() (rows, cols int) { return m.Rows(), m.Cols() }

// NNZ returns the number of stored nonzero cells.
// Complexity: O(1).
func (m *Sparse) NNZ() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// At returns the value at (row, col).
// At is total: cells never set, and coordinates outside the declared
// shape, read as 0. A nil receiver reads as the empty matrix.
// Complexity: O(1).
func (m *Sparse) At(row, col int) int64 {
	if m == nil {
		return 0
	}

	return m.data[Coord{Row: row, Col: col}] // missing key yields 0
}

// Set assigns v at (row, col). Setting 0 removes the cell, so the sparsity
// invariant holds after every call.
// Stage 1 (Validate): nil receiver and bounds.
// Stage 2 (Execute): insert, overwrite or delete.
// Complexity: O(1).
func (m *Sparse) Set(row, col int, v int64) error {
	if m == nil {
		return sparseErrorf("Set", row, col, ErrNilMatrix)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return sparseErrorf("Set", row, col, err)
	}
	m.put(Coord{Row: row, Col: col}, v)

	return nil
}

// put stores v at k without bounds checks, deleting k when v is zero.
func (m *Sparse) put(k Coord, v int64) {
	if v == 0 {
		delete(m.data, k)
		return
	}
	if m.data == nil {
		m.data = make(map[Coord]int64)
	}
	m.data[k] = v
}

// Entries returns every stored cell sorted in row-major order.
// The slice is freshly allocated; mutating it does not affect m.
// Complexity: O(nnz log nnz).
func (m *Sparse) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Coord: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Coord.Less(out[j].Coord) })

	return out
}

// Range calls fn for every stored cell in row-major order until fn
// returns false.
func (m *Sparse) Range(fn func(Entry) bool) {
	for _, e := range m.Entries() {
		if !fn(e) {
			return
		}
	}
}

// Clone returns a deep copy of m. A nil receiver clones to nil.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	if m == nil {
		return nil
	}
	out := &Sparse{r: m.r, c: m.c, data: maps.Clone(m.data)}
	if out.data == nil {
		out.data = make(map[Coord]int64)
	}

	return out
}

// Equal reports whether m and o have the same shape and the same nonzero
// cells. Two nil matrices are equal.
// Complexity: O(nnz).
func (m *Sparse) Equal(o *Sparse) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return maps.Equal(m.data, o.data)
}

// String implements fmt.Stringer using the serialized text format.
func (m *Sparse) String() string {
	var b strings.Builder
	_ = m.Encode(&b) // strings.Builder never fails

	return b.String()
}
