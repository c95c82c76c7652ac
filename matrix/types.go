// SPDX-License-Identifier: MIT

// Package matrix: domain types for the coordinate-keyed sparse matrix.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Coord identifies one cell by zero-based row and column.
// It is comparable and used directly as the storage key.
type Coord struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// Less reports whether c precedes o in row-major order
// (ascending row, then ascending column).
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// Entry is one stored nonzero cell.
type Entry struct {
	Coord
	Value int64 // never 0 for entries produced by this package
}

// Sparse is a rows×cols integer matrix that stores only nonzero cells.
//
// Invariants:
//   - no value in data equals 0; an absent Coord reads as 0;
//   - every stored Coord lies in [0,rows)×[0,cols).
//
// The zero value is a usable 0×0 matrix. A Sparse is not safe for
// concurrent mutation; arithmetic treats operands as read-only.
type Sparse struct {
	r, c int             // declared number of rows and columns
	data map[Coord]int64 // nonzero cells only
}
