// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Render a Sparse deterministically: one "(r, c, v)" triple per stored
//     cell in row-major order, optionally preceded by the rows=/cols= header.
//   - The triple syntax is accepted back by Parse (tokens are trimmed), so
//     Encode followed by Parse reproduces the matrix exactly.

package matrix

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// writeTriples writes every stored cell of m in row-major order.
func writeTriples(w *bufio.Writer, m *Sparse) error {
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(w, "(%d, %d, %d)\n", e.Row, e.Col, e.Value); err != nil {
			return err
		}
	}

	return nil
}

// Display writes the nonzero cells of m, one triple per line, sorted by
// ascending row then ascending column. m is not modified.
// Complexity: O(nnz log nnz).
func (m *Sparse) Display(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := writeTriples(bw, m); err != nil {
		return matrixErrorf("Display", err)
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf("Display", err)
	}

	return nil
}

// Encode writes m in the full source format: the rows=/cols= header
// followed by the Display triples.
func (m *Sparse) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%d\n%s%d\n", rowsKey, m.Rows(), colsKey, m.Cols()); err != nil {
		return matrixErrorf("Encode", err)
	}
	if err := writeTriples(bw, m); err != nil {
		return matrixErrorf("Encode", err)
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf("Encode", err)
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler using Encode.
func (m *Sparse) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
