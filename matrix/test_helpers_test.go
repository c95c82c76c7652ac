// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the sparse kernels.
//   - Keep random inputs seeded so failures reproduce.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/stretchr/testify/require"
)

// cells is the literal form used to describe expected matrix contents.
type cells map[matrix.Coord]int64

// MustParse parses src or fails the test.
func MustParse(t testing.TB, src string, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	m, err := matrix.ParseString(src, opts...)
	require.NoError(t, err)

	return m
}

// MustSparse builds a rows×cols matrix holding the given cells.
func MustSparse(t testing.TB, rows, cols int, in cells) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(rows, cols)
	require.NoError(t, err)
	for k, v := range in {
		require.NoError(t, m.Set(k.Row, k.Col, v))
	}

	return m
}

// RandomSparse fills roughly density*rows*cols cells with values in [-9,9]
// using a seeded rng. Zero draws simply leave the cell empty.
func RandomSparse(t testing.TB, rng *rand.Rand, rows, cols int, density float64) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				require.NoError(t, m.Set(i, j, int64(rng.Intn(19)-9)))
			}
		}
	}

	return m
}

// RequireCells asserts that m stores exactly want.
func RequireCells(t testing.TB, want cells, m *matrix.Sparse) {
	t.Helper()
	got := cells{}
	for _, e := range m.Entries() {
		got[e.Coord] = e.Value
	}
	require.Equal(t, want, got)
}

// RequireSameValues compares two matrices cell by cell over their shape
// (and one ring of out-of-range coordinates, which must read 0).
func RequireSameValues(t testing.TB, want, got *matrix.Sparse) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := -1; i <= want.Rows(); i++ {
		for j := -1; j <= want.Cols(); j++ {
			require.Equalf(t, want.At(i, j), got.At(i, j), "cell (%d,%d)", i, j)
		}
	}
}
