// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/stretchr/testify/require"
)

func TestDisplay_SortedTriples(t *testing.T) {
	t.Parallel()

	// deliberately unordered source
	m := MustParse(t, "rows=3\ncols=3\n(2,1,9)\n(0,2,-1)\n(2,0,4)\n(0,0,7)\n")
	var buf bytes.Buffer
	require.NoError(t, m.Display(&buf))
	require.Equal(t, "(0, 0, 7)\n(0, 2, -1)\n(2, 0, 4)\n(2, 1, 9)\n", buf.String())
}

func TestDisplay_DoesNotMutate(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 2, 2, cells{{1, 0}: 3})
	before := m.Clone()
	require.NoError(t, m.Display(&bytes.Buffer{}))
	require.True(t, before.Equal(m))
}

func TestDisplay_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, MustSparse(t, 4, 4, nil).Display(&buf))
	require.Empty(t, buf.String())
}

func TestDisplay_RoundTripTriples(t *testing.T) {
	t.Parallel()

	src := "rows=2\ncols=5\n(1,4,2)\n(0,3,8)\n(1,0,-6)\n"
	m := MustParse(t, src)
	var buf bytes.Buffer
	require.NoError(t, m.Display(&buf))

	// the displayed triples parse back to the same matrix
	again := MustParse(t, "rows=2\ncols=5\n"+buf.String())
	require.True(t, m.Equal(again))
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 10; trial++ {
		m := RandomSparse(t, rng, 1+rng.Intn(8), 1+rng.Intn(8), 0.25)
		text, err := m.MarshalText()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(text), "rows="))

		var back matrix.Sparse
		require.NoError(t, back.UnmarshalText(text))
		require.True(t, m.Equal(&back))
	}
}

func TestString_UsesEncodeFormat(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 2, 3, cells{{1, 2}: 5})
	require.Equal(t, "rows=2\ncols=3\n(1, 2, 5)\n", m.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestDisplay_WriteError(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 1, 1, cells{{0, 0}: 1})
	require.ErrorContains(t, m.Display(failingWriter{}), "broken pipe")
	require.ErrorContains(t, m.Encode(failingWriter{}), "broken pipe")
}
