package menu

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/stretchr/testify/require"
)

func operands(t *testing.T) (a, b *matrix.Sparse) {
	t.Helper()
	a, err := matrix.ParseString("rows=2\ncols=2\n(0,0,1)\n(1,1,2)\n")
	require.NoError(t, err)
	b, err = matrix.ParseString("rows=2\ncols=2\n(0,0,3)\n(0,1,4)\n")
	require.NoError(t, err)

	return a, b
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSession_AddThenExit(t *testing.T) {
	a, b := operands(t)
	var out bytes.Buffer
	s := &Session{A: a, B: b, In: strings.NewReader("1\n4\n"), Out: &out, Log: quiet()}

	require.NoError(t, s.Loop())
	got := out.String()
	require.Contains(t, got, "Result of Addition:\n(0, 0, 4)\n(0, 1, 4)\n(1, 1, 2)\n")
	require.Contains(t, got, "Exiting...")
	require.Equal(t, 2, strings.Count(got, "Choose an operation:"))
}

func TestSession_InvalidChoiceReprompts(t *testing.T) {
	a, b := operands(t)
	var out bytes.Buffer
	s := &Session{A: a, B: b, In: strings.NewReader("9\nadd\n 3 \n"), Out: &out, Log: quiet()}

	require.NoError(t, s.Loop()) // EOF ends the session
	got := out.String()
	require.Equal(t, 2, strings.Count(got, "Invalid choice. Please enter a number between 1 and 4."))
	require.Contains(t, got, "Result of Multiplication:\n(0, 0, 3)\n(0, 1, 4)\n")
	require.Equal(t, 4, strings.Count(got, "Enter your choice: "))
}

func TestSession_EOFExitsLikeChoice4(t *testing.T) {
	a, b := operands(t)
	var viaChoice, viaEOF bytes.Buffer

	require.NoError(t, (&Session{A: a, B: b, In: strings.NewReader("4\n"), Out: &viaChoice, Log: quiet()}).Loop())
	require.NoError(t, (&Session{A: a, B: b, In: strings.NewReader(""), Out: &viaEOF, Log: quiet()}).Loop())

	require.True(t, strings.HasSuffix(viaChoice.String(), "Enter your choice: Exiting...\n"))
	require.Equal(t, viaChoice.String(), viaEOF.String())
}

func TestSession_ErrorAborts(t *testing.T) {
	a, _ := operands(t)
	b, err := matrix.NewSparse(3, 2)
	require.NoError(t, err)

	var out bytes.Buffer
	s := &Session{A: a, B: b, In: strings.NewReader("2\n1\n4\n"), Out: &out, Log: quiet()}

	err = s.Loop()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, out.String(), "Error: Sub: ")
	require.NotContains(t, out.String(), "Result of")
	require.Equal(t, 1, strings.Count(out.String(), "Choose an operation:"))
}

func TestLookupAndRun(t *testing.T) {
	a, b := operands(t)

	op, ok := Lookup("sub")
	require.True(t, ok)
	require.Equal(t, "Subtraction", op.Title)

	var out bytes.Buffer
	require.NoError(t, Run(op, a, b, &out))
	require.Equal(t, "\nResult of Subtraction:\n(0, 0, -2)\n(0, 1, -4)\n(1, 1, 2)\n", out.String())

	_, ok = Lookup("div")
	require.False(t, ok)
}
