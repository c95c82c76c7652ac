// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build a Sparse from the textual source format:
//
//	rows=<integer>
//	cols=<integer>
//	(<row>,<col>,<value>)
//	...
//
// Rules:
//   - Lines 1 and 2 are fixed-position declarations with the exact,
//     case-sensitive keys "rows=" and "cols="; only line-ending whitespace
//     is trimmed.
//   - Every later non-blank line is "(" r "," c "," v ")" with each token
//     trimmed and parsed as a base-10 integer.
//   - Construction is atomic: any deviation yields (nil, *FormatError).

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	rowsKey      = "rows="
	colsKey      = "cols="
	tripleOpen   = "("
	tripleClose  = ")"
	tripleSep    = ","
	tripleFields = 3

	// maxLineSize bounds a single source line (bufio.Scanner buffer).
	maxLineSize = 1 << 20
)

// Parse reads a matrix from r.
// Stage 1 (Header): lines 1 and 2 declare rows and cols.
// Stage 2 (Body): every non-blank later line is one triple.
// Stage 3 (Finalize): a complete matrix, or nil and an error.
// I/O failures are returned wrapped and do not match ErrFormat.
// Complexity: O(L) over the source length.
func Parse(r io.Reader, opts ...Option) (*Sparse, error) {
	p := parser{opts: NewOptions(opts...)}
	if p.opts.rejectDuplicates {
		p.seen = make(map[Coord]int)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		p.line++
		if err := p.feed(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Line: p.line + 1, Reason: "line too long", Err: err}
		}
		return nil, matrixErrorf("Parse", err)
	}

	switch p.line {
	case 0:
		return nil, &FormatError{Reason: "empty source"}
	case 1:
		return nil, &FormatError{Line: 2, Reason: "missing " + colsKey + " declaration"}
	}

	return p.m, nil
}

// ParseString is Parse over an in-memory source.
func ParseString(s string, opts ...Option) (*Sparse, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ReadFile opens path and parses it.
func ReadFile(path string, opts ...Option) (*Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, matrixErrorf("ReadFile", err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return m, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error m is left
// unchanged.
func (m *Sparse) UnmarshalText(text []byte) error {
	if m == nil {
		return matrixErrorf("UnmarshalText", ErrNilMatrix)
	}
	parsed, err := Parse(strings.NewReader(string(text)))
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}

// parser holds the state of one Parse call.
type parser struct {
	opts Options
	line int           // 1-based number of the line being fed
	rows int           // declared on line 1
	m    *Sparse       // allocated once line 2 is accepted
	seen map[Coord]int // coordinate -> first line; only with rejectDuplicates
}

// feed consumes one raw line.
func (p *parser) feed(raw string) error {
	switch p.line {
	case 1:
		n, err := p.declaration(raw, rowsKey)
		if err != nil {
			return err
		}
		p.rows = n
		return nil
	case 2:
		n, err := p.declaration(raw, colsKey)
		if err != nil {
			return err
		}
		p.m = newSparse(p.rows, n, 0)
		return nil
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return nil // blank lines among triples are skipped
	}

	return p.triple(text)
}

// declaration parses "<key><non-negative integer>".
func (p *parser) declaration(raw, key string) (int, error) {
	text := strings.TrimRight(raw, " \t\r\n")
	if !strings.HasPrefix(text, key) {
		return 0, p.fail(text, "expected "+key+" declaration", nil)
	}
	n, err := strconv.Atoi(text[len(key):])
	if err != nil {
		return 0, p.fail(text, "invalid "+strings.TrimSuffix(key, "=")+" count", err)
	}
	if n < 0 {
		return 0, p.fail(text, "negative "+strings.TrimSuffix(key, "=")+" count", ErrBadShape)
	}

	return n, nil
}

// triple parses "(r,c,v)" and applies it to the matrix.
func (p *parser) triple(text string) error {
	if !strings.HasPrefix(text, tripleOpen) || !strings.HasSuffix(text, tripleClose) || len(text) < 2 {
		return p.fail(text, "triple must be wrapped in parentheses", nil)
	}
	parts := strings.Split(text[1:len(text)-1], tripleSep)
	if len(parts) != tripleFields {
		return p.fail(text, fmt.Sprintf("triple has %d components, want %d", len(parts), tripleFields), nil)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return p.fail(text, "invalid row index", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return p.fail(text, "invalid column index", err)
	}
	val, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return p.fail(text, "invalid value", err)
	}

	if err := ValidateIndex(p.m, row, col); err != nil {
		if p.opts.strictBounds {
			return p.fail(text, "coordinate outside declared dimensions", err)
		}
		return nil // lenient: skipped, never stored
	}

	k := Coord{Row: row, Col: col}
	if p.seen != nil {
		if first, dup := p.seen[k]; dup {
			return p.fail(text, fmt.Sprintf("duplicate coordinate, first seen on line %d", first), nil)
		}
		p.seen[k] = p.line
	}
	p.m.put(k, val)

	return nil
}

// fail builds a *FormatError for the current line.
func (p *parser) fail(text, reason string, cause error) error {
	return &FormatError{Line: p.line, Text: text, Reason: reason, Err: cause}
}
