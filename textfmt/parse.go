// SPDX-License-Identifier: MIT

package textfmt

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Pair holds the two matrices described by one input.
type Pair struct {
	A *sparse.Sparse // first matrix (e1 entries)
	B *sparse.Sparse // second matrix (e2 entries)
}

// Header is the decoded first line.
type Header struct {
	N  int // dimension of both matrices
	E1 int // entry lines for A
	E2 int // entry lines for B
}

// tokensPerLine is the token count of both header and entry lines.
const tokensPerLine = 3

// Parse reads a description and builds both matrices through SetEntry.
//
// Implementation:
//   - Stage 1: decode the header; allocate A and B of size n.
//   - Stage 2: read e1 entry lines into A, then e2 into B.
//   - Stage 3: ignore whatever follows the declared entries.
//
// Errors (wrapped with the 1-based line number):
//   - ErrMalformedHeader, ErrMalformedEntry, ErrShortInput;
//   - sparse.ErrOutOfRange for indices outside [1, n];
//   - sparse.ErrNaNInf for NaN/Inf values in strict mode;
//   - any read error from r.
func Parse(r io.Reader, opts ...Option) (*Pair, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)
	line := 0

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	text, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, lineErrorf(1, ErrShortInput)
	}
	h, err := parseHeader(text)
	if err != nil {
		return nil, lineErrorf(line, err)
	}

	mopts := o.matrixOptions()
	a, err := sparse.NewSparse(h.N, mopts...)
	if err != nil {
		return nil, lineErrorf(line, err)
	}
	b, err := sparse.NewSparse(h.N, mopts...)
	if err != nil {
		return nil, lineErrorf(line, err)
	}

	for _, block := range []struct {
		dst   *sparse.Sparse
		count int
	}{{a, h.E1}, {b, h.E2}} {
		for i := 0; i < block.count; i++ {
			if text, ok = next(); !ok {
				if err = sc.Err(); err != nil {
					return nil, err
				}
				return nil, lineErrorf(line+1, ErrShortInput)
			}
			if err = applyEntry(block.dst, text, o.lenient); err != nil {
				return nil, lineErrorf(line, err)
			}
		}
	}

	return &Pair{A: a, B: b}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...Option) (*Pair, error) {
	return Parse(strings.NewReader(s), opts...)
}

// parseHeader decodes "n e1 e2".
func parseHeader(text string) (Header, error) {
	f := strings.Fields(text)
	if len(f) != tokensPerLine {
		return Header{}, detailErrorf(ErrMalformedHeader, "want 3 fields, got %d", len(f))
	}
	var (
		vals [tokensPerLine]int
		err  error
	)
	for i, tok := range f {
		if vals[i], err = strconv.Atoi(tok); err != nil {
			return Header{}, detailErrorf(ErrMalformedHeader, "field %d: %q is not an integer", i+1, tok)
		}
	}
	h := Header{N: vals[0], E1: vals[1], E2: vals[2]}
	if h.N <= 0 {
		return Header{}, detailErrorf(ErrMalformedHeader, "dimension %d must be > 0", h.N)
	}
	if h.E1 < 0 || h.E2 < 0 {
		return Header{}, detailErrorf(ErrMalformedHeader, "negative entry count")
	}

	return h, nil
}

// applyEntry decodes "row col value" (1-indexed) and writes it into m.
func applyEntry(m *sparse.Sparse, text string, lenient bool) error {
	f := strings.Fields(text)
	if len(f) != tokensPerLine {
		return detailErrorf(ErrMalformedEntry, "want 3 fields, got %d", len(f))
	}
	row, err := strconv.Atoi(f[0])
	if err != nil {
		return detailErrorf(ErrMalformedEntry, "row %q is not an integer", f[0])
	}
	col, err := strconv.Atoi(f[1])
	if err != nil {
		return detailErrorf(ErrMalformedEntry, "column %q is not an integer", f[1])
	}
	val, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		if !lenient {
			return detailErrorf(ErrMalformedEntry, "value %q is not a number", f[2])
		}
		val = math.NaN()
	}

	return m.SetEntry(row-1, col-1, val)
}
