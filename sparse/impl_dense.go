// SPDX-License-Identifier: MIT

// Package sparse - Dense storage (row-major) for interop and reference checks.
//
// Purpose:
//   - Provide a plain row-major buffer with the index formula i*cols + j.
//   - Serve as the conversion target of (*Sparse).ToDense and as a source
//     for FromMatrix; tests use it as the reference layout for products.
//   - Keep the public surface safe: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c zero matrix.
// Errors: ErrInvalidDimensions when rows <= 0 or cols <= 0.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.c }

// indexOf bounds-checks (row, col) and returns the flat offset.
func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, ErrOutOfRange
	}

	return row*d.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (d *Dense) At(row, col int) (float64, error) {
	off, err := d.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return d.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Dense applies no numeric policy; it stores whatever it is given.
func (d *Dense) Set(row, col int, v float64) error {
	off, err := d.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	d.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() Matrix {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{r: d.r, c: d.c, data: cp}
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.r; i++ {
		b.WriteString("[")
		base := i * d.c
		for j := 0; j < d.c; j++ {
			b.WriteString(strconv.FormatFloat(d.data[base+j], 'g', -1, 64))
			if j+1 < d.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
