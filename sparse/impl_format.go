// SPDX-License-Identifier: MIT

// Package sparse - display serialization.
//
// Format (one line per row, rows and columns 1-indexed):
//
//	<row>: (<col>, <value>) (<col>, <value>) ...
//
// Values are rendered with exactly one decimal place. A row without stored
// entries prints only its label. Every line ends with '\n'.

package sparse

import (
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtLabelEnd  = ":"
	_fmtPairOpen  = " ("
	_fmtPairSep   = ", "
	_fmtPairClose = ")"
	_fmtRowEnd    = "\n"

	// displayPrecision is the number of decimals printed per value.
	displayPrecision = 1
)

// Serialize renders the stored entries in display format ("<nil>" for a nil
// receiver). Read-only; O(n + nnz).
func (m *Sparse) Serialize() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	_, _ = m.WriteTo(&b) // strings.Builder never fails

	return b.String()
}

// String implements fmt.Stringer (same output as Serialize).
func (m *Sparse) String() string { return m.Serialize() }

// WriteTo streams the display format into w, row by row.
// It implements io.WriterTo. A nil receiver writes nothing and returns ErrNilMatrix.
func (m *Sparse) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, sparseErrorf(opWriteTo, ErrNilMatrix)
	}
	var (
		total int64
		buf   []byte
	)
	for i, row := range m.rows {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(i+1), 10)
		buf = append(buf, _fmtLabelEnd...)
		for _, e := range row {
			buf = appendPair(buf, e)
		}
		buf = append(buf, _fmtRowEnd...)
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// appendPair appends " (<col+1>, <val>)".
func appendPair(buf []byte, e Entry) []byte {
	buf = append(buf, _fmtPairOpen...)
	buf = strconv.AppendInt(buf, int64(e.Col+1), 10)
	buf = append(buf, _fmtPairSep...)
	buf = strconv.AppendFloat(buf, e.Val, 'f', displayPrecision, 64)

	return append(buf, _fmtPairClose...)
}
