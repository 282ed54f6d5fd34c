// SPDX-License-Identifier: MIT

package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Encode writes a and b in the description format, entries in row-major
// order with 1-indexed coordinates. Values use the shortest representation
// that parses back to the same float64, so Parse(Encode(a, b)) reproduces
// both matrices exactly. NaN and ±Inf are refused before anything is
// written, since a default Parse rejects them.
//
// Errors:
//   - sparse.ErrNilMatrix, sparse.ErrDimensionMismatch, sparse.ErrNaNInf;
//     write errors from w.
func Encode(w io.Writer, a, b *sparse.Sparse) error {
	if err := sparse.ValidateSameSize(a, b); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	for _, m := range []*sparse.Sparse{a, b} {
		if err := requireFinite(m); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", a.Size(), a.NNZ(), b.NNZ()); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	var werr error
	for _, m := range []*sparse.Sparse{a, b} {
		m.Do(func(t sparse.Triplet) bool {
			buf = buf[:0]
			buf = strconv.AppendInt(buf, int64(t.Row+1), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(t.Col+1), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, t.Val, 'g', -1, 64)
			buf = append(buf, '\n')
			_, werr = bw.Write(buf)
			return werr == nil
		})
		if werr != nil {
			return werr
		}
	}

	return bw.Flush()
}

// requireFinite reports the first non-finite entry of m.
func requireFinite(m *sparse.Sparse) error {
	var err error
	m.Do(func(t sparse.Triplet) bool {
		if math.IsNaN(t.Val) || math.IsInf(t.Val, 0) {
			err = fmt.Errorf("%w: entry (%d, %d) is %v", sparse.ErrNaNInf, t.Row+1, t.Col+1, t.Val)
		}
		return err == nil
	})

	return err
}

// Display writes m in the display format ("<row>: (<col>, <value>) ...").
func Display(w io.Writer, m *sparse.Sparse) error {
	if m == nil {
		return fmt.Errorf("Display: %w", sparse.ErrNilMatrix)
	}
	_, err := m.WriteTo(w)

	return err
}
