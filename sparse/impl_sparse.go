// SPDX-License-Identifier: MIT

// Package sparse - canonical row storage & the SetEntry mutation primitive.
//
// Purpose:
//   - Hold an n×n matrix as n independent rows of Entry sorted by column.
//   - Keep the canonical-storage invariants on every mutation:
//     (1) no stored value is 0, (2) columns strictly increase within a row,
//     (3) nnz == Σ len(rows[i]).
//   - Guarantee safety at the public surface: indexers return errors, never panic.
//
// Complexity quicksheet (k = entries in the touched row):
//   - NewSparse: O(n); SetEntry: O(log k) search + O(k) shift; At: O(log k);
//     Clone: O(n + nnz); Equal: O(n + nnz).

package sparse

import (
	"fmt"
	"sort"
)

// Sparse is a square matrix with canonical sparse row storage.
//   - n is the fixed dimension.
//   - rows[i] holds row i as entries strictly increasing by Col, Val != 0.
//   - nnz is maintained incrementally by SetEntry.
//   - validateNaNInf rejects NaN/±Inf in SetEntry when true.
type Sparse struct {
	n              int       // dimension (n×n), > 0
	rows           [][]Entry // one sorted entry list per row; never shared
	nnz            int       // total stored entries
	validateNaNInf bool      // numeric guard (options.go)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates the n×n zero matrix.
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate n empty rows and resolve the numeric policy.
//
// Returns:
//   - *Sparse with nnz == 0.
//
// Errors:
//   - ErrInvalidDimensions (wrapped with the constructor tag).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewSparse(n int, opts ...Option) (*Sparse, error) {
	if n <= 0 {
		return nil, sparseErrorf(opNew, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Sparse{
		n:              n,
		rows:           make([][]Entry, n), // nil rows are empty rows
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newLike allocates an empty matrix with m's size and numeric policy.
// Used by every algebra kernel so results inherit the receiver's policy.
func newLike(m *Sparse) *Sparse {
	return &Sparse{
		n:              m.n,
		rows:           make([][]Entry, m.n),
		validateNaNInf: m.validateNaNInf,
	}
}

// Size returns the dimension n of the n×n matrix (0 for nil).
func (m *Sparse) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Rows returns the row count (== Size).
func (m *Sparse) Rows() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Cols returns the column count (== Size).
func (m *Sparse) Cols() int {
	if m == nil {
		return 0
	}

	return m.n
}

// NNZ returns the number of stored (non-zero) entries. O(1).
func (m *Sparse) NNZ() int {
	if m == nil {
		return 0
	}

	return m.nnz
}

// ValidatesNaNInf reports whether this instance rejects NaN/±Inf in SetEntry.
func (m *Sparse) ValidatesNaNInf() bool { return m != nil && m.validateNaNInf }

// search returns the position of col in row r and whether it is stored.
// When absent, pos is the insertion point that keeps the row sorted.
func (m *Sparse) search(r, col int) (pos int, found bool) {
	row := m.rows[r]
	pos = sort.Search(len(row), func(i int) bool { return row[i].Col >= col })

	return pos, pos < len(row) && row[pos].Col == col
}

// SetEntry writes v at (row, col), keeping storage canonical.
// MAIN DESCRIPTION:
//   - The single mutation path; all algebra results are built through it.
//
// Implementation:
//   - Stage 1: bounds check (and numeric policy) before touching storage.
//   - Stage 2: binary-search the row for col.
//   - Stage 3: apply one of four cases:
//     found & v==0  → remove entry, nnz--;
//     found & v!=0  → overwrite in place;
//     absent & v!=0 → insert at the sorted position, nnz++;
//     absent & v==0 → no-op.
//
// Behavior highlights:
//   - Only rows[row] and nnz change. A failed call changes nothing.
//   - -0 compares equal to 0 and is therefore never stored.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (policy on).
//
// Complexity:
//   - Time O(log k + k) for insert/remove, O(log k) for overwrite.
func (m *Sparse) SetEntry(row, col int, v float64) error {
	if m == nil {
		return sparseErrorf(opSetEntry, ErrNilMatrix)
	}
	if err := validateIndex(m.n, row, col); err != nil {
		return entryErrorf(opSetEntry, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return entryErrorf(opSetEntry, row, col, ErrNaNInf)
	}
	m.set(row, col, v)

	return nil
}

// set is SetEntry without validation. Callers guarantee valid indices.
func (m *Sparse) set(row, col int, v float64) {
	pos, found := m.search(row, col)
	switch {
	case found && v == 0:
		r := m.rows[row]
		m.rows[row] = append(r[:pos], r[pos+1:]...)
		m.nnz--
	case found:
		m.rows[row][pos].Val = v
	case v != 0:
		r := append(m.rows[row], Entry{}) // grow by one
		copy(r[pos+1:], r[pos:])          // shift the tail right
		r[pos] = Entry{Col: col, Val: v}
		m.rows[row] = r
		m.nnz++
	}
}

// Set implements Matrix; it is SetEntry under the interface name.
func (m *Sparse) Set(row, col int, v float64) error { return m.SetEntry(row, col, v) }

// At returns the value at (row, col), or 0 when nothing is stored there.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(log k).
func (m *Sparse) At(row, col int) (float64, error) {
	if m == nil {
		return 0, sparseErrorf(opAt, ErrNilMatrix)
	}
	if err := validateIndex(m.n, row, col); err != nil {
		return 0, entryErrorf(opAt, row, col, err)
	}

	return m.get(row, col), nil
}

// get is the total zero-defaulting lookup used by the algebra kernels.
func (m *Sparse) get(row, col int) float64 {
	if pos, found := m.search(row, col); found {
		return m.rows[row][pos].Val
	}

	return 0
}

// Row returns a copy of the stored entries of row i in column order.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Sparse) Row(i int) ([]Entry, error) {
	if m == nil {
		return nil, sparseErrorf(opRow, ErrNilMatrix)
	}
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("Sparse.%s(%d): %w", opRow, i, ErrOutOfRange)
	}
	out := make([]Entry, len(m.rows[i]))
	copy(out, m.rows[i])

	return out, nil
}

// Do visits every stored entry in row-major order (row asc, then column asc)
// and stops early when f returns false. f must not mutate m.
// A nil matrix has no entries.
func (m *Sparse) Do(f func(t Triplet) bool) {
	if m == nil {
		return
	}
	for i, row := range m.rows {
		for _, e := range row {
			if !f(Triplet{Row: i, Col: e.Col, Val: e.Val}) {
				return
			}
		}
	}
}

// Triplets returns all stored entries in row-major order.
func (m *Sparse) Triplets() []Triplet {
	out := make([]Triplet, 0, m.NNZ())
	m.Do(func(t Triplet) bool {
		out = append(out, t)
		return true
	})

	return out
}

// Clone returns an independent deep copy with the same numeric policy.
// Complexity: O(n + nnz).
func (m *Sparse) Clone() Matrix { return m.clone() }

// CloneSparse is Clone with the concrete return type.
func (m *Sparse) CloneSparse() *Sparse { return m.clone() }

func (m *Sparse) clone() *Sparse {
	cp := newLike(m)
	for i, row := range m.rows {
		if len(row) == 0 {
			continue
		}
		cp.rows[i] = append([]Entry(nil), row...)
	}
	cp.nnz = m.nnz

	return cp
}

// Equal reports exact structural equality: same size and, row by row, the
// same columns in the same order holding identical values.
// Canonical storage makes this equivalent to mathematical equality.
// A nil operand is never equal.
// Complexity: O(n + nnz).
func (m *Sparse) Equal(other *Sparse) bool {
	if m == nil || other == nil {
		return false
	}
	if m.n != other.n || m.nnz != other.nnz {
		return false
	}
	for i := 0; i < m.n; i++ {
		a, b := m.rows[i], other.rows[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j].Col != b[j].Col || a[j].Val != b[j].Val {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether m is a zero matrix. A nil matrix is not.
func (m *Sparse) IsZero() bool { return m != nil && m.nnz == 0 }
