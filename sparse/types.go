// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the sparse and dense containers.
package sparse

// Entry is one stored cell of a row: its column and a non-zero value.
// Rows keep entries strictly increasing by Col.
type Entry struct {
	Col int     // zero-based column index
	Val float64 // stored value; never 0 inside a Sparse
}

// Triplet is a (row, col, value) coordinate used by bulk constructors
// and by the Do visitor. Indices are zero-based.
type Triplet struct {
	Row int
	Col int
	Val float64
}

// Matrix is the minimal two-dimensional float64 surface implemented by both
// *Sparse and *Dense. It lets conversions and reference checks operate on
// either storage layout.
//
// Complexity notes: Rows/Cols are O(1); At/Set depend on the layout
// (O(1) dense, O(log k) / O(k) sparse with k stored entries in the row).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j) or returns ErrOutOfRange (and, under the
	// finite-only policy, ErrNaNInf).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
