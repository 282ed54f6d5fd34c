// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every exported operation returns one of these sentinels (possibly wrapped
// with an operation tag); tests match them via errors.Is. User-triggered
// conditions never panic.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Messages are prefixed with "sparse: ..." so they grep well in logs.
// Context is added with sparseErrorf / entryErrorf at the detection site;
// callers still match the sentinel with errors.Is.
//
// ERROR PRIORITY: nil -> size -> index -> numeric policy.

var (
	// ErrInvalidDimensions indicates a non-positive matrix size at construction.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, size).
	// SetEntry checks this before any mutation.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes in Add, Diff,
	// Multiply, or a non-square source in FromMatrix.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil receiver or operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNaNInf indicates a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)

// ErrIndexOutOfBounds names the index precondition of SetEntry and At.
var ErrIndexOutOfBounds = ErrOutOfRange

// ErrSizeMismatch names the size precondition of the binary operations.
var ErrSizeMismatch = ErrDimensionMismatch

// Operation tags for uniform error wrapping.
const (
	opNew       = "NewSparse"
	opSetEntry  = "SetEntry"
	opAt        = "At"
	opRow       = "Row"
	opTranspose = "Transpose"
	opScale     = "ScalarMultiply"
	opAdd       = "Add"
	opDiff      = "Diff"
	opMultiply  = "Multiply"
	opFromMat   = "FromMatrix"
	opToDense   = "ToDense"
	opEntries   = "FromEntries"
	opWriteTo   = "WriteTo"
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// entryErrorf attaches coordinates: "Sparse.<method>(row,col): <err>".
func entryErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}
