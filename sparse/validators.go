// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for nil/size/index/finite checks.
//   - Return plain sentinels (tagged with the validator name) so call sites
//     can wrap uniformly with sparseErrorf.
//
// Determinism & Performance:
//   - All checks are pure, O(1), and allocate nothing on the success path.

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf tags err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is a usable matrix. Typed nil pointers hidden in
// the interface (a nil *Sparse or *Dense) are rejected as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Sparse:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSquare checks Rows == Cols. Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameSize – Composite: NotNil(a) → NotNil(b) → equal size.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use before every binary kernel (Add/Diff/Multiply).
func ValidateSameSize(a, b *Sparse) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameSize", ErrNilMatrix)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// validateIndex checks 0 ≤ row < n and 0 ≤ col < n.
func validateIndex(n, row, col int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return ErrOutOfRange
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
