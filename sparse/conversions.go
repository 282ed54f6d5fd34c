// SPDX-License-Identifier: MIT

// Package sparse - conversions between Sparse, Dense and any Matrix.
package sparse

import "fmt"

// FromMatrix builds a canonical *Sparse from any square Matrix.
// Zeros are dropped by SetEntry; the numeric policy comes from opts.
//
// Implementation:
//   - Stage 1: ValidateNotNil → ValidateSquare.
//   - Stage 2: fixed i→j scan; each cell goes through SetEntry.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square), ErrNaNInf (policy on),
//     and any error returned by src.At.
//
// Complexity:
//   - Time O(n² · log k) for a generic source.
func FromMatrix(src Matrix, opts ...Option) (*Sparse, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, sparseErrorf(opFromMat, err)
	}
	if err := ValidateSquare(src); err != nil {
		return nil, sparseErrorf(opFromMat, err)
	}
	if s, ok := src.(*Sparse); ok && len(opts) == 0 {
		return s.clone(), nil
	}
	res, err := NewSparse(src.Rows(), opts...)
	if err != nil {
		return nil, sparseErrorf(opFromMat, err)
	}
	n := src.Rows()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, sparseErrorf(opFromMat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.SetEntry(i, j, v); err != nil {
				return nil, sparseErrorf(opFromMat, err)
			}
		}
	}

	return res, nil
}

// ToDense materializes m as an n×n *Dense.
// Errors: ErrNilMatrix.
// Complexity: Time O(n² + nnz), Space O(n²).
func (m *Sparse) ToDense() (*Dense, error) {
	if m == nil {
		return nil, sparseErrorf(opToDense, ErrNilMatrix)
	}
	d, err := NewDense(m.n, m.n)
	if err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	m.Do(func(t Triplet) bool {
		d.data[t.Row*m.n+t.Col] = t.Val
		return true
	})

	return d, nil
}
