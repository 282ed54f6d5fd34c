// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Thin entry points for common tasks; each facade delegates to the
//     canonical method and adds no logic of its own.
//   - Free-function spellings (Sum, Difference, Product, T, ScaleBy) for
//     callers that prefer composing functions over method chains.

package sparse

// ---------- Constructors ----------

// NewZeros returns the n×n zero matrix. Alias of NewSparse.
func NewZeros(n int, opts ...Option) (*Sparse, error) { return NewSparse(n, opts...) }

// NewIdentity returns I_n: entries (i, i, 1) for every i.
// Complexity: O(n).
func NewIdentity(n int, opts ...Option) (*Sparse, error) {
	I, err := NewSparse(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.set(i, i, 1) // indices valid by construction
	}

	return I, nil
}

// FromEntries builds an n×n matrix by applying SetEntry for each triplet in
// order; later triplets overwrite earlier ones at the same cell.
//
// Errors:
//   - ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf (policy on).
func FromEntries(n int, entries []Triplet, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, t := range entries {
		if err = m.SetEntry(t.Row, t.Col, t.Val); err != nil {
			return nil, sparseErrorf(opEntries, err)
		}
	}

	return m, nil
}

// ZerosLike returns an empty matrix with m's size and numeric policy.
func ZerosLike(m *Sparse) (*Sparse, error) {
	if m == nil {
		return nil, sparseErrorf(opNew, ErrNilMatrix)
	}

	return newLike(m), nil
}

// ---------- Algebra (facades map 1:1 to methods) ----------

// Sum is an alias for a.Add(b).
func Sum(a, b *Sparse) (*Sparse, error) { return a.Add(b) }

// Difference is an alias for a.Diff(b).
func Difference(a, b *Sparse) (*Sparse, error) { return a.Diff(b) }

// Product is an alias for a.Multiply(b).
func Product(a, b *Sparse) (*Sparse, error) { return a.Multiply(b) }

// T is an alias for m.Transpose().
func T(m *Sparse) (*Sparse, error) { return m.Transpose() }

// ScaleBy is an alias for m.ScalarMultiply(k).
func ScaleBy(m *Sparse, k float64) (*Sparse, error) { return m.ScalarMultiply(k) }

// Equal reports a.Equal(b); two nil matrices are not equal.
func Equal(a, b *Sparse) bool { return a.Equal(b) }
