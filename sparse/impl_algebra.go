// SPDX-License-Identifier: MIT
// Package sparse provides the pure algebra on *Sparse: transpose, scalar
// multiplication, addition, subtraction and matrix multiplication.
//
// Contract shared by every kernel:
//   - Operands are never mutated; the result is a fresh *Sparse that shares
//     no row storage with them.
//   - Results are written exclusively through SetEntry, so the canonical
//     invariants hold without any cleanup pass.
//   - The result inherits the receiver's numeric policy. Under the finite-only
//     policy an overflowing product or sum fails with ErrNaNInf.

package sparse

// Transpose returns mᵀ: every stored (r, c, v) becomes (c, r, v).
// Entries are re-inserted, so every result row comes out sorted.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz · (log k + k)), Space O(n + nnz).
func (m *Sparse) Transpose() (*Sparse, error) {
	if m == nil {
		return nil, sparseErrorf(opTranspose, ErrNilMatrix)
	}
	res := newLike(m)
	var err error
	m.Do(func(t Triplet) bool {
		err = res.SetEntry(t.Col, t.Row, t.Val)
		return err == nil
	})
	if err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	return res, nil
}

// ScalarMultiply returns k·m. With k == 0 every write takes the zero no-op
// path and the result is the zero matrix (NNZ() == 0).
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when k or a product is non-finite under the
//     finite-only policy.
//
// Complexity:
//   - Time O(nnz · (log k + k)), Space O(n + nnz).
func (m *Sparse) ScalarMultiply(k float64) (*Sparse, error) {
	if m == nil {
		return nil, sparseErrorf(opScale, ErrNilMatrix)
	}
	res := newLike(m)
	var err error
	m.Do(func(t Triplet) bool {
		err = res.SetEntry(t.Row, t.Col, t.Val*k)
		return err == nil
	})
	if err != nil {
		return nil, sparseErrorf(opScale, err)
	}

	return res, nil
}

// addDiff computes m + sign·other for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameSize.
//   - Stage 2: copy every entry of m into the result via SetEntry.
//   - Stage 3: for each entry (r, c, v) of other, write current(r,c) + sign·v.
//     An exact cancellation stores 0, which SetEntry turns into a removal.
func (m *Sparse) addDiff(other *Sparse, sign float64, opTag string) (*Sparse, error) {
	if err := ValidateSameSize(m, other); err != nil {
		return nil, sparseErrorf(opTag, err)
	}
	res := newLike(m)
	var err error
	m.Do(func(t Triplet) bool {
		err = res.SetEntry(t.Row, t.Col, t.Val)
		return err == nil
	})
	if err != nil {
		return nil, sparseErrorf(opTag, err)
	}
	other.Do(func(t Triplet) bool {
		cur := res.get(t.Row, t.Col)
		err = res.SetEntry(t.Row, t.Col, cur+sign*t.Val) // exact for sign = ±1
		return err == nil
	})
	if err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	return res, nil
}

// Add returns m + other. Commutative.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (sizes differ), ErrNaNInf (overflow
//     under the finite-only policy).
//
// Complexity:
//   - Time O((nnz(m) + nnz(other)) · (log k + k)).
func (m *Sparse) Add(other *Sparse) (*Sparse, error) { return m.addDiff(other, +1, opAdd) }

// Diff returns m − other (the right operand is subtracted). Not commutative.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func (m *Sparse) Diff(other *Sparse) (*Sparse, error) { return m.addDiff(other, -1, opDiff) }

// Multiply returns the matrix product m × other.
// Implementation:
//   - Stage 1: ValidateSameSize.
//   - Stage 2: for every output cell (i, j) in the full n×n grid, sum
//     get(m,i,k)·get(other,k,j) over k = 0..n-1 in ascending order.
//   - Stage 3: write the sum only when it is non-zero.
//
// Behavior highlights:
//   - Every k is visited, zeros included. This keeps IEEE semantics of a
//     dense product (0·Inf = NaN reaches the sum when the policy allows Inf).
//   - Row i of m is expanded once into a dense scratch buffer; lookups into
//     other stay binary searches. The observable result is that of the plain
//     per-cell lookup loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n³ · log k), Space O(n + nnz(result)).
func (m *Sparse) Multiply(other *Sparse) (*Sparse, error) {
	if err := ValidateSameSize(m, other); err != nil {
		return nil, sparseErrorf(opMultiply, err)
	}
	n := m.n
	res := newLike(m)
	aRow := make([]float64, n) // dense copy of m's current row
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for k = range aRow {
			aRow[k] = 0
		}
		for _, e := range m.rows[i] {
			aRow[e.Col] = e.Val
		}
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += aRow[k] * other.get(k, j)
			}
			if sum == 0 {
				continue
			}
			if err := res.SetEntry(i, j, sum); err != nil {
				return nil, sparseErrorf(opMultiply, err)
			}
		}
	}

	return res, nil
}
