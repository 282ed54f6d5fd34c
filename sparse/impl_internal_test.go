// SPDX-License-Identifier: MIT
// White-box tests: storage invariants checked on the raw rows, and the sparse
// product checked against the dense reference kernel.
package sparse

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants asserts (1) no stored zero, (2) strictly increasing
// in-range columns, (3) nnz == Σ len(rows[i]).
func checkInvariants(t *testing.T, m *Sparse) {
	t.Helper()
	require.Len(t, m.rows, m.n)
	total := 0
	for i, row := range m.rows {
		for k, e := range row {
			require.NotZero(t, e.Val, "row %d col %d", i, e.Col)
			require.True(t, e.Col >= 0 && e.Col < m.n, "row %d col %d out of range", i, e.Col)
			if k > 0 {
				require.Greater(t, e.Col, row[k-1].Col)
			}
		}
		total += len(row)
	}
	require.Equal(t, total, m.nnz)
}

func randomInternal(t *testing.T, rng *rand.Rand, n int) *Sparse {
	t.Helper()
	m, err := NewSparse(n)
	require.NoError(t, err)
	for s := 0; s < n*n/2; s++ {
		require.NoError(t, m.SetEntry(rng.Intn(n), rng.Intn(n), float64(rng.Intn(7)-3)))
	}

	return m
}

// mulDense is the textbook i→j→k product of two n×n Dense matrices.
// It is the reference the sparse kernel is checked against.
func mulDense(a, b *Dense) (*Dense, error) {
	if a.r != a.c || b.r != b.c || a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	n := a.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum = 0
			for k := 0; k < n; k++ {
				sum += a.data[i*n+k] * b.data[k*n+j]
			}
			res.data[i*n+j] = sum
		}
	}

	return res, nil
}

// TestInvariantsAcrossOperations runs every kernel and checks the raw storage.
func TestInvariantsAcrossOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for round := 0; round < 20; round++ {
		n := 1 + rng.Intn(9)
		a := randomInternal(t, rng, n)
		b := randomInternal(t, rng, n)
		checkInvariants(t, a)
		checkInvariants(t, b)

		for _, f := range []func() (*Sparse, error){
			a.Transpose,
			func() (*Sparse, error) { return a.ScalarMultiply(-3) },
			func() (*Sparse, error) { return a.ScalarMultiply(0) },
			func() (*Sparse, error) { return a.Add(b) },
			func() (*Sparse, error) { return a.Diff(b) },
			func() (*Sparse, error) { return a.Diff(a) },
			func() (*Sparse, error) { return a.Multiply(b) },
		} {
			res, err := f()
			require.NoError(t, err)
			checkInvariants(t, res)
		}
	}
}

// TestMultiplyAgainstDenseKernel compares Multiply with mulDense cell by cell.
func TestMultiplyAgainstDenseKernel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 10; round++ {
		n := 2 + rng.Intn(8)
		a := randomInternal(t, rng, n)
		b := randomInternal(t, rng, n)

		da, err := a.ToDense()
		require.NoError(t, err)
		db, err := b.ToDense()
		require.NoError(t, err)
		ref, err := mulDense(da, db)
		require.NoError(t, err)

		got, err := a.Multiply(b)
		require.NoError(t, err)
		want, err := FromMatrix(ref)
		require.NoError(t, err)
		require.True(t, got.Equal(want), "round %d n=%d", round, n)
	}
}

// TestSearchInsertionPoint pins the binary search contract used by set.
func TestSearchInsertionPoint(t *testing.T) {
	m, err := NewSparse(10)
	require.NoError(t, err)
	for _, c := range []int{1, 4, 7} {
		m.set(0, c, 1)
	}
	cases := []struct {
		col   int
		pos   int
		found bool
	}{
		{0, 0, false}, {1, 0, true}, {2, 1, false}, {4, 1, true},
		{5, 2, false}, {7, 2, true}, {9, 3, false},
	}
	for _, tc := range cases {
		pos, found := m.search(0, tc.col)
		require.Equal(t, tc.pos, pos, "col %d", tc.col)
		require.Equal(t, tc.found, found, "col %d", tc.col)
	}
}

// TestMulDenseRejectsMismatch covers the reference kernel's guard.
func TestMulDenseRejectsMismatch(t *testing.T) {
	a, _ := NewDense(2, 2)
	b, _ := NewDense(3, 3)
	_, err := mulDense(a, b)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
