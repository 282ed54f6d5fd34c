// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (fixed seeds, integer-valued data) so
//     exact structural comparisons are meaningful.
//   - A canonical-storage checker built only on the public surface.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// mustSparse allocates an n×n zero matrix or fails the test.
func mustSparse(t testing.TB, n int, opts ...sparse.Option) *sparse.Sparse {
	t.Helper()
	m, err := sparse.NewSparse(n, opts...)
	require.NoError(t, err)

	return m
}

// mustEntries builds an n×n matrix from zero-based triplets {row, col, val}.
func mustEntries(t testing.TB, n int, entries ...sparse.Triplet) *sparse.Sparse {
	t.Helper()
	m, err := sparse.FromEntries(n, entries)
	require.NoError(t, err)

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(t testing.TB, n int) *sparse.Sparse {
	t.Helper()
	m, err := sparse.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// tr is a terse Triplet literal for fixtures.
func tr(row, col int, val float64) sparse.Triplet {
	return sparse.Triplet{Row: row, Col: col, Val: val}
}

// randomSparse fills an n×n matrix with integer values in [-4, 4] at roughly
// the given density. Integer data keeps every sum exact.
func randomSparse(t testing.TB, n int, density float64, seed int64) *sparse.Sparse {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustSparse(t, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() >= density {
				continue
			}
			require.NoError(t, m.SetEntry(i, j, float64(rng.Intn(9)-4)))
		}
	}

	return m
}

// requireCanonical asserts the storage invariants through the public API:
// no stored zero, strictly increasing columns in range, NNZ == Σ row lengths.
func requireCanonical(t testing.TB, m *sparse.Sparse) {
	t.Helper()
	total := 0
	for i := 0; i < m.Size(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		for k, e := range row {
			require.NotZero(t, e.Val, "row %d stores a zero at col %d", i, e.Col)
			require.GreaterOrEqual(t, e.Col, 0)
			require.Less(t, e.Col, m.Size())
			if k > 0 {
				require.Greater(t, e.Col, row[k-1].Col, "row %d not strictly increasing", i)
			}
		}
		total += len(row)
	}
	require.Equal(t, total, m.NNZ(), "NNZ drifted from stored entries")
}

// rowOf returns row i or fails the test.
func rowOf(t testing.TB, m *sparse.Sparse, i int) []sparse.Entry {
	t.Helper()
	row, err := m.Row(i)
	require.NoError(t, err)

	return row
}

// scenarioPair returns the reference operands: M1 has ones down column 0,
// M2 is the 3×3 identity.
func scenarioPair(t testing.TB) (*sparse.Sparse, *sparse.Sparse) {
	t.Helper()
	m1 := mustEntries(t, 3, tr(0, 0, 1), tr(1, 0, 1), tr(2, 0, 1))
	m2 := mustEntries(t, 3, tr(0, 0, 1), tr(1, 1, 1), tr(2, 2, 1))

	return m1, m2
}
