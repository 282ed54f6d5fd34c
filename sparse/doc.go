// SPDX-License-Identifier: MIT

// Package sparse provides a square sparse matrix with canonical row storage.
//
// The sparse package provides:
//
//   - Sparse: an n×n matrix stored as n sorted rows of (column, value) entries.
//     Only non-zero values are stored, each column at most once per row.
//   - SetEntry: the single mutation primitive; every other operation goes through it.
//   - Pure algebra: Transpose, ScalarMultiply, Add, Diff, Multiply. Each returns a
//     freshly built matrix and never touches its operands.
//   - Structural equality (Equal) and a display serialization (String/Serialize).
//   - Dense, a small row-major container sharing the Matrix interface, used for
//     interop (FromMatrix / ToDense) and as a reference in tests.
//
// Canonical storage makes structural equality identical to mathematical equality,
// so Equal applies no floating-point tolerance.
//
// Concurrency: a *Sparse has no internal locking. Treat it as an owned value;
// the algebra never mutates operands, so sharing read-only matrices between
// goroutines is safe while nobody calls SetEntry on them.
//
// Quick example:
//
//	a, _ := sparse.NewSparse(3)
//	_ = a.SetEntry(0, 0, 1)
//	_ = a.SetEntry(2, 1, 4)
//	id, _ := sparse.NewIdentity(3)
//	c, _ := a.Multiply(id)
//	fmt.Print(c) // 1: (1, 1.0)\n2:\n3: (2, 4.0)\n
package sparse
