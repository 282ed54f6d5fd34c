// SPDX-License-Identifier: MIT

// Package session holds the live state of an interactive calculator: two
// operand matrices, the pending operator, and the derived result.
//
// Every mutation replaces a stored matrix with the output of a pure sparse
// operation and then re-derives the result with the pending operator. No
// stored matrix is ever modified in place, and accessors hand out clones, so
// callers can never observe a half-applied update. A failed step leaves the
// previous state untouched.
//
// State is safe for concurrent use; a mutex serializes updates.
package session
