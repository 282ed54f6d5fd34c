// SPDX-License-Identifier: MIT

// Package textfmt reads and writes the line-oriented description of a pair
// of square sparse matrices, and renders the display format.
//
// Description format:
//
//	n e1 e2
//	row col value   // e1 lines for the first matrix
//	...
//	row col value   // e2 lines for the second matrix
//
// n is the shared dimension, e1/e2 the entry counts. Rows and columns are
// 1-indexed in the text; Parse converts them to zero-based indices before
// calling SetEntry. Entries apply in order, so a repeated cell keeps its last
// value and a 0 value removes an earlier one.
//
// Validation is strict by default: bad token counts, non-integer indices,
// non-numeric values and missing lines are reported with the offending line
// number. WithLenientValues keeps unparseable values as NaN instead, matching
// the historical behavior of the interactive tool.
package textfmt
