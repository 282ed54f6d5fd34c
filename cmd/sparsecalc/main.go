// SPDX-License-Identifier: MIT

// Command sparsecalc evaluates sparse matrix expressions read from the
// textual description format:
//
//	n e1 e2
//	row col value   (e1 lines for A)
//	row col value   (e2 lines for B)
//
// Indices are 1-based. Results are printed one row per line as
// "<row>: (<col>, <value>) ...".
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sparsecalc:", err)
		os.Exit(1)
	}
}
