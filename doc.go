// Package lvsparse is a small toolkit for square sparse matrices: canonical
// storage, exact algebra and a plain-text exchange format.
//
// What is inside:
//
//	sparse/          — Sparse type, SetEntry, Transpose, ScalarMultiply, Add,
//	                   Diff, Multiply, Equal, display serialization, Dense interop
//	textfmt/         — "n e1 e2" description parser (strict or lenient) and encoder
//	session/         — operand pair + pending operator with an always-derived result
//	cmd/sparsecalc/  — command line front end (eval, show, transpose, scale)
//	examples/        — runnable walk-counting demo
//
// Quick example:
//
//	    1 . .         1 . .       2 . .
//	    1 . .    +    . 1 .   =   1 1 .
//	    1 . .         . . 1       1 . 1
//
//	pair, _ := textfmt.ParseString("3 3 3\n1 1 1\n2 1 1\n3 1 1\n1 1 1\n2 2 1\n3 3 1\n")
//	sum, _ := pair.A.Add(pair.B)
//	fmt.Print(sum) // 1: (1, 2.0)\n2: (1, 1.0) (2, 1.0)\n3: (1, 1.0) (3, 1.0)\n
//
//	go install github.com/katalvlaran/lvsparse/cmd/sparsecalc@latest
package lvsparse
