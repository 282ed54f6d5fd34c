// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Operator selects the binary operation that derives the result from A and B.
type Operator string

// Supported operators.
const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
)

// ErrUnknownOperator indicates an operator outside {+, -, *}.
var ErrUnknownOperator = errors.New("session: unknown operator")

// ParseOperator accepts the symbol or its name ("add", "sub", "diff", "mul").
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+", "add", "sum":
		return OpAdd, nil
	case "-", "sub", "diff":
		return OpSub, nil
	case "*", "x", "mul", "mult", "product":
		return OpMul, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	return op == OpAdd || op == OpSub || op == OpMul
}

// Apply evaluates a <op> b with the matching pure sparse operation.
func (op Operator) Apply(a, b *sparse.Sparse) (*sparse.Sparse, error) {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Diff(b)
	case OpMul:
		return a.Multiply(b)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, string(op))
}

// String returns the operator symbol.
func (op Operator) String() string { return string(op) }
