// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Operation tags for error wrapping and log messages.
const (
	opNew       = "New"
	opSetEntry  = "SetEntry"
	opTranspose = "TransposeA"
	opScale     = "ScaleA"
	opOperator  = "SetOperator"
	opLoad      = "Load"
)

func sessionErrorf(tag string, err error) error {
	return fmt.Errorf("session.%s: %w", tag, err)
}

// Option configures a State.
type Option func(*State)

// WithLogger routes transition logs to l. The default logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// State is the application-state record: operands, pending operator, result.
type State struct {
	mu     sync.Mutex
	a, b   *sparse.Sparse // operands; replaced, never mutated in place
	result *sparse.Sparse // always op.Apply(a, b)
	op     Operator
	log    *slog.Logger
}

// Snapshot is a consistent, independent copy of a State.
type Snapshot struct {
	A, B, Result *sparse.Sparse
	Op           Operator
}

// New clones a and b, validates op, and derives the initial result.
//
// Errors:
//   - ErrUnknownOperator, sparse.ErrNilMatrix, sparse.ErrDimensionMismatch,
//     or any error of the initial operation.
func New(a, b *sparse.Sparse, op Operator, opts ...Option) (*State, error) {
	s := &State{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, fn := range opts {
		if fn != nil {
			fn(s)
		}
	}
	if a == nil || b == nil {
		return nil, sessionErrorf(opNew, sparse.ErrNilMatrix)
	}
	if err := s.commit(opNew, a.CloneSparse(), b.CloneSparse(), op); err != nil {
		return nil, err
	}

	return s, nil
}

// commit derives the result for (a, b, op) and swaps all three in only when
// it succeeds. Caller holds s.mu (or owns s exclusively).
func (s *State) commit(tag string, a, b *sparse.Sparse, op Operator) error {
	if !op.Valid() {
		return sessionErrorf(tag, fmt.Errorf("%w: %q", ErrUnknownOperator, string(op)))
	}
	res, err := op.Apply(a, b)
	if err != nil {
		s.log.Warn("session update rejected", "step", tag, "op", op.String(), "err", err)
		return sessionErrorf(tag, err)
	}
	s.a, s.b, s.result, s.op = a, b, res, op
	s.log.Debug("session updated",
		"step", tag,
		"op", op.String(),
		"size", a.Size(),
		"nnz_a", a.NNZ(),
		"nnz_b", b.NNZ(),
		"nnz_result", res.NNZ(),
	)

	return nil
}

// SetEntry writes v at (row, col) of A (zero-based) and re-derives the result.
func (s *State) SetEntry(row, col int, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.a.CloneSparse()
	if err := next.SetEntry(row, col, v); err != nil {
		return sessionErrorf(opSetEntry, err)
	}

	return s.commit(opSetEntry, next, s.b, s.op)
}

// TransposeA replaces A by Aᵀ and re-derives the result.
func (s *State) TransposeA() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.a.Transpose()
	if err != nil {
		return sessionErrorf(opTranspose, err)
	}

	return s.commit(opTranspose, next, s.b, s.op)
}

// ScaleA replaces A by k·A and re-derives the result.
func (s *State) ScaleA(k float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.a.ScalarMultiply(k)
	if err != nil {
		return sessionErrorf(opScale, err)
	}

	return s.commit(opScale, next, s.b, s.op)
}

// SetOperator switches the pending operator and re-derives the result.
func (s *State) SetOperator(op Operator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(opOperator, s.a, s.b, op)
}

// Load replaces both operands (cloned) and re-derives the result with the
// pending operator.
func (s *State) Load(a, b *sparse.Sparse) error {
	if a == nil || b == nil {
		return sessionErrorf(opLoad, sparse.ErrNilMatrix)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(opLoad, a.CloneSparse(), b.CloneSparse(), s.op)
}

// A returns a copy of the first operand.
func (s *State) A() *sparse.Sparse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.a.CloneSparse()
}

// B returns a copy of the second operand.
func (s *State) B() *sparse.Sparse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.b.CloneSparse()
}

// Result returns a copy of the derived result.
func (s *State) Result() *sparse.Sparse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result.CloneSparse()
}

// Operator returns the pending operator.
func (s *State) Operator() Operator {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.op
}

// Snapshot returns copies of all fields taken under one lock.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		A:      s.a.CloneSparse(),
		B:      s.b.CloneSparse(),
		Result: s.result.CloneSparse(),
		Op:     s.op,
	}
}
