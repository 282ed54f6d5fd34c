// SPDX-License-Identifier: MIT

package textfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader indicates a first line that is not "n e1 e2" with
	// n > 0 and e1, e2 >= 0.
	ErrMalformedHeader = errors.New("textfmt: malformed header")

	// ErrMalformedEntry indicates an entry line that is not "row col value"
	// with integer indices and (in strict mode) a finite numeric value.
	ErrMalformedEntry = errors.New("textfmt: malformed entry")

	// ErrShortInput indicates fewer entry lines than the header declares.
	ErrShortInput = errors.New("textfmt: unexpected end of input")
)

// lineErrorf attaches a 1-based line number to err.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

// detailErrorf attaches a detail message to a sentinel: "<sentinel>: <detail>".
func detailErrorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
