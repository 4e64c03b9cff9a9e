package coord

import (
	"errors"
	"fmt"
)

// ErrFormat indicates text that does not match a reference grammar exactly.
var ErrFormat = errors.New("malformed reference")

// ErrOutOfBounds indicates a coordinate or offset outside the sheet limits.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// ParseError represents a failure to parse reference text.
type ParseError struct {
	Input   string
	Grammar string // "point", "range", "column", "a1", "r1c1"
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Grammar, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(input, grammar string, err error) *ParseError {
	return &ParseError{
		Input:   input,
		Grammar: grammar,
		Err:     err,
	}
}

func outOfBounds(what string, row, column int) error {
	return fmt.Errorf("%s (row %d, column %d): %w", what, row, column, ErrOutOfBounds)
}
