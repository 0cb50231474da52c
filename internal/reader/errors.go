package reader

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedToken is the cause of every grammar violation.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrEmptyInput is returned when the input ends before a root element.
	ErrEmptyInput = errors.New("input is empty")
)

// SyntaxError reports malformed input with its byte offset.
//
// Grammar violations carry the reader state, the token that was found and a
// description of what was expected. Tokenizer failures only carry the offset
// and the underlying error.
type SyntaxError struct {
	Offset   int64
	State    State
	Got      string
	Expected string
	Err      error
}

// Error formats the syntax error with location and cause.
func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Expected == "" {
		return fmt.Sprintf("malformed xml at position %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("%v in xml at position %d: got %s, expected %s", e.Err, e.Offset, e.Got, e.Expected)
}

// Unwrap exposes the underlying error.
func (e *SyntaxError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// unexpected is the single constructor for grammar violations.
func unexpected(state State, ev Event, expected string) error {
	cause := ErrUnexpectedToken
	if ev.Kind == KindEOF && state == AwaitingRoot {
		cause = ErrEmptyInput
	}
	return &SyntaxError{
		Offset:   ev.Offset,
		State:    state,
		Got:      ev.String(),
		Expected: expected,
		Err:      cause,
	}
}
