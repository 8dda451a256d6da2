package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrDanglingEscape     = errors.New("dangling escape character")
)

// LexError is returned when the input ends in the middle of a string. Buffer
// holds the partial string content and the position points at the opening
// quote.
type LexError struct {
	Err    error
	Buffer string

	Offset int
	Line   int
	Col    int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v after %q (line %d, col %d)", e.Err, e.Buffer, e.Line, e.Col)
}

func (e *LexError) Unwrap() error {
	return e.Err
}
