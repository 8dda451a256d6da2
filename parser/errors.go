package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lispm/lexer"
)

var (
	ErrUnclosedBracket    = errors.New("unclosed bracket")
	ErrSuperfluousBracket = errors.New("superfluous bracket")
	ErrUnexpectedToken    = errors.New("unexpected token")
)

// SyntaxError reports the token that made the tree builder fail.
type SyntaxError struct {
	Err   error
	Token lexer.Token
}

func (e *SyntaxError) Error() string {
	line, col := e.Token.Pos()
	return fmt.Sprintf("%v (line %d, col %d)", e.Err, line, col)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Offset returns the byte offset of the offending token.
func (e *SyntaxError) Offset() int {
	return e.Token.Offset()
}
