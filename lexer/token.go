package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit). Tokens are
// immutable once created.
type Token struct {
	tt     TokenType
	lexeme string

	offset int
	line   int
	col    int
}

// NewToken creates a lexical unit. The lexeme is discarded for bracket
// tokens, which carry no value.
func NewToken(tt TokenType, lexeme string, line int, col int) Token {
	if !tt.HasValue() {
		lexeme = ""
	}
	return Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

func newTokenAt(tt TokenType, lexeme string, p position) Token {
	tok := NewToken(tt, lexeme, p.line, p.col)
	tok.offset = p.offset
	return tok
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Offset returns the byte offset of the first character of the lexical unit.
func (t Token) Offset() int {
	return t.offset
}

// Text returns the value of the lexical unit. Escape sequences of string
// tokens are already resolved.
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Equal reports whether both tokens have the same type and value, positions
// are ignored.
func (t Token) Equal(o Token) bool {
	return t.tt == o.tt && t.lexeme == o.lexeme
}

func (t Token) String() string {
	if t.tt.HasValue() {
		return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
	}
	return fmt.Sprintf("(:%v [%d %d])", t.tt, t.line, t.col)
}
