package lexer

import (
	"strings"
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

type position struct {
	offset int
	line   int
	col    int
}

// New initializes a Lexer over a complete input text.
func New(in string) *Lexer {
	return &Lexer{
		in:     in,
		pos:    position{line: 1, col: 1},
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer. A Lexer is meant to be used once and
// by a single goroutine.
type Lexer struct {
	in string

	pos   position
	start position
	width int

	buf strings.Builder

	tokens  []Token
	lastErr error
}

// Tokens returns all the tokens detected by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan runs the state machine until the input is exhausted or an error is
// found.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	if lx.lastErr != nil {
		lx.tokens = nil
	}
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, newTokenAt(tt, lx.buf.String(), lx.start))
	lx.buf.Reset()
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.pos.offset >= len(lx.in) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(lx.in[lx.pos.offset:])
	return r, true
}

func (lx *Lexer) next() (rune, bool) {
	if lx.pos.offset >= len(lx.in) {
		lx.width = 0
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(lx.in[lx.pos.offset:])
	lx.width = w
	lx.pos.offset += w
	if r == runeNewLine {
		lx.pos.line++
		lx.pos.col = 1
	} else {
		lx.pos.col++
	}
	return r, true
}

// keep appends the raw bytes of the last rune read to the buffer, so that
// invalid UTF-8 sequences pass through untouched.
func (lx *Lexer) keep() {
	lx.buf.WriteString(lx.in[lx.pos.offset-lx.width : lx.pos.offset])
}

func lexDefaultState(lx *Lexer) lexState {
	lx.start = lx.pos

	r, ok := lx.next()
	if !ok {
		return nil
	}

	switch {
	case r == runeOpenBracket:
		lx.emit(TokenOpenBracket)
	case r == runeCloseBracket:
		lx.emit(TokenCloseBracket)
	case r == runeDoubleQuote:
		lx.buf.Reset()
		return lexString
	case r == runeSemicolon:
		return lexComment
	case isDelimiter(r):
		// skip
	default:
		lx.buf.Reset()
		lx.keep()
		return lexSymbol
	}

	return lexDefaultState
}

func lexSymbol(lx *Lexer) lexState {
	for {
		r, ok := lx.peek()
		if !ok || !isSymbol(r) {
			break
		}
		lx.next()
		lx.keep()
	}
	lx.emit(TokenSymbol)
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	for {
		r, ok := lx.next()
		if !ok {
			return lexStateError(ErrUnterminatedString)
		}
		switch r {
		case runeDoubleQuote:
			lx.emit(TokenString)
			return lexDefaultState
		case runeBackslash:
			return lexEscape
		default:
			lx.keep()
		}
	}
}

func lexEscape(lx *Lexer) lexState {
	if _, ok := lx.next(); !ok {
		return lexStateError(ErrDanglingEscape)
	}
	lx.keep()
	return lexString
}

func lexComment(lx *Lexer) lexState {
	for {
		r, ok := lx.next()
		if !ok {
			return nil
		}
		if r == runeNewLine {
			return lexDefaultState
		}
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = &LexError{
			Err:    err,
			Buffer: lx.buf.String(),
			Offset: lx.start.offset,
			Line:   lx.start.line,
			Col:    lx.start.col,
		}
		return nil
	}
}

// Tokenize takes a text and returns all the tokens within it, or an error if
// the text ends inside a string.
func Tokenize(in string) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) ([]Token, error) {
	return Tokenize(string(in))
}
