package lispm

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xiam/lispm/lexer"
	"github.com/xiam/lispm/parser"
)

// Error headers used by FormatError.
const (
	HeaderLexical = "LEXICAL ERROR"
	HeaderSyntax  = "SYNTAX ERROR"
)

type snippetError struct {
	msg string
	err error
}

func (e *snippetError) Error() string {
	return e.msg
}

func (e *snippetError) Unwrap() error {
	return e.err
}

// FormatError returns an error whose message is a snippet of src with a caret
// pointing at the position of a lexical or syntax error:
//
//	SYNTAX ERROR at 2:3: superfluous bracket
//
//	   1 | (1 (2 (3)))
//	   2 |   )
//	     |   ^
//
// The returned error still unwraps to err. Other errors are returned
// unchanged.
func FormatError(err error, src string) error {
	return FormatErrorWithName(err, "", src)
}

// FormatErrorWithName is like FormatError and mentions the source name in
// the header.
func FormatErrorWithName(err error, name string, src string) error {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return &snippetError{
			msg: snippet(src, HeaderLexical, name, lexErr.Line, lexErr.Col, lexErr.Err.Error()),
			err: err,
		}
	}

	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := syntaxErr.Token.Pos()
		return &snippetError{
			msg: snippet(src, HeaderSyntax, name, line, col, syntaxErr.Err.Error()),
			err: err,
		}
	}

	return err
}

// snippet shows at most one line before and one line after the faulty one.
// line and col are 1-based and clamped to the source bounds.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}
	text := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, text)
	fmt.Fprintf(&b, "     | %s^\n", caretPadding(text, col))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// caretPadding keeps tabs so the caret lines up with the column.
func caretPadding(text string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range text {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
