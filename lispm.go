// Package lispm turns source text written in a minimal Lisp-like notation
// into an abstract syntax tree.
//
//	nodes, err := lispm.Parse(`(@concat "hello " name)`)
//
// The work is split in two stages: package lexer converts text into tokens
// and package parser folds tokens into nodes (see package ast).
package lispm

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/xiam/lispm/ast"
	"github.com/xiam/lispm/lexer"
	"github.com/xiam/lispm/parser"
)

// Reader parses a complete program read from an io.Reader.
type Reader struct {
	r io.Reader
}

// Parse tokenizes and parses the given text. The result is the ordered
// sequence of top-level nodes.
func Parse(in string) ([]*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// ParseBytes is like Parse but takes an array of bytes.
func ParseBytes(in []byte) ([]*ast.Node, error) {
	return Parse(string(in))
}

// NewReader creates a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads the whole input and parses it.
func (r *Reader) Parse() ([]*ast.Node, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.r); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return ParseBytes(buf.Bytes())
}
