package parser

import (
	"github.com/xiam/lispm/ast"
	"github.com/xiam/lispm/lexer"
)

// Parse folds a flat sequence of tokens into a sequence of top-level nodes.
// Every bracketed group becomes an expression node.
func Parse(tokens []lexer.Token) ([]*ast.Node, error) {
	return build(tokens)
}

// ParseString tokenizes and parses the given text.
func ParseString(in string) ([]*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func build(tokens []lexer.Token) ([]*ast.Node, error) {
	nodes := []*ast.Node{}

	for i := 0; i < len(tokens); {
		tok := tokens[i]

		switch tok.Type() {
		case lexer.TokenSymbol, lexer.TokenString:
			node, err := ast.FromToken(tok)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
			i++

		case lexer.TokenOpenBracket:
			body := tokens[i+1:]
			end, ok := findCloseBracket(body)
			if !ok {
				return nil, &SyntaxError{Err: ErrUnclosedBracket, Token: tok}
			}
			children, err := build(body[:end])
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, ast.NewExpression(tok, children...))
			i += end + 2

		case lexer.TokenCloseBracket:
			// Groups handed to build are always balanced, so this only
			// happens at the top level.
			return nil, &SyntaxError{Err: ErrSuperfluousBracket, Token: tok}

		default:
			return nil, &SyntaxError{Err: ErrUnexpectedToken, Token: tok}
		}
	}

	return nodes, nil
}

// findCloseBracket returns the index of the close bracket that matches an
// open bracket placed right before tokens.
func findCloseBracket(tokens []lexer.Token) (int, bool) {
	depth := 0
	for i := range tokens {
		switch tokens[i].Type() {
		case lexer.TokenOpenBracket:
			depth++
		case lexer.TokenCloseBracket:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return -1, false
}
