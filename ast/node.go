package ast

import (
	"fmt"

	"github.com/xiam/lispm/lexer"
)

// Node represents an element of the AST. Nodes are immutable: an expression
// owns a private copy of its children.
type Node struct {
	nt  NodeType
	tok lexer.Token

	v        string
	children []*Node
}

// NewSymbol creates a node of type "symbol"
func NewSymbol(tok lexer.Token, v string) *Node {
	return &Node{nt: NodeTypeSymbol, tok: tok, v: v}
}

// NewString creates a node of type "string"
func NewString(tok lexer.Token, v string) *Node {
	return &Node{nt: NodeTypeString, tok: tok, v: v}
}

// NewExpression creates a node of type "expression" wrapping the given
// children. tok is the opening bracket.
func NewExpression(tok lexer.Token, children ...*Node) *Node {
	list := make([]*Node, len(children))
	copy(list, children)
	return &Node{nt: NodeTypeExpression, tok: tok, children: list}
}

// FromToken creates a value node out of a symbol or string token.
func FromToken(tok lexer.Token) (*Node, error) {
	switch tok.Type() {
	case lexer.TokenSymbol:
		return NewSymbol(tok, tok.Text()), nil
	case lexer.TokenString:
		return NewString(tok, tok.Text()), nil
	}
	return nil, fmt.Errorf("token %v has no value", tok)
}

// Token returns the token associated to the node
func (n *Node) Token() lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Value returns the text of a symbol or string node, expressions have none.
func (n *Node) Value() string {
	return n.v
}

// List returns a copy of the children of the node
func (n *Node) List() []*Node {
	if !n.IsVector() {
		return nil
	}
	list := make([]*Node, len(n.children))
	copy(list, n.children)
	return list
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Equal compares type, value and children recursively. Token positions are
// ignored.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.nt != o.nt || n.v != o.v || len(n.children) != len(o.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %q", n.nt, n.v)
}

// Depth returns the maximum expression nesting depth of the given nodes.
func Depth(nodes ...*Node) int {
	max := 0
	for _, n := range nodes {
		if !n.IsVector() {
			continue
		}
		if d := 1 + Depth(n.children...); d > max {
			max = d
		}
	}
	return max
}
