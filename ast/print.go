package ast

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// Print writes a human-readable representation of the given nodes
func Print(w io.Writer, nodes ...*Node) {
	for _, n := range nodes {
		printLevel(w, n, 0)
	}
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeExpression:
		fmt.Fprintf(w, "%v\n", n.Token())
		for _, child := range n.children {
			printLevel(w, child, level+1)
		}

	case NodeTypeSymbol, NodeTypeString:
		fmt.Fprintf(w, "%q %v\n", n.Value(), n.Token())

	default:
		panic("unknown node type")
	}
}

// PrintXML writes the given nodes as an indented XML-like document
func PrintXML(w io.Writer, nodes ...*Node) {
	for _, n := range nodes {
		printXMLLevel(w, n, 0)
	}
}

func printXMLLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("  ", level)
	if n.IsVector() {
		fmt.Fprintf(w, "%s<%s>\n", indent, n.Type())
		for _, child := range n.children {
			printXMLLevel(w, child, level+1)
		}
		fmt.Fprintf(w, "%s</%s>\n", indent, n.Type())
		return
	}
	fmt.Fprintf(w, "%s<%s>%s</%s>\n", indent, n.Type(), html.EscapeString(n.Value()), n.Type())
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Encode transforms nodes into their canonical text representation, which
// tokenizes and parses back into the same tree.
func Encode(nodes ...*Node) []byte {
	var b strings.Builder
	encodeList(&b, nodes)
	return []byte(b.String())
}

func encodeList(b *strings.Builder, nodes []*Node) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		encodeNode(b, n)
	}
}

func encodeNode(b *strings.Builder, n *Node) {
	switch n.Type() {
	case NodeTypeExpression:
		b.WriteByte('(')
		encodeList(b, n.children)
		b.WriteByte(')')

	case NodeTypeString:
		b.WriteByte('"')
		stringEscaper.WriteString(b, n.Value())
		b.WriteByte('"')

	case NodeTypeSymbol:
		b.WriteString(n.Value())

	default:
		panic("unknown node type")
	}
}
