package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/xiam/lispm/ast"
	"github.com/xiam/lispm/lexer"
)

const (
	formatText  = "text"
	formatTree  = "tree"
	formatSexpr = "sexpr"
	formatXML   = "xml"
	formatYAML  = "yaml"
	formatDump  = "dump"
)

var (
	tokenFormats = []string{formatText, formatYAML, formatDump}
	treeFormats  = []string{formatTree, formatSexpr, formatXML, formatYAML, formatDump}
)

func formatNames() string {
	return "tokens: " + strings.Join(tokenFormats, ", ") + "; tree: " + strings.Join(treeFormats, ", ")
}

func isOneOf(format string, formats []string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

func isTokenFormat(format string) bool {
	return isOneOf(format, tokenFormats)
}

func isTreeFormat(format string) bool {
	return isOneOf(format, treeFormats)
}

type yamlToken struct {
	Type  string  `yaml:"type"`
	Value *string `yaml:"value,omitempty"`
	Line  int     `yaml:"line"`
	Col   int     `yaml:"col"`
}

type yamlNode struct {
	Type     string      `yaml:"type"`
	Value    *string     `yaml:"value,omitempty"`
	Children []*yamlNode `yaml:"children,omitempty"`
	Line     int         `yaml:"line"`
	Col      int         `yaml:"col"`
}

func toYAMLToken(tok lexer.Token) yamlToken {
	line, col := tok.Pos()
	yt := yamlToken{Type: tok.Type().String(), Line: line, Col: col}
	if tok.Type().HasValue() {
		v := tok.Text()
		yt.Value = &v
	}
	return yt
}

func toYAMLNode(n *ast.Node) *yamlNode {
	line, col := n.Token().Pos()
	yn := &yamlNode{Type: n.Type().String(), Line: line, Col: col}
	if n.IsValue() {
		v := n.Value()
		yn.Value = &v
		return yn
	}
	yn.Children = []*yamlNode{}
	for _, child := range n.List() {
		yn.Children = append(yn.Children, toYAMLNode(child))
	}
	return yn
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeTokens(w io.Writer, format string, tokens []lexer.Token) error {
	switch format {
	case formatYAML:
		out := make([]yamlToken, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, toYAMLToken(tok))
		}
		return writeYAML(w, out)

	case formatDump:
		spew.Fdump(w, tokens)
		return nil
	}

	for _, tok := range tokens {
		line, col := tok.Pos()
		if tok.Type().HasValue() {
			fmt.Fprintf(w, "%d:%d\t%v\t%q\n", line, col, tok.Type(), tok.Text())
			continue
		}
		fmt.Fprintf(w, "%d:%d\t%v\n", line, col, tok.Type())
	}
	return nil
}

func writeTree(w io.Writer, format string, nodes []*ast.Node) error {
	switch format {
	case formatSexpr:
		_, err := fmt.Fprintf(w, "%s\n", ast.Encode(nodes...))
		return err

	case formatXML:
		ast.PrintXML(w, nodes...)
		return nil

	case formatYAML:
		out := make([]*yamlNode, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, toYAMLNode(n))
		}
		return writeYAML(w, out)

	case formatDump:
		spew.Fdump(w, nodes)
		return nil
	}

	ast.Print(w, nodes...)
	return nil
}
