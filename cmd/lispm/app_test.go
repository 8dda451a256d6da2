package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var out, errOut bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out, &errOut)
	err := app.Run(append([]string{"lispm"}, args...))
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "program.lisp")
	require.NoError(t, os.WriteFile(name, []byte(src), 0644))
	return name
}

func TestTokensCommand(t *testing.T) {
	out, _, err := runApp(t, `(+ 1 "a")`, "tokens")
	require.NoError(t, err)

	expected := "1:1\topen_bracket\n" +
		"1:2\tsymbol\t\"+\"\n" +
		"1:4\tsymbol\t\"1\"\n" +
		"1:6\tstring\t\"a\"\n" +
		"1:9\tclose_bracket\n"
	assert.Equal(t, expected, out)
}

func TestTokensYAML(t *testing.T) {
	out, _, err := runApp(t, `(a "")`, "tokens", "--format", "yaml")
	require.NoError(t, err)

	var tokens []yamlToken
	require.NoError(t, yaml.Unmarshal([]byte(out), &tokens))
	require.Len(t, tokens, 4)

	assert.Equal(t, "open_bracket", tokens[0].Type)
	assert.Nil(t, tokens[0].Value)
	require.NotNil(t, tokens[2].Value)
	assert.Equal(t, "", *tokens[2].Value)
	assert.Equal(t, 4, tokens[2].Col)
}

func TestTreeCommand(t *testing.T) {
	name := writeSource(t, "(+ 1 (- 10 2)) ; sum\n(@concat \"a\\\"b\")")

	out, _, err := runApp(t, "", "tree", "-f", "sexpr", name)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 (- 10 2)) (@concat \"a\\\"b\")\n", out)

	out, _, err = runApp(t, "", "tree", name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(expression): (:open_bracket [1 1])\n"))

	out, _, err = runApp(t, "", "tree", "--format", "xml", name)
	require.NoError(t, err)
	assert.Contains(t, out, "<symbol>10</symbol>")

	out, _, err = runApp(t, "", "tree", "--format", "dump", name)
	require.NoError(t, err)
	assert.Contains(t, out, "ast.Node")
}

func TestTreeYAML(t *testing.T) {
	out, _, err := runApp(t, `(+ 1 (x "y")) z`, "tree", "--format", "yaml")
	require.NoError(t, err)

	var nodes []yamlNode
	require.NoError(t, yaml.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 2)

	assert.Equal(t, "expression", nodes[0].Type)
	require.Len(t, nodes[0].Children, 3)
	assert.Equal(t, "1", *nodes[0].Children[1].Value)
	assert.Equal(t, "string", nodes[0].Children[2].Children[1].Type)
	assert.Equal(t, "symbol", nodes[1].Type)
	assert.Equal(t, 15, nodes[1].Col)
}

func TestTreeSyntaxError(t *testing.T) {
	name := writeSource(t, "(a b\n  (c)")

	_, errOut, err := runApp(t, "", "tree", name)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidProgram))
	assert.Contains(t, errOut, "SYNTAX ERROR in "+name+" at 1:1: unclosed bracket")
}

func TestTokensLexicalError(t *testing.T) {
	_, errOut, err := runApp(t, `(a "b`, "tokens")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidProgram))
	assert.Contains(t, errOut, "LEXICAL ERROR in - at 1:4: unterminated string")
}

func TestUnsupportedFormat(t *testing.T) {
	_, _, err := runApp(t, `a`, "tree", "--format", "json")
	assert.Error(t, err)

	_, _, err = runApp(t, `a`, "tokens", "--format", "sexpr")
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, _, err := runApp(t, "", "tree", filepath.Join(t.TempDir(), "missing.lisp"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "reading")
}

func TestVerbose(t *testing.T) {
	_, errOut, err := runApp(t, `(a)`, "--verbose", "tree")
	require.NoError(t, err)
	assert.Contains(t, errOut, `msg="read source"`)
	assert.Contains(t, errOut, `msg=parsed`)

	_, errOut, err = runApp(t, `(a)`, "tree")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "read source")
}

func TestFormatEnv(t *testing.T) {
	t.Setenv("LISPM_TREE_FORMAT", "sexpr")
	t.Setenv("LISPM_TOKENS_FORMAT", "yaml")

	out, _, err := runApp(t, `(a b)`, "tree")
	require.NoError(t, err)
	assert.Equal(t, "(a b)\n", out)

	out, _, err = runApp(t, `(a b)`, "tokens")
	require.NoError(t, err)

	var tokens []yamlToken
	require.NoError(t, yaml.Unmarshal([]byte(out), &tokens))
	assert.Len(t, tokens, 4)

	// the flag wins over the environment
	out, _, err = runApp(t, `(a b)`, "tokens", "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1:1\topen_bracket\n"))
}

func TestTreeFormatEnvDoesNotLeakIntoTokens(t *testing.T) {
	t.Setenv("LISPM_TREE_FORMAT", "sexpr")

	out, _, err := runApp(t, `(a b)`, "tokens")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1:1\topen_bracket\n"))
}

func TestVerboseEnv(t *testing.T) {
	t.Setenv("LISPM_VERBOSE", "true")

	_, errOut, err := runApp(t, `(a)`, "tree")
	require.NoError(t, err)
	assert.Contains(t, errOut, `msg="read source"`)
}
