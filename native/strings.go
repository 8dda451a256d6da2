package native

import (
	"strings"

	"github.com/xiam/lispm/ast"
)

// Strings exports the string helpers under the "@" namespace.
func Strings() Module {
	return Module{
		"@": {
			"concat": Concat,
		},
	}
}

// Concat evaluates every argument in order and joins the results.
func Concat(eval Evaluate, arguments []*ast.Node) (string, error) {
	var b strings.Builder
	for _, arg := range arguments {
		s, err := eval(arg)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
