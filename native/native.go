// Package native defines the contract between the syntax tree and the
// host-provided functions that an evaluator exposes to programs.
package native

import (
	"github.com/xiam/lispm/ast"
)

// Evaluate renders a node into text.
type Evaluate func(node *ast.Node) (string, error)

// Expression is a host-provided function. It receives the evaluator and the
// unevaluated argument nodes, and decides which of them to evaluate.
type Expression func(eval Evaluate, arguments []*ast.Node) (string, error)

// Module maps a namespace to its exported expressions.
type Module map[string]map[string]Expression

// Lookup returns the expression exported as name under namespace.
func (m Module) Lookup(namespace, name string) (Expression, bool) {
	exports, ok := m[namespace]
	if !ok {
		return nil, false
	}
	fn, ok := exports[name]
	return fn, ok
}

// Merge returns a new module holding the exports of all the given modules,
// later modules win on name clashes.
func Merge(modules ...Module) Module {
	merged := Module{}
	for _, m := range modules {
		for namespace, exports := range m {
			if merged[namespace] == nil {
				merged[namespace] = map[string]Expression{}
			}
			for name, fn := range exports {
				merged[namespace][name] = fn
			}
		}
	}
	return merged
}
