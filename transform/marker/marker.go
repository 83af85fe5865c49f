// Package marker injects marker string statements into module bodies.
package marker

import (
	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/internal/codegen"
)

// InsertInModule appends a quoted string statement holding value to the body
// of root when root is a module. A body made of a single class is wrapped into
// a statement sequence first. Other roots and bodies are left alone.
//
// InsertInModule mutates the tree in place and returns root.
func InsertInModule(root ast.Node, value string) ast.Node {
	module, ok := root.(*ast.Module)
	if !ok {
		return root
	}

	switch body := module.Body.(type) {
	case *ast.Begin:
		if codegen.IsStatements(body) {
			codegen.AppendStatements(body, codegen.MarkerString(value))
		}
	case *ast.Class:
		seq := codegen.Statements(body)
		codegen.AppendStatements(seq, codegen.MarkerString(value))
		module.Body = seq
	}
	return root
}
