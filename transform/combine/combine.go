// Package combine merges repeated declarations of the same class or module
// into their first declaration.
package combine

import (
	"fmt"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/internal/codegen"
)

// knownModules maps a qualified constant name to the first declaration seen
// with that name in the current statement sequence.
type knownModules map[string]ast.Node

// Modules combines class and module declarations that share a qualified name
// within each statement sequence of root. The body of every later declaration
// is appended to the first one, and the later declaration is removed.
// Nested sequences are combined independently, one scope at a time.
//
// Modules mutates the tree in place and returns root.
func Modules(root ast.Node) ast.Node {
	combine(root)
	return root
}

func combine(node ast.Node) {
	switch n := node.(type) {
	case *ast.Begin:
		known := knownModules{}
		kept := n.Statements[:0]
		for _, stmt := range n.Statements {
			switch stmt.(type) {
			case *ast.Class, *ast.Module:
				if known.add(stmt) {
					kept = append(kept, stmt)
				}
			default:
				kept = append(kept, stmt)
			}
		}
		clear(n.Statements[len(kept):])
		n.Statements = kept
	case *ast.Class:
		n.Body = codegen.Statements(n.Body)
		combine(n.Body)
	case *ast.Module:
		n.Body = codegen.Statements(n.Body)
		combine(n.Body)
	}
}

// add registers a class or module declaration. It reports whether the
// declaration is the first with its name; otherwise its body was merged into
// the first one and the declaration should be dropped.
func (known knownModules) add(decl ast.Node) bool {
	name, body := declaration(decl)
	qualified := QualifiedName(name)

	existing, ok := known[qualified]
	if !ok {
		combine(decl)
		known[qualified] = decl
		return true
	}

	_, existingBody := declaration(existing)
	combineBodies(statements(existingBody), statements(body))
	return false
}

// declaration returns the name node and normalized body of a class or module.
func declaration(decl ast.Node) (ast.Node, ast.Node) {
	switch n := decl.(type) {
	case *ast.Class:
		n.Body = codegen.Statements(n.Body)
		return n.Name, n.Body
	case *ast.Module:
		n.Body = codegen.Statements(n.Body)
		return n.Name, n.Body
	default:
		panic(fmt.Sprintf("unexpected %s node while getting body from existing module", decl.Kind()))
	}
}

// statements returns a normalized body. Combining is only defined over
// statement sequences, so any other shape is a programming error.
func statements(body ast.Node) *ast.Begin {
	if !codegen.IsStatements(body) {
		panic("failed to get normalized body from module")
	}
	return body.(*ast.Begin)
}

// combineBodies appends the statements of body to existing. A bare
// visibility call anywhere in existing would otherwise change the visibility
// of the appended methods, so a `public` call is inserted first.
func combineBodies(existing, body *ast.Begin) {
	for _, stmt := range existing.Statements {
		if codegen.IsVisibilityReset(stmt) {
			existing.Statements = append(existing.Statements, codegen.PublicCall())
			break
		}
	}
	existing.Statements = append(existing.Statements, body.Statements...)
	body.Statements = nil
}

// QualifiedName returns the constant path of a class or module name, such as
// `A::B`. A top level scope contributes an empty segment, so `::A` keys
// differently from `A`.
func QualifiedName(name ast.Node) string {
	switch n := name.(type) {
	case *ast.Const:
		if n.Scope == nil {
			return n.Name
		}
		return QualifiedName(n.Scope) + "::" + n.Name
	case *ast.Cbase:
		return ""
	default:
		panic(fmt.Sprintf("unexpected %s node as constant name", name.Kind()))
	}
}
