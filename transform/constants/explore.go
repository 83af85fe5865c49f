package constants

import (
	"fmt"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/internal/comment"
	"github.com/rubywriter/rubywriter/internal/util"
)

// maxResolveDepth bounds how many times a resolver may replace a call with
// another call before the assignment is dropped.
const maxResolveDepth = 8

// Explore records the literal constants declared in node into m. Modules and
// classes become nested maps keyed by their qualified name, and are removed
// again when they declare no constants. Calls assigned to a constant are
// passed to resolve, which may return a literal to record instead. A nil
// resolve drops every call.
func Explore(m Map, node ast.Node, resolve Resolver) {
	switch n := node.(type) {
	case *ast.Module:
		exploreModule(m, n.Name, n.Body, resolve)
	case *ast.Class:
		exploreModule(m, n.Name, n.Body, resolve)
	default:
		exploreBody(m, node, resolve)
	}
}

func exploreModule(m Map, name, body ast.Node, resolve Resolver) {
	key := qualifiedName(name)
	v, ok := m[key]
	if !ok || !v.IsModule() {
		v = &Value{Module: NewMap()}
		m[key] = v
	}
	exploreBody(v.Module, body, resolve)
	if len(v.Module) == 0 {
		delete(m, key)
	}
}

func exploreBody(m Map, body ast.Node, resolve Resolver) {
	switch n := body.(type) {
	case *ast.Casgn:
		handleCasgn(m, n, n.Value, resolve, 0)
	case *ast.Module, *ast.Class:
		Explore(m, n, resolve)
	case *ast.Begin:
		for _, stmt := range n.Statements {
			exploreBody(m, stmt, resolve)
		}
	}
}

func handleCasgn(m Map, asgn *ast.Casgn, value ast.Node, resolve Resolver, depth int) {
	switch v := value.(type) {
	case *ast.Int, *ast.Float, *ast.Str, *ast.Sym, *ast.Nil, *ast.True, *ast.False:
		record(m, asgn, value)
	case *ast.Send:
		if resolve == nil || depth >= maxResolveDepth {
			return
		}
		handleCasgn(m, asgn, resolve(v), resolve, depth+1)
	}
}

// record stores a literal. Reassigning a constant is allowed in Ruby with a
// warning; the later value wins here too.
func record(m Map, asgn *ast.Casgn, value ast.Node) {
	key := qualifiedName(asgn)
	if previous, ok := m[key]; ok && !previous.IsModule() && !util.EqualExpr(previous.Literal, value) {
		comment.Warn(asgn.Expression.Begin,
			fmt.Sprintf("already initialized constant %s", key),
			fmt.Sprintf("previous definition was %s", literalSource(previous.Literal)),
		)
	}
	m[key] = &Value{Literal: value}
}

// qualifiedName returns the name of a constant or constant assignment as
// written, including its scope.
func qualifiedName(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Const:
		return scopedName(n.Scope, n.Name)
	case *ast.Casgn:
		return scopedName(n.Scope, n.Name)
	default:
		return ""
	}
}

func scopedName(scope ast.Node, name string) string {
	if scope == nil {
		return name
	}
	return qualifiedName(scope) + "::" + name
}
