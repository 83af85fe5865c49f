package util

import (
	"reflect"

	"github.com/rubywriter/rubywriter/ast"
)

// EqualExpr reports whether two expressions have the same structure and
// literal values. Presence markers are ignored, so `1` and `(1)` inside an
// array compare equal, while `:a` and `"a"` do not.
func EqualExpr(a, b ast.Node) bool {
	return compareExpr(a, b)
}

func compareExpr(a, b ast.Node) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch a := a.(type) {
	case *ast.Int:
		return a.Value == b.(*ast.Int).Value
	case *ast.Float:
		return a.Value == b.(*ast.Float).Value
	case *ast.Rational:
		return a.Value == b.(*ast.Rational).Value
	case *ast.Complex:
		return a.Value == b.(*ast.Complex).Value
	case *ast.Str:
		return a.Value == b.(*ast.Str).Value
	case *ast.Sym:
		return a.Name == b.(*ast.Sym).Name
	case *ast.True, *ast.False, *ast.Nil, *ast.Self, *ast.Cbase:
		return true
	case *ast.Lvar:
		return a.Name == b.(*ast.Lvar).Name
	case *ast.Ivar:
		return a.Name == b.(*ast.Ivar).Name
	case *ast.Const:
		b := b.(*ast.Const)
		return a.Name == b.Name && compareExpr(a.Scope, b.Scope)
	case *ast.Send:
		b := b.(*ast.Send)
		return a.MethodName == b.MethodName && compareExpr(a.Recv, b.Recv) && compareList(a.Args, b.Args)
	case *ast.Array:
		return compareList(a.Elements, b.(*ast.Array).Elements)
	case *ast.Hash:
		return compareList(a.Pairs, b.(*ast.Hash).Pairs)
	case *ast.Pair:
		b := b.(*ast.Pair)
		return compareExpr(a.Key, b.Key) && compareExpr(a.Value, b.Value)
	case *ast.Irange:
		b := b.(*ast.Irange)
		return compareExpr(a.Left, b.Left) && compareExpr(a.Right, b.Right)
	case *ast.Erange:
		b := b.(*ast.Erange)
		return compareExpr(a.Left, b.Left) && compareExpr(a.Right, b.Right)
	case *ast.Splat:
		return compareExpr(a.Value, b.(*ast.Splat).Value)
	case *ast.Begin:
		return compareList(a.Statements, b.(*ast.Begin).Statements)
	default:
		return false
	}
}

func compareList(a, b []ast.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}
