package writer

import (
	"bytes"
	"testing"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, n ast.Node, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	cw := New(&buf, opts...)
	require.NoError(t, cw.Write(n, NewContext(0)))
	require.NoError(t, cw.Flush())
	return buf.String()
}

func program(t *testing.T, root ast.Node, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteCode(&buf, root, opts...))
	return buf.String()
}

func num(v string) *ast.Int    { return &ast.Int{Value: v} }
func lvar(n string) *ast.Lvar  { return &ast.Lvar{Name: n} }
func cnst(n string) *ast.Const { return &ast.Const{Name: n} }

func str(v string) *ast.Str {
	return &ast.Str{Value: v, Begin: ast.Span(0, 1), End: ast.Span(0, 1)}
}

func sym(n string) *ast.Sym {
	return &ast.Sym{Name: n, Begin: ast.Span(0, 1)}
}

func seq(stmts ...ast.Node) *ast.Begin {
	return &ast.Begin{Statements: stmts}
}

// call builds a receiverless call written without parentheses, like `p 0`.
func call(name string, args ...ast.Node) *ast.Send {
	return &ast.Send{MethodName: name, Args: args}
}

// method builds `recv.name` or `recv.name(args)`.
func method(recv ast.Node, name string, args ...ast.Node) *ast.Send {
	s := &ast.Send{Recv: recv, MethodName: name, Args: args, Dot: ast.Span(0, 1)}
	if len(args) > 0 {
		s.Begin, s.End = ast.Span(0, 1), ast.Span(0, 1)
	}
	return s
}

func args(params ...ast.Node) *ast.Args {
	return &ast.Args{Args: params}
}

func label(key string, value ast.Node) *ast.Pair {
	return &ast.Pair{Key: &ast.Sym{Name: key}, Value: value, Operator: ast.Loc{Begin: 3, End: 4}}
}
