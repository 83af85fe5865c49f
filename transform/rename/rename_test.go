package rename

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lvar(name string) *ast.Lvar { return &ast.Lvar{Name: name} }

func arg(name string) *ast.Arg { return &ast.Arg{Name: name} }

func call(name string, args ...ast.Node) *ast.Send {
	return &ast.Send{MethodName: name, Args: args}
}

func plus(lhs, rhs ast.Node) *ast.Send {
	return &ast.Send{Recv: lhs, MethodName: "+", Args: []ast.Node{rhs}}
}

func block(recv ast.Node, params []ast.Node, body ast.Node) *ast.Block {
	var args ast.Node
	if params != nil {
		args = &ast.Args{Args: params}
	}
	return &ast.Block{
		Call:  &ast.Send{Recv: recv, MethodName: "each", Dot: ast.Span(0, 1)},
		Args:  args,
		Body:  body,
		Begin: ast.Loc{Begin: 0, End: 1},
	}
}

func render(t *testing.T, root ast.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, writer.WriteCode(&buf, root))
	return buf.String()
}

func TestMethods(t *testing.T) {
	tests := []struct {
		name string
		root ast.Node
		want string
	}{
		{
			name: "parameters and references",
			root: &ast.Def{
				Name: "sum",
				Args: &ast.Args{Args: []ast.Node{arg("foo"), arg("bar")}},
				Body: &ast.Begin{Statements: []ast.Node{
					call("p", lvar("foo")),
					plus(lvar("foo"), lvar("bar")),
				}},
			},
			want: "def sum(a, b)\n  p a\n  a + b\nend\n",
		},
		{
			name: "locals continue the sequence",
			root: &ast.Def{
				Name: "run",
				Args: &ast.Args{Args: []ast.Node{arg("input")}},
				Body: &ast.Begin{Statements: []ast.Node{
					&ast.Lvasgn{Name: "total", Value: lvar("input")},
					&ast.OpAsgn{Recv: &ast.Lvasgn{Name: "total"}, Operator: "+", Value: &ast.Int{Value: "1"}},
					lvar("total"),
				}},
			},
			want: "def run(a)\n  b = a\n  b += 1\n  b\nend\n",
		},
		{
			name: "block locals do not leak",
			root: &ast.Def{
				Name: "run",
				Args: &ast.Args{Args: []ast.Node{arg("items"), arg("factor")}},
				Body: &ast.Begin{Statements: []ast.Node{
					block(lvar("items"), []ast.Node{&ast.Procarg0{Args: []ast.Node{arg("item")}}},
						&ast.Lvasgn{Name: "scaled", Value: plus(lvar("item"), lvar("factor"))}),
					&ast.Lvasgn{Name: "result", Value: lvar("factor")},
				}},
			},
			want: "def run(a, b)\n  a.each { |c| d = c + b }\n  c = b\nend\n",
		},
		{
			name: "every parameter kind",
			root: &ast.Def{
				Name: "all",
				Args: &ast.Args{Args: []ast.Node{
					arg("first"),
					&ast.Optarg{Name: "second", Default: lvar("first")},
					&ast.Restarg{Name: "rest"},
					&ast.Kwarg{Name: "key"},
					&ast.Kwoptarg{Name: "opt", Default: lvar("key")},
					&ast.Kwrestarg{Name: "opts"},
					&ast.Blockarg{Name: "blk"},
				}},
				Body: lvar("blk"),
			},
			want: "def all(a, b = a, *c, d:, e: d, **f, &g)\n  g\nend\n",
		},
		{
			name: "anonymous parameters stay anonymous",
			root: &ast.Def{
				Name: "fwd",
				Args: &ast.Args{Args: []ast.Node{&ast.Restarg{}, &ast.Kwrestarg{}, &ast.Blockarg{}, arg("x")}},
				Body: lvar("x"),
			},
			want: "def fwd(*, **, &, a)\n  a\nend\n",
		},
		{
			name: "methods have independent tables",
			root: &ast.Begin{Statements: []ast.Node{
				&ast.Def{Name: "one", Args: &ast.Args{Args: []ast.Node{arg("x"), arg("y")}}, Body: lvar("y")},
				&ast.Def{Name: "two", Args: &ast.Args{Args: []ast.Node{arg("y")}}, Body: lvar("y")},
			}},
			want: "def one(a, b)\n  b\nend\ndef two(a)\n  a\nend\n",
		},
		{
			name: "singleton method receiver uses the outer table",
			root: &ast.Begin{Statements: []ast.Node{
				&ast.Lvasgn{Name: "obj", Value: &ast.Nil{}},
				&ast.Defs{Definee: lvar("obj"), Name: "m", Args: &ast.Args{Args: []ast.Node{arg("v")}}, Body: lvar("v")},
			}},
			want: "a = nil\ndef a.m(a)\n  a\nend\n",
		},
		{
			name: "class bodies share the enclosing table",
			root: &ast.Class{
				Name: &ast.Const{Name: "Foo"},
				Body: &ast.Begin{Statements: []ast.Node{
					&ast.Lvasgn{Name: "helper", Value: &ast.Int{Value: "1"}},
					&ast.Def{Name: "m", Args: &ast.Args{Args: []ast.Node{arg("value")}}, Body: lvar("value")},
				}},
			},
			want: "class Foo\n  a = 1\n  def m(a)\n    a\n  end\nend\n",
		},
		{
			name: "block shadow arguments",
			root: &ast.Def{
				Name: "m",
				Args: &ast.Args{Args: []ast.Node{arg("list")}},
				Body: block(lvar("list"), []ast.Node{arg("x"), &ast.Shadowarg{Name: "tmp"}}, lvar("tmp")),
			},
			want: "def m(a)\n  a.each { |b; c| c }\nend\n",
		},
		{
			name: "destructuring block parameters",
			root: block(lvar("pairs"), []ast.Node{&ast.Procarg0{
				Args:  []ast.Node{arg("key"), arg("value")},
				Begin: ast.Span(0, 1),
				End:   ast.Span(5, 6),
			}}, lvar("value")),
			want: "a.each { |(b, c)| c }\n",
		},
		{
			name: "rescue variables",
			root: &ast.Def{
				Name: "m",
				Body: &ast.Rescue{
					Body: call("work"),
					RescueBodies: []ast.Node{&ast.RescueBody{
						ExcVar: &ast.Lvasgn{Name: "error"},
						Body:   call("p", lvar("error")),
					}},
				},
			},
			want: "def m\n  work\nrescue => a\n  p a\nend\n",
		},
		{
			name: "interpolated locals",
			root: &ast.Def{
				Name: "greet",
				Args: &ast.Args{Args: []ast.Node{arg("name")}},
				Body: &ast.Dstr{
					Parts: []ast.Node{
						&ast.Str{Value: "hi "},
						&ast.Begin{Statements: []ast.Node{lvar("name")}, Begin: ast.Span(0, 2), End: ast.Span(0, 1)},
					},
					Begin: ast.Span(0, 1),
					End:   ast.Span(0, 1),
				},
			},
			want: "def greet(a)\n  \"hi #{a}\"\nend\n",
		},
		{
			name: "pattern binders are never renamed",
			root: &ast.Def{
				Name: "m",
				Args: &ast.Args{Args: []ast.Node{arg("v")}},
				Body: &ast.Begin{Statements: []ast.Node{
					&ast.MatchPattern{Value: lvar("v"), Pattern: &ast.MatchVar{Name: "found"}},
					lvar("found"),
					&ast.Lvasgn{Name: "other", Value: &ast.Nil{}},
				}},
			},
			want: "def m(a)\n  a => found\n  found\n  c = nil\nend\n",
		},
		{
			name: "numbered block parameters",
			root: &ast.Numblock{
				Call:    &ast.Send{Recv: lvar("list"), MethodName: "map", Dot: ast.Span(0, 1)},
				NumArgs: 1,
				Body:    plus(lvar("_1"), lvar("offset")),
			},
			want: "a.map { _1 + k }\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Methods(tt.root)
			assert.Equal(t, tt.want, render(t, tt.root))
		})
	}
}

func TestMethodsExhaustedAliases(t *testing.T) {
	params := make([]ast.Node, 0, 28)
	for i := 0; i < 28; i++ {
		params = append(params, arg(fmt.Sprintf("p%d", i)))
	}
	last, overflow := lvar("p27"), lvar("p26")
	def := &ast.Def{
		Name: "many",
		Args: &ast.Args{Args: params},
		Body: &ast.Begin{Statements: []ast.Node{last, overflow, lvar("p25")}},
	}

	Methods(def)

	assert.Equal(t, "a", params[0].(*ast.Arg).Name)
	assert.Equal(t, "z", params[25].(*ast.Arg).Name)
	assert.Equal(t, "p26", params[26].(*ast.Arg).Name)
	assert.Equal(t, "p27", params[27].(*ast.Arg).Name)
	assert.Equal(t, "p27", last.Name)
	assert.Equal(t, "p26", overflow.Name)
}

func TestTable(t *testing.T) {
	table := NewTable()
	assert.Equal(t, "a", table.Resolve("x"))
	assert.Equal(t, "b", table.Resolve("y"))
	assert.Equal(t, "a", table.Resolve("x"))

	table.Keep("kept")
	assert.Equal(t, "kept", table.Resolve("kept"))
	assert.Equal(t, "d", table.Resolve("z"), "kept names still take a slot")

	clone := table.Clone()
	assert.Equal(t, "e", clone.Resolve("w"))
	assert.NotContains(t, table, "w")
	assert.Equal(t, "e", table.Resolve("v"))
}
