package writer

import (
	"testing"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/stretchr/testify/assert"
)

func TestWriteLiterals(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{name: "integer", node: num("42"), want: "42"},
		{name: "negative integer", node: num("-7"), want: "-7"},
		{name: "float", node: &ast.Float{Value: "1.5"}, want: "1.5"},
		{name: "rational", node: &ast.Rational{Value: "3r"}, want: "3r"},
		{name: "complex", node: &ast.Complex{Value: "2i"}, want: "2i"},
		{name: "true", node: &ast.True{}, want: "true"},
		{name: "false", node: &ast.False{}, want: "false"},
		{name: "nil", node: &ast.Nil{}, want: "nil"},
		{name: "self", node: &ast.Self{}, want: "self"},
		{name: "file", node: &ast.File{}, want: "__FILE__"},
		{name: "line", node: &ast.Line{}, want: "__LINE__"},
		{name: "encoding", node: &ast.Encoding{}, want: "__ENCODING__"},
		{name: "quoted string", node: str("hello"), want: `"hello"`},
		{
			name: "string escapes",
			node: str("a\"b\\c#{x} #@y # z\n"),
			want: `"a\"b\\c\#{x} \#@y # z\n"`,
		},
		{
			name: "control characters",
			node: str("\x00 \x001 \a\b\v\f\x1b \x01\x1f\x7f"),
			want: `"\0 \x001 \a\b\v\f\e \x01\x1F\x7F"`,
		},
		{name: "string fragment without quotes", node: &ast.Str{Value: "raw"}, want: "raw"},
		{name: "symbol", node: sym("foo"), want: ":foo"},
		{
			name: "quoted symbol",
			node: &ast.Sym{Name: "foo bar", Begin: ast.Span(0, 2), End: ast.Span(9, 10)},
			want: `:"foo bar"`,
		},
		{name: "bare symbol", node: &ast.Sym{Name: "foo"}, want: "foo"},
		{
			name: "interpolated string",
			node: &ast.Dstr{
				Parts: []ast.Node{
					&ast.Str{Value: "hello "},
					&ast.Begin{Statements: []ast.Node{lvar("name")}, Begin: ast.Span(0, 2), End: ast.Span(0, 1)},
					&ast.Str{Value: "!"},
				},
				Begin: ast.Span(0, 1),
				End:   ast.Span(0, 1),
			},
			want: `"hello #{name}!"`,
		},
		{
			name: "interpolated variables use short form",
			node: &ast.Dstr{
				Parts: []ast.Node{
					&ast.Ivar{Name: "@a"},
					&ast.Str{Value: " "},
					&ast.Cvar{Name: "@@b"},
					&ast.Gvar{Name: "$c"},
				},
				Begin: ast.Span(0, 1),
				End:   ast.Span(0, 1),
			},
			want: `"#@a #@@b#$c"`,
		},
		{
			name: "adjacent literals",
			node: &ast.Dstr{Parts: []ast.Node{str("a"), str("b")}},
			want: `"a" "b"`,
		},
		{
			name: "interpolated symbol",
			node: &ast.Dsym{
				Parts: []ast.Node{
					&ast.Str{Value: "a"},
					&ast.Begin{Statements: []ast.Node{lvar("b")}, Begin: ast.Span(0, 2), End: ast.Span(0, 1)},
				},
				Begin: ast.Span(0, 2),
				End:   ast.Span(0, 1),
			},
			want: `:"a#{b}"`,
		},
		{
			name: "regexp with options",
			node: &ast.Regexp{
				Parts:   []ast.Node{&ast.Str{Value: `a/b\/c\d`}},
				Options: &ast.RegOpt{Options: "im"},
			},
			want: `/a\/b\/c\d/im`,
		},
		{
			name: "backticks",
			node: &ast.Xstr{Parts: []ast.Node{&ast.Str{Value: "ls `pwd`"}}},
			want: "`ls \\`pwd\\``",
		},
		{
			name: "heredoc as double quoted string",
			node: &ast.Heredoc{Parts: []ast.Node{&ast.Str{Value: "line one\n"}, &ast.Str{Value: "line two\n"}}},
			want: `"line one\nline two\n"`,
		},
		{
			name: "bracketed array",
			node: &ast.Array{Elements: []ast.Node{num("1"), num("2")}, Begin: ast.Span(0, 1), End: ast.Span(5, 6)},
			want: "[1, 2]",
		},
		{
			name: "array without brackets",
			node: &ast.Array{Elements: []ast.Node{num("1"), num("2")}},
			want: "1, 2",
		},
		{
			name: "word list",
			node: &ast.Array{
				Elements: []ast.Node{&ast.Str{Value: "a"}, &ast.Str{Value: "b c"}},
				Begin:    ast.Span(0, 3),
				End:      ast.Span(9, 10),
			},
			want: `%w[a b\ c]`,
		},
		{
			name: "symbol list",
			node: &ast.Array{
				Elements: []ast.Node{&ast.Sym{Name: "a"}, &ast.Sym{Name: "b"}},
				Begin:    ast.Span(0, 3),
				End:      ast.Span(7, 8),
			},
			want: "%i[a b]",
		},
		{
			name: "hash with labels",
			node: &ast.Hash{
				Pairs: []ast.Node{label("a", num("1")), label("b", sym("c"))},
				Begin: ast.Span(0, 1),
				End:   ast.Span(0, 1),
			},
			want: "{a: 1, b: :c}",
		},
		{
			name: "hash with arrows",
			node: &ast.Hash{
				Pairs: []ast.Node{
					&ast.Pair{Key: sym("a"), Value: num("1"), Operator: ast.Loc{Begin: 3, End: 5}},
					&ast.Pair{Key: str("b"), Value: num("2"), Operator: ast.Loc{Begin: 14, End: 16}},
				},
				Begin: ast.Span(0, 1),
				End:   ast.Span(0, 1),
			},
			want: `{:a => 1, "b" => 2}`,
		},
		{
			name: "quoted label",
			node: &ast.Pair{
				Key:      &ast.Sym{Name: "content-type", Begin: ast.Span(0, 1), End: ast.Span(13, 14)},
				Value:    str("json"),
				Operator: ast.Loc{Begin: 14, End: 15},
			},
			want: `"content-type": "json"`,
		},
		{name: "empty hash", node: &ast.Hash{Begin: ast.Span(0, 1), End: ast.Span(1, 2)}, want: "{}"},
		{name: "inclusive range", node: &ast.Irange{Left: num("1"), Right: num("2")}, want: "1..2"},
		{name: "endless range", node: &ast.Erange{Left: num("1")}, want: "1..."},
		{name: "flip flop", node: &ast.IFlipFlop{Left: lvar("a"), Right: lvar("b")}, want: "a..b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.node))
		})
	}
}

func TestWriteVariablesAndAssignments(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{name: "instance variable", node: &ast.Ivar{Name: "@a"}, want: "@a"},
		{name: "class variable", node: &ast.Cvar{Name: "@@a"}, want: "@@a"},
		{name: "global variable", node: &ast.Gvar{Name: "$a"}, want: "$a"},
		{name: "back reference", node: &ast.BackRef{Name: "$&"}, want: "$&"},
		{name: "nth reference", node: &ast.NthRef{Name: "1"}, want: "$1"},
		{name: "scoped constant", node: &ast.Const{Scope: cnst("A"), Name: "B"}, want: "A::B"},
		{name: "top level constant", node: &ast.Const{Scope: &ast.Cbase{}, Name: "A"}, want: "::A"},
		{name: "local assignment", node: &ast.Lvasgn{Name: "x", Value: num("1")}, want: "x = 1"},
		{name: "instance assignment", node: &ast.Ivasgn{Name: "@x", Value: num("1")}, want: "@x = 1"},
		{name: "class variable assignment", node: &ast.Cvasgn{Name: "@@x", Value: num("1")}, want: "@@x = 1"},
		{name: "global assignment", node: &ast.Gvasgn{Name: "$x", Value: num("1")}, want: "$x = 1"},
		{name: "constant assignment", node: &ast.Casgn{Name: "FOO", Value: num("1")}, want: "FOO = 1"},
		{
			name: "scoped constant assignment",
			node: &ast.Casgn{Scope: cnst("A"), Name: "FOO", Value: sym("x")},
			want: "A::FOO = :x",
		},
		{
			name: "top level constant assignment",
			node: &ast.Casgn{Scope: &ast.Cbase{}, Name: "FOO", Value: num("1")},
			want: "::FOO = 1",
		},
		{
			name: "operator assignment",
			node: &ast.OpAsgn{Recv: &ast.Lvasgn{Name: "x"}, Operator: "+", Value: num("1")},
			want: "x += 1",
		},
		{
			name: "or assignment",
			node: &ast.OrAsgn{Recv: &ast.Ivasgn{Name: "@x"}, Value: num("1")},
			want: "@x ||= 1",
		},
		{
			name: "and assignment",
			node: &ast.AndAsgn{Recv: &ast.Lvasgn{Name: "x"}, Value: lvar("y")},
			want: "x &&= y",
		},
		{
			name: "index assignment",
			node: &ast.IndexAsgn{Recv: lvar("h"), Indexes: []ast.Node{sym("a")}, Value: num("1")},
			want: "h[:a] = 1",
		},
		{
			name: "multiple assignment",
			node: &ast.Masgn{
				Lhs: &ast.Mlhs{Items: []ast.Node{
					&ast.Lvasgn{Name: "a"},
					&ast.Splat{Value: &ast.Lvasgn{Name: "b"}},
				}},
				Rhs: &ast.Array{Elements: []ast.Node{num("1"), num("2")}},
			},
			want: "a, *b = 1, 2",
		},
		{
			name: "nested multiple assignment",
			node: &ast.Masgn{
				Lhs: &ast.Mlhs{Items: []ast.Node{
					&ast.Mlhs{Items: []ast.Node{&ast.Lvasgn{Name: "a"}, &ast.Lvasgn{Name: "b"}}, Begin: ast.Span(0, 1), End: ast.Span(5, 6)},
					&ast.Lvasgn{Name: "c"},
				}},
				Rhs: lvar("list"),
			},
			want: "(a, b), c = list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.node))
		})
	}
}

func TestWriteCalls(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{name: "bare call", node: call("foo"), want: "foo"},
		{name: "call without parentheses", node: call("puts", num("1"), num("2")), want: "puts 1, 2"},
		{
			name: "call with parentheses",
			node: &ast.Send{MethodName: "foo", Args: []ast.Node{num("1")}, Begin: ast.Span(3, 4), End: ast.Span(5, 6)},
			want: "foo(1)",
		},
		{
			name: "empty parentheses",
			node: &ast.Send{MethodName: "foo", Begin: ast.Span(3, 4), End: ast.Span(4, 5)},
			want: "foo()",
		},
		{name: "method call", node: method(lvar("a"), "b", num("1")), want: "a.b(1)"},
		{name: "attribute read", node: method(lvar("a"), "b"), want: "a.b"},
		{
			name: "scoped method call",
			node: &ast.Send{Recv: cnst("A"), MethodName: "b", Dot: ast.Span(1, 3)},
			want: "A::b",
		},
		{
			name: "binary operator",
			node: &ast.Send{Recv: lvar("a"), MethodName: "+", Args: []ast.Node{num("1")}},
			want: "a + 1",
		},
		{
			name: "comparison",
			node: &ast.Send{Recv: lvar("a"), MethodName: "<=>", Args: []ast.Node{lvar("b")}},
			want: "a <=> b",
		},
		{name: "unary minus", node: &ast.Send{Recv: lvar("a"), MethodName: "-@"}, want: "-a"},
		{name: "negation", node: &ast.Send{Recv: lvar("a"), MethodName: "!"}, want: "!a"},
		{
			name: "setter",
			node: &ast.Send{
				Recv:       &ast.Self{},
				MethodName: "foo=",
				Args:       []ast.Node{num("1")},
				Dot:        ast.Span(4, 5),
				Operator:   ast.Span(9, 10),
			},
			want: "self.foo = 1",
		},
		{
			name: "safe navigation",
			node: &ast.CSend{Recv: lvar("a"), MethodName: "b", Args: []ast.Node{num("1")}, Begin: ast.Span(0, 1), End: ast.Span(0, 1)},
			want: "a&.b(1)",
		},
		{
			name: "safe navigation setter",
			node: &ast.CSend{Recv: lvar("a"), MethodName: "b=", Args: []ast.Node{num("1")}, Operator: ast.Span(0, 1)},
			want: "a&.b = 1",
		},
		{name: "index", node: &ast.Index{Recv: lvar("a"), Indexes: []ast.Node{num("0")}}, want: "a[0]"},
		{
			name: "keyword arguments",
			node: call("foo", lvar("a"), &ast.Kwargs{Pairs: []ast.Node{label("b", num("1")), &ast.Kwsplat{Value: lvar("opts")}}}),
			want: "foo a, b: 1, **opts",
		},
		{name: "splat argument", node: call("foo", &ast.Splat{Value: lvar("a")}), want: "foo *a"},
		{name: "block pass", node: call("foo", &ast.BlockPass{Value: sym("bar")}), want: "foo &:bar"},
		{name: "anonymous block pass", node: call("foo", &ast.BlockPass{}), want: "foo &"},
		{name: "forwarded arguments", node: &ast.Send{MethodName: "foo", Args: []ast.Node{&ast.ForwardedArgs{}}, Begin: ast.Span(0, 1), End: ast.Span(0, 1)}, want: "foo(...)"},
		{name: "and", node: &ast.And{Lhs: lvar("a"), Rhs: lvar("b")}, want: "a && b"},
		{name: "or", node: &ast.Or{Lhs: lvar("a"), Rhs: lvar("b")}, want: "a || b"},
		{name: "defined with parentheses", node: &ast.Defined{Value: lvar("a"), Begin: ast.Span(0, 1), End: ast.Span(0, 1)}, want: "defined?(a)"},
		{name: "defined without parentheses", node: &ast.Defined{Value: lvar("a")}, want: "defined? a"},
		{name: "super with arguments", node: &ast.Super{Args: []ast.Node{lvar("a")}, Begin: ast.Span(0, 1), End: ast.Span(0, 1)}, want: "super(a)"},
		{name: "super with empty parentheses", node: &ast.Super{Begin: ast.Span(0, 1), End: ast.Span(0, 1)}, want: "super()"},
		{name: "implicit super", node: &ast.ZSuper{}, want: "super"},
		{name: "yield", node: &ast.Yield{}, want: "yield"},
		{name: "yield with parentheses", node: &ast.Yield{Args: []ast.Node{num("1"), num("2")}, Begin: ast.Span(0, 1), End: ast.Span(0, 1)}, want: "yield(1, 2)"},
		{name: "return", node: &ast.Return{}, want: "return"},
		{name: "return values", node: &ast.Return{Args: []ast.Node{num("1"), num("2")}}, want: "return 1, 2"},
		{name: "break", node: &ast.Break{Args: []ast.Node{num("1")}}, want: "break 1"},
		{name: "next", node: &ast.Next{}, want: "next"},
		{name: "redo", node: &ast.Redo{}, want: "redo"},
		{name: "retry", node: &ast.Retry{}, want: "retry"},
		{name: "alias", node: &ast.Alias{To: &ast.Sym{Name: "new"}, From: &ast.Sym{Name: "old"}}, want: "alias new old"},
		{name: "alias globals", node: &ast.Alias{To: &ast.Gvar{Name: "$new"}, From: &ast.Gvar{Name: "$old"}}, want: "alias $new $old"},
		{name: "undef", node: &ast.Undef{Names: []ast.Node{&ast.Sym{Name: "a"}, sym("b")}}, want: "undef a, :b"},
		{name: "parenthesized expression", node: &ast.Begin{Statements: []ast.Node{lvar("a"), lvar("b")}, Begin: ast.Span(0, 1), End: ast.Span(0, 1)}, want: "(a; b)"},
		{name: "ternary", node: &ast.IfTernary{Cond: lvar("a"), IfTrue: num("1"), IfFalse: num("2")}, want: "a ? 1 : 2"},
		{name: "if modifier", node: &ast.IfMod{Cond: lvar("a"), IfTrue: call("foo")}, want: "foo if a"},
		{name: "unless modifier", node: &ast.IfMod{Cond: lvar("a"), IfFalse: call("foo")}, want: "foo unless a"},
		{name: "while modifier", node: &ast.While{Cond: lvar("a"), Body: call("foo")}, want: "foo while a"},
		{name: "until modifier", node: &ast.Until{Cond: lvar("a"), Body: call("foo")}, want: "foo until a"},
		{
			name: "rescue modifier",
			node: &ast.Rescue{
				Body:         call("foo"),
				RescueBodies: []ast.Node{&ast.RescueBody{Body: &ast.Nil{}}},
				Modifier:     true,
			},
			want: "foo rescue nil",
		},
		{
			name: "match with local assignment",
			node: &ast.MatchWithLvasgn{Re: &ast.Regexp{Parts: []ast.Node{&ast.Str{Value: "(?<x>a)"}}, Options: &ast.RegOpt{}}, Value: lvar("s")},
			want: "/(?<x>a)/ =~ s",
		},
		{name: "BEGIN block", node: &ast.Preexe{Body: call("setup")}, want: "BEGIN { setup }"},
		{name: "END block", node: &ast.Postexe{Body: call("teardown")}, want: "END { teardown }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.node))
		})
	}
}

func TestWriteBlocks(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{
			name: "brace block",
			node: &ast.Block{
				Call:  method(&ast.Array{Elements: []ast.Node{num("1")}, Begin: ast.Span(0, 1), End: ast.Span(2, 3)}, "each"),
				Args:  args(&ast.Arg{Name: "x"}),
				Body:  call("p", lvar("x")),
				Begin: ast.Loc{Begin: 9, End: 10},
			},
			want: "[1].each { |x| p x }",
		},
		{
			name: "brace block without parameters",
			node: &ast.Block{Call: call("loop"), Body: call("work"), Begin: ast.Loc{Begin: 5, End: 6}},
			want: "loop { work }",
		},
		{
			name: "empty brace block",
			node: &ast.Block{Call: call("loop"), Begin: ast.Loc{Begin: 5, End: 6}},
			want: "loop { }",
		},
		{
			name: "do block",
			node: &ast.Block{
				Call:  method(lvar("items"), "each"),
				Args:  args(&ast.Procarg0{Args: []ast.Node{&ast.Arg{Name: "item"}}}),
				Body:  call("p", lvar("item")),
				Begin: ast.Loc{Begin: 11, End: 13},
			},
			want: "items.each do |item|\n  p item\nend",
		},
		{
			name: "do block without parameters",
			node: &ast.Block{Call: call("proc"), Body: seq(call("a"), call("b")), Begin: ast.Loc{Begin: 5, End: 7}},
			want: "proc do\n  a\n  b\nend",
		},
		{
			name: "multi statement brace block",
			node: &ast.Block{Call: call("foo"), Body: seq(call("a"), call("b")), Begin: ast.Loc{Begin: 4, End: 5}},
			want: "foo {\n  a\n  b\n}",
		},
		{
			name: "destructuring parameter",
			node: &ast.Block{
				Call: method(lvar("h"), "map"),
				Args: args(&ast.Procarg0{
					Args:  []ast.Node{&ast.Arg{Name: "k"}, &ast.Arg{Name: "v"}},
					Begin: ast.Span(0, 1),
					End:   ast.Span(5, 6),
				}),
				Body:  lvar("k"),
				Begin: ast.Loc{Begin: 6, End: 7},
			},
			want: "h.map { |(k, v)| k }",
		},
		{
			name: "block local variables",
			node: &ast.Block{
				Call:  call("foo"),
				Args:  args(&ast.Arg{Name: "a"}, &ast.Shadowarg{Name: "b"}, &ast.Shadowarg{Name: "c"}),
				Body:  lvar("a"),
				Begin: ast.Loc{Begin: 4, End: 5},
			},
			want: "foo { |a; b, c| a }",
		},
		{
			name: "lambda",
			node: &ast.Block{
				Call:  &ast.Lambda{},
				Args:  args(&ast.Arg{Name: "x"}),
				Body:  &ast.Send{Recv: lvar("x"), MethodName: "*", Args: []ast.Node{num("2")}},
				Begin: ast.Loc{Begin: 6, End: 7},
			},
			want: "->(x) { x * 2 }",
		},
		{
			name: "lambda without parameters",
			node: &ast.Block{Call: &ast.Lambda{}, Body: num("1"), Begin: ast.Loc{Begin: 3, End: 4}},
			want: "-> { 1 }",
		},
		{
			name: "numbered parameters",
			node: &ast.Numblock{Call: method(lvar("a"), "map"), NumArgs: 1, Body: &ast.Send{Recv: lvar("_1"), MethodName: "+", Args: []ast.Node{num("1")}}},
			want: "a.map { _1 + 1 }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.node))
		})
	}
}
