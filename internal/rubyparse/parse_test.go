package rubyparse

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) *Result {
	t.Helper()
	result, err := Parse(t.Context(), []byte(source))
	require.NoError(t, err)
	return result
}

func render(t *testing.T, root ast.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, writer.WriteCode(&buf, root))
	return buf.String()
}

func statements(root ast.Node) []ast.Node {
	if seq, ok := root.(*ast.Begin); ok && seq.Begin == nil {
		return seq.Statements
	}
	return []ast.Node{root}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "method", source: "def sum(x, y)\n  x + y\nend\n"},
		{name: "locals and calls", source: "x = 1\nx\ny\n"},
		{name: "do block", source: "list.each do |item|\n  p item\nend\n"},
		{name: "brace block", source: "list.map { |item| item * 2 }\n"},
		{name: "numbered parameter", source: "list.map { _1 + 1 }\n"},
		{name: "unless", source: "unless ready\n  wait\nend\n"},
		{name: "interpolation", source: "name = \"x\"\n\"hi #{name}\"\n"},
		{name: "constant assignment", source: "module Shop\n  LIMIT = 10\nend\n"},
		{name: "case when", source: "def test(arg)\n  case arg\n  when 0\n    p 0\n  when Array, String\n    p 3\n  else\n    p 4\n  end\nend\n"},
		{name: "case in", source: "case v\nin [x, *rest] if x\n  x\nelse\n  nil\nend\n"},
		{name: "control escapes", source: `x = "\0 \x001 \a\e\x01\x7F"` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parse(t, tt.source)
			assert.Equal(t, tt.source, render(t, result.Root))
		})
	}
}

func TestParseNodes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []ast.Kind
	}{
		{
			name:   "locals become lvars once assigned",
			source: "x\nx = 1\nx\n",
			want:   []ast.Kind{ast.KindSend, ast.KindLvasgn, ast.KindLvar},
		},
		{
			name:   "literals",
			source: "1\n1.5\n:sym\n\"s\"\nnil\ntrue\n[1]\n{ a: 1 }\n",
			want: []ast.Kind{
				ast.KindInt, ast.KindFloat, ast.KindSym, ast.KindStr,
				ast.KindNil, ast.KindTrue, ast.KindArray, ast.KindHash,
			},
		},
		{
			name:   "definitions",
			source: "class A < B\nend\nmodule M\nend\ndef self.m\nend\nclass << self\nend\n",
			want:   []ast.Kind{ast.KindClass, ast.KindModule, ast.KindDefs, ast.KindSClass},
		},
		{
			name:   "control flow",
			source: "if a\nend\nwhile a\nend\ncase a\nwhen 1\nend\nbegin\nend\n",
			want:   []ast.Kind{ast.KindIf, ast.KindWhile, ast.KindCase, ast.KindKwBegin},
		},
		{
			name:   "operators",
			source: "a && b\na || b\na += 1\na ||= 1\n",
			want:   []ast.Kind{ast.KindAnd, ast.KindOr, ast.KindOpAsgn, ast.KindOrAsgn},
		},
		{
			name:   "multiple assignment",
			source: "a, b = 1, 2\n",
			want:   []ast.Kind{ast.KindMasgn},
		},
		{
			name:   "pattern matching",
			source: "case v\nin [x, *rest]\n  x\nend\n",
			want:   []ast.Kind{ast.KindCaseMatch},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parse(t, tt.source)
			var got []ast.Kind
			for _, stmt := range statements(result.Root) {
				got = append(got, stmt.Kind())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMethodLocals(t *testing.T) {
	result := parse(t, "def m(a, b = 1, *c, d:, &e)\n  a\n  f\nend\n")

	def, ok := result.Root.(*ast.Def)
	require.True(t, ok)
	require.IsType(t, &ast.Args{}, def.Args)
	assert.Len(t, def.Args.(*ast.Args).Args, 5)
	assert.Equal(t, 0, def.Expression.Begin)

	body := statements(def.Body)
	require.Len(t, body, 2)
	assert.IsType(t, &ast.Lvar{}, body[0])
	assert.IsType(t, &ast.Send{}, body[1])
}

func TestParseBlockScope(t *testing.T) {
	result := parse(t, "x = 1\nlist.each { |y| x + y }\ny\n")

	stmts := statements(result.Root)
	require.Len(t, stmts, 3)
	block, ok := stmts[1].(*ast.Block)
	require.True(t, ok)
	assert.Equal(t, 1, block.Begin.Size())
	assert.IsType(t, &ast.Send{}, stmts[2], "block parameters do not leak")
}

func TestParseRescue(t *testing.T) {
	result := parse(t, "def m\n  work\nrescue Error => e\n  e\nensure\n  done\nend\n")

	def, ok := result.Root.(*ast.Def)
	require.True(t, ok)
	ensure, ok := def.Body.(*ast.Ensure)
	require.True(t, ok)
	rescue, ok := ensure.Body.(*ast.Rescue)
	require.True(t, ok)
	require.Len(t, rescue.RescueBodies, 1)

	rb := rescue.RescueBodies[0].(*ast.RescueBody)
	assert.IsType(t, &ast.Array{}, rb.ExcList)
	assert.Equal(t, &ast.Lvasgn{Name: "e"}, rb.ExcVar)
	assert.Equal(t, &ast.Lvar{Name: "e"}, rb.Body)
}

func TestParseFlipFlop(t *testing.T) {
	result := parse(t, "if a..b\n  p 1\nend\n")

	node, ok := result.Root.(*ast.If)
	require.True(t, ok)
	assert.IsType(t, &ast.IFlipFlop{}, node.Cond)
}

func TestParseComments(t *testing.T) {
	result := parse(t, "# a\nx = 1 # b\n")
	assert.Equal(t, []ast.Comment{
		{Location: ast.Loc{Begin: 0, End: 4}},
		{Location: ast.Loc{Begin: 10, End: 14}},
	}, result.Comments)
}

func TestParseEmpty(t *testing.T) {
	result := parse(t, "")
	assert.Nil(t, result.Root)
	assert.Empty(t, result.Comments)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   error
		line   int
	}{
		{name: "syntax error", source: "x = 1\n)\n", want: ErrSyntax, line: 2},
		{name: "heredoc", source: "x = <<~EOS\n  hi\nEOS\n", want: ErrUnsupported, line: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(t.Context(), []byte(tt.source))
			require.ErrorIs(t, err, tt.want)

			var parseErr *Error
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Position.Line)
		})
	}
}

func TestParseTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.rb"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			source, err := os.ReadFile(file)
			require.NoError(t, err)

			result, err := Parse(t.Context(), source)
			require.NoError(t, err)
			assert.NotNil(t, result.Root)
		})
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Err: ErrUnsupported, NodeType: "heredoc_beginning"}
	err.Position.Line, err.Position.Column = 3, 7
	assert.Equal(t, "3:7: unsupported syntax: heredoc_beginning", err.Error())

	err.NodeType = ""
	assert.Equal(t, "3:7: unsupported syntax", err.Error())
}
