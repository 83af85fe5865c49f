package marker

import (
	"bytes"
	"testing"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cnst(name string) *ast.Const { return &ast.Const{Name: name} }

func render(t *testing.T, root ast.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, writer.WriteCode(&buf, root))
	return buf.String()
}

func TestInsertInModule(t *testing.T) {
	tests := []struct {
		name  string
		root  ast.Node
		value string
		want  string
	}{
		{
			name: "statement sequence",
			root: &ast.Module{Name: cnst("M"), Body: &ast.Begin{Statements: []ast.Node{
				&ast.Send{MethodName: "a"},
				&ast.Send{MethodName: "b"},
			}}},
			value: "test",
			want:  "module M\n  a\n  b\n  \"test\"\nend\n",
		},
		{
			name:  "single class body",
			root:  &ast.Module{Name: cnst("M"), Body: &ast.Class{Name: cnst("C")}},
			value: "test",
			want:  "module M\n  class C\n  end\n  \"test\"\nend\n",
		},
		{
			name:  "escaped value",
			root:  &ast.Module{Name: cnst("M"), Body: &ast.Begin{Statements: []ast.Node{&ast.Nil{}}}},
			value: `say "hi"`,
			want:  "module M\n  nil\n  \"say \\\"hi\\\"\"\nend\n",
		},
		{
			name:  "empty module",
			root:  &ast.Module{Name: cnst("M")},
			value: "test",
			want:  "module M\nend\n",
		},
		{
			name:  "single other statement",
			root:  &ast.Module{Name: cnst("M"), Body: &ast.Send{MethodName: "a"}},
			value: "test",
			want:  "module M\n  a\nend\n",
		},
		{
			name:  "class root",
			root:  &ast.Class{Name: cnst("C"), Body: &ast.Begin{Statements: []ast.Node{&ast.Nil{}}}},
			value: "test",
			want:  "class C\n  nil\nend\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertInModule(tt.root, tt.value)
			assert.Same(t, tt.root, got)
			assert.Equal(t, tt.want, render(t, got))
		})
	}
}
