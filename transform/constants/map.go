// Package constants collects the literal values assigned to constants into
// a nested map that mirrors module and class nesting.
package constants

import (
	"bytes"
	"maps"
	"slices"
	"strings"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/writer"
)

// Value is an entry of a Map: either a terminal literal or the constants of
// a nested module.
type Value struct {
	Literal ast.Node
	Module  Map
}

// IsModule reports whether v holds a nested module.
func (v *Value) IsModule() bool {
	return v.Literal == nil
}

// Map maps a qualified constant or module name to its value.
type Map map[string]*Value

func NewMap() Map {
	return make(Map)
}

// Keys returns the keys of m in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// String prints m with sorted keys, one entry per line. Literals are printed
// as Ruby source.
func (m Map) String() string {
	b := strings.Builder{}
	m.print(&b, 0)
	return b.String()
}

func (m Map) print(b *strings.Builder, depth int) {
	b.WriteString("{\n")
	for _, key := range m.Keys() {
		v := m[key]
		b.WriteString(strings.Repeat("  ", depth+1))
		b.WriteString(key)
		b.WriteString(": ")
		if v.IsModule() {
			v.Module.print(b, depth+1)
		} else {
			b.WriteString(literalSource(v.Literal))
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteByte('}')
}

// literalSource renders a literal node as Ruby source.
func literalSource(n ast.Node) string {
	var buf bytes.Buffer
	cw := writer.New(&buf)
	if err := cw.Write(n, writer.NewContext(0)); err != nil {
		return writer.UnsupportedPlaceholder
	}
	if err := cw.Flush(); err != nil {
		return writer.UnsupportedPlaceholder
	}
	return buf.String()
}
