package util

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/rubywriter/rubywriter/ast"
)

// DebugPrint returns a string representation of the given node.
// This is useful for debugging purposes, and will pretty print
// the structure of a node as an indented s-expression, one node per line.
//
// Do Not Use: This function is only for debugging purposes.
func DebugPrint(node ast.Node) string {
	objString := strings.Builder{}
	debugPrint(&objString, node, 0)
	return objString.String()
}

func debugPrint(b *strings.Builder, node ast.Node, depth int) {
	if node == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteByte('(')
	b.WriteString(node.Kind().String())
	for _, value := range scalarFields(node) {
		b.WriteByte(' ')
		b.WriteString(value)
	}

	children := ast.Children(node)
	if len(children) == 0 {
		b.WriteString(")\n")
		return
	}
	b.WriteByte('\n')
	for _, child := range children {
		debugPrint(b, child, depth+1)
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(")\n")
}

// scalarFields returns the string, integer and boolean fields of a node.
func scalarFields(node ast.Node) []string {
	v := reflect.Indirect(reflect.ValueOf(node))
	if v.Kind() != reflect.Struct {
		return nil
	}
	var fields []string
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch f.Kind() {
		case reflect.String:
			fields = append(fields, fmt.Sprintf("%q", f.String()))
		case reflect.Int:
			fields = append(fields, fmt.Sprintf("%d", f.Int()))
		case reflect.Bool:
			if f.Bool() {
				fields = append(fields, v.Type().Field(i).Name)
			}
		}
	}
	return fields
}
