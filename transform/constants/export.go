package constants

import (
	"bytes"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/rubywriter/rubywriter/ast"
	"gopkg.in/yaml.v3"
)

// ToYAML encodes m as a YAML mapping with sorted keys. Integers, floats,
// booleans and nil keep their YAML types; symbols are written as `:name`
// strings.
func ToYAML(m Map) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(m)); err != nil {
		return nil, fmt.Errorf("failed to encode constants: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode constants: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlNode(m Map) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.Keys() {
		v := m[key]
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		if v.IsModule() {
			node.Content = append(node.Content, keyNode, yamlNode(v.Module))
			continue
		}
		node.Content = append(node.Content, keyNode, yamlScalar(v.Literal))
	}
	return node
}

func yamlScalar(n ast.Node) *yaml.Node {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}
	switch n := n.(type) {
	case *ast.Int:
		if v, ok := IntValue(n); ok {
			return scalar("!!int", strconv.FormatInt(v, 10))
		}
		return scalar("!!str", n.Value)
	case *ast.Float:
		return scalar("!!float", strings.ReplaceAll(n.Value, "_", ""))
	case *ast.Str:
		return scalar("!!str", n.Value)
	case *ast.Sym:
		return scalar("!!str", ":"+n.Name)
	case *ast.True:
		return scalar("!!bool", "true")
	case *ast.False:
		return scalar("!!bool", "false")
	case *ast.Nil:
		return scalar("!!null", "null")
	default:
		return scalar("!!str", literalSource(n))
	}
}

// ToGo generates a Go source file declaring one constant per literal of m.
// Nested names are joined with an underscore, so `M::N::X` becomes `M_N_X`.
// Go has no nil constants, so nil values are listed in a comment instead.
// Two Ruby constants that join to the same Go name are an error.
func ToGo(m Map, pkg string) ([]byte, error) {
	decl := &dst.GenDecl{Tok: token.CONST, Lparen: true}
	var nils []string
	seen := map[string]string{}
	err := flatten(m, nil, nil, func(name, rubyName string, literal ast.Node) error {
		if previous, ok := seen[name]; ok {
			return fmt.Errorf("constants %s and %s both map to Go name %s", previous, rubyName, name)
		}
		seen[name] = rubyName

		value, err := goValue(literal)
		if err != nil {
			return fmt.Errorf("constant %s: %w", rubyName, err)
		}
		if value == nil {
			nils = append(nils, name)
			return nil
		}
		decl.Specs = append(decl.Specs, &dst.ValueSpec{
			Names:  []*dst.Ident{dst.NewIdent(name)},
			Values: []dst.Expr{value},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export Go constants: %w", err)
	}

	if len(nils) > 0 {
		decl.Decs.Start.Append("// Constants assigned nil:")
		for _, name := range nils {
			decl.Decs.Start.Append("//   " + name)
		}
	}

	file := &dst.File{Name: dst.NewIdent(pkg)}
	if len(decl.Specs) > 0 || len(nils) > 0 {
		file.Decls = append(file.Decls, decl)
	}

	var buf bytes.Buffer
	if err := decorator.Fprint(&buf, file); err != nil {
		return nil, fmt.Errorf("failed to print Go constants: %w", err)
	}
	return buf.Bytes(), nil
}

// flatten visits the literals of m in sorted order with their joined Go
// names and their Ruby paths. It stops at the first error from visit.
func flatten(m Map, prefix, rubyPrefix []string, visit func(name, rubyName string, literal ast.Node) error) error {
	for _, key := range m.Keys() {
		path := append(append([]string(nil), prefix...), goName(key))
		rubyPath := append(append([]string(nil), rubyPrefix...), key)
		v := m[key]
		if v.IsModule() {
			if err := flatten(v.Module, path, rubyPath, visit); err != nil {
				return err
			}
			continue
		}
		if err := visit(strings.Join(path, "_"), strings.Join(rubyPath, "::"), v.Literal); err != nil {
			return err
		}
	}
	return nil
}

// goName turns a qualified Ruby name like `::A::B` into `A_B`.
func goName(key string) string {
	key = strings.TrimPrefix(key, "::")
	return strings.ReplaceAll(key, "::", "_")
}

// goValue returns nil for nil literals.
func goValue(n ast.Node) (dst.Expr, error) {
	switch n := n.(type) {
	case *ast.Int:
		v, ok := IntValue(n)
		if !ok {
			return nil, fmt.Errorf("integer %s does not fit in 64 bits", n.Value)
		}
		return goNumber(token.INT, strconv.FormatInt(v, 10)), nil
	case *ast.Float:
		return goNumber(token.FLOAT, n.Value), nil
	case *ast.Str:
		return &dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(n.Value)}, nil
	case *ast.Sym:
		return &dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(n.Name)}, nil
	case *ast.True:
		return dst.NewIdent("true"), nil
	case *ast.False:
		return dst.NewIdent("false"), nil
	default:
		return nil, nil
	}
}

// goNumber splits the sign off a numeric literal. Float literals share
// Go's `_` separator and exponent syntax.
func goNumber(kind token.Token, value string) dst.Expr {
	if rest, ok := strings.CutPrefix(value, "-"); ok {
		return &dst.UnaryExpr{Op: token.SUB, X: &dst.BasicLit{Kind: kind, Value: rest}}
	}
	return &dst.BasicLit{Kind: kind, Value: value}
}
