package rubyparse

import (
	"github.com/rubywriter/rubywriter/ast"
	sitter "github.com/smacker/go-tree-sitter"
)

// pattern converts the pattern of a case/in clause or a one line match.
// Identifiers bind new locals.
func (c *converter) pattern(n *sitter.Node) ast.Node {
	if n == nil || c.err != nil {
		return nil
	}

	switch n.Type() {
	case "identifier":
		name := c.text(n)
		c.scope.declare(name)
		return &ast.MatchVar{Name: name}
	case "array_pattern", "find_pattern", "hash_pattern":
		return c.compoundPattern(n)
	case "keyword_pattern":
		key := n.ChildByFieldName("key")
		name := c.text(key)
		if key.Type() == "string" {
			if s, ok := c.str(key).(*ast.Str); ok {
				name = s.Value
			}
		}
		value := n.ChildByFieldName("value")
		if value == nil {
			c.scope.declare(name)
			return &ast.MatchVar{Name: name}
		}
		end := int(key.EndByte())
		return &ast.Pair{Key: &ast.Sym{Name: name}, Value: c.pattern(value), Operator: ast.Loc{Begin: end, End: end + 1}}
	case "alternative_pattern":
		alts := fieldChildren(n, "alternatives")
		if len(alts) == 0 {
			alts = c.children(n)
		}
		var result ast.Node
		for _, alt := range alts {
			if result == nil {
				result = c.pattern(alt)
				continue
			}
			result = &ast.MatchAlt{Lhs: result, Rhs: c.pattern(alt)}
		}
		return result
	case "as_pattern":
		value := c.pattern(n.ChildByFieldName("value"))
		name := c.text(n.ChildByFieldName("name"))
		c.scope.declare(name)
		return &ast.MatchAs{Value: value, As: &ast.MatchVar{Name: name}}
	case "variable_reference_pattern":
		return &ast.Pin{Var: c.expr(n.ChildByFieldName("name"))}
	case "expression_reference_pattern":
		return &ast.Pin{Var: &ast.Begin{
			Statements: []ast.Node{c.expr(n.ChildByFieldName("value"))},
			Begin:      c.loc(token(n, "(")),
			End:        c.loc(lastToken(n, ")")),
		}}
	case "parenthesized_pattern":
		return &ast.Begin{
			Statements: []ast.Node{c.pattern(firstNamed(c.children(n)))},
			Begin:      c.loc(token(n, "(")),
			End:        c.loc(lastToken(n, ")")),
		}
	case "splat_parameter":
		rest := &ast.MatchRest{}
		if name := n.ChildByFieldName("name"); name != nil {
			c.scope.declare(c.text(name))
			rest.Name = &ast.MatchVar{Name: c.text(name)}
		}
		return rest
	case "hash_splat_nil":
		return &ast.MatchNilPattern{}
	case "hash_splat_parameter":
		// no node carries a named `**rest` binding
		return c.unsupported(n)
	}
	return c.expr(n)
}

// compoundPattern converts array, find and hash patterns. With a constant in
// front the brackets belong to the *ast.ConstPattern.
func (c *converter) compoundPattern(n *sitter.Node) ast.Node {
	class := n.ChildByFieldName("class")
	var elements []ast.Node
	for _, child := range c.bodyChildren(n, "class") {
		if p := c.pattern(child); p != nil {
			elements = append(elements, p)
		}
	}

	var begin, end *ast.Loc
	if class == nil {
		begin = c.loc(token(n, "[", "{"))
		end = c.loc(lastToken(n, "]", "}"))
	}

	var inner ast.Node
	switch n.Type() {
	case "find_pattern":
		inner = &ast.FindPattern{Elements: elements, Begin: begin, End: end}
	case "hash_pattern":
		inner = &ast.HashPattern{Elements: elements, Begin: begin, End: end}
	default:
		if trailingComma(n) {
			inner = &ast.ArrayPatternWithTail{Elements: elements, Begin: begin, End: end}
		} else {
			inner = &ast.ArrayPattern{Elements: elements, Begin: begin, End: end}
		}
	}

	if class != nil {
		return &ast.ConstPattern{Const: c.expr(class), Pattern: inner}
	}
	return inner
}

// trailingComma reports whether the last element of n is followed by a comma.
func trailingComma(n *sitter.Node) bool {
	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		child := n.Child(i)
		if child.IsNamed() {
			return false
		}
		if child.Type() == "," {
			return true
		}
	}
	return false
}
