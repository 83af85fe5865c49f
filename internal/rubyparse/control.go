package rubyparse

import (
	"github.com/rubywriter/rubywriter/ast"
	sitter "github.com/smacker/go-tree-sitter"
)

// condition converts the condition of a conditional or loop. Ranges become
// flip-flops and a bare regexp matches against $_.
func (c *converter) condition(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "range":
		return c.rangeNode(n, true)
	case "regex":
		return &ast.MatchCurrentLine{Re: c.expr(n)}
	}
	return c.expr(n)
}

// clause converts the statements of a then, else or do node.
func (c *converter) clause(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	return sequence(c.statements(c.children(n)))
}

func (c *converter) ifNode(n *sitter.Node) ast.Node {
	node := &ast.If{
		Cond:    c.condition(n.ChildByFieldName("condition")),
		IfTrue:  c.clause(n.ChildByFieldName("consequence")),
		Keyword: c.span(n.Child(0)),
	}
	if alt := n.ChildByFieldName("alternative"); alt != nil {
		if alt.Type() == "elsif" {
			node.IfFalse = c.ifNode(alt)
		} else {
			node.IfFalse = c.clause(alt)
		}
	}
	return node
}

// unlessNode converts unless into an *ast.If with the branches swapped.
func (c *converter) unlessNode(n *sitter.Node) ast.Node {
	return &ast.If{
		Cond:    c.condition(n.ChildByFieldName("condition")),
		IfTrue:  c.clause(n.ChildByFieldName("alternative")),
		IfFalse: c.clause(n.ChildByFieldName("consequence")),
		Keyword: c.span(n.Child(0)),
	}
}

func (c *converter) loop(n *sitter.Node) ast.Node {
	cond := c.condition(n.ChildByFieldName("condition"))
	body := c.clause(n.ChildByFieldName("body"))
	end := c.loc(lastToken(n.ChildByFieldName("body"), "end"))
	if end == nil {
		end = c.loc(lastToken(n, "end"))
	}
	if n.Type() == "until" {
		return &ast.Until{Cond: cond, Body: body, End: end}
	}
	return &ast.While{Cond: cond, Body: body, End: end}
}

// loopModifier converts `body while cond`. A begin block body runs before the
// first test.
func (c *converter) loopModifier(n *sitter.Node) ast.Node {
	bodyNode := n.ChildByFieldName("body")
	body := c.expr(bodyNode)
	cond := c.condition(n.ChildByFieldName("condition"))
	post := bodyNode != nil && bodyNode.Type() == "begin"

	switch {
	case n.Type() == "until_modifier" && post:
		return &ast.UntilPost{Cond: cond, Body: body}
	case n.Type() == "until_modifier":
		return &ast.Until{Cond: cond, Body: body}
	case post:
		return &ast.WhilePost{Cond: cond, Body: body}
	default:
		return &ast.While{Cond: cond, Body: body}
	}
}

func (c *converter) forLoop(n *sitter.Node) ast.Node {
	iterator := c.target(n.ChildByFieldName("pattern"))
	var iteratee ast.Node
	if value := n.ChildByFieldName("value"); value != nil {
		iteratee = c.expr(firstNamed(c.children(value)))
	}
	return &ast.For{
		Iterator: iterator,
		Iteratee: iteratee,
		Body:     c.clause(n.ChildByFieldName("body")),
	}
}

func (c *converter) caseNode(n *sitter.Node) ast.Node {
	node := &ast.Case{Expr: c.expr(n.ChildByFieldName("value"))}
	for _, child := range c.children(n) {
		switch child.Type() {
		case "when":
			when := &ast.When{Body: c.clause(child.ChildByFieldName("body"))}
			for _, p := range fieldChildren(child, "pattern") {
				if p.Type() == "pattern" {
					p = firstNamed(c.children(p))
				}
				when.Patterns = append(when.Patterns, c.expr(p))
			}
			node.WhenBodies = append(node.WhenBodies, when)
		case "else":
			node.ElseBody = c.elseBody(child)
		}
	}
	return node
}

func (c *converter) caseMatch(n *sitter.Node) ast.Node {
	node := &ast.CaseMatch{Expr: c.expr(n.ChildByFieldName("value"))}
	for _, child := range c.children(n) {
		switch child.Type() {
		case "in_clause":
			in := &ast.InPattern{Pattern: c.pattern(child.ChildByFieldName("pattern"))}
			if guard := child.ChildByFieldName("guard"); guard != nil {
				cond := c.expr(guard.ChildByFieldName("condition"))
				if guard.Type() == "unless_guard" {
					in.Guard = &ast.UnlessGuard{Cond: cond}
				} else {
					in.Guard = &ast.IfGuard{Cond: cond}
				}
			}
			in.Body = c.clause(child.ChildByFieldName("body"))
			node.InBodies = append(node.InBodies, in)
		case "else":
			node.ElseBody = c.elseBody(child)
		}
	}
	return node
}

func (c *converter) begin(n *sitter.Node) ast.Node {
	node := &ast.KwBegin{}
	switch body := c.body(c.bodyChildren(n)).(type) {
	case nil:
	case *ast.Begin:
		node.Statements = body.Statements
	default:
		node.Statements = []ast.Node{body}
	}
	return node
}

func (c *converter) rescueBody(n *sitter.Node) ast.Node {
	rb := &ast.RescueBody{}
	if exceptions := n.ChildByFieldName("exceptions"); exceptions != nil {
		rb.ExcList = &ast.Array{Elements: c.statements(c.children(exceptions))}
	}
	if variable := n.ChildByFieldName("variable"); variable != nil {
		rb.ExcVar = c.target(firstNamed(c.children(variable)))
	}
	rb.Body = c.clause(n.ChildByFieldName("body"))
	return rb
}
