package rubyparse

import (
	"github.com/rubywriter/rubywriter/ast"
	sitter "github.com/smacker/go-tree-sitter"
)

func (c *converter) method(n *sitter.Node) ast.Node {
	s := c.enter(false)
	defer c.leave(s)

	def := &ast.Def{
		Name:       c.text(n.ChildByFieldName("name")),
		Assignment: c.loc(token(n, "=")),
		Expression: c.span(n),
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		def.Args = c.parameters(params)
	}
	def.Body = c.body(c.bodyChildren(n, "name", "parameters"))
	return def
}

func (c *converter) singletonMethod(n *sitter.Node) ast.Node {
	definee := c.expr(n.ChildByFieldName("object"))

	s := c.enter(false)
	defer c.leave(s)

	def := &ast.Defs{
		Definee:    definee,
		Name:       c.text(n.ChildByFieldName("name")),
		Assignment: c.loc(token(n, "=")),
		Expression: c.span(n),
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		def.Args = c.parameters(params)
	}
	def.Body = c.body(c.bodyChildren(n, "object", "name", "parameters"))
	return def
}

func (c *converter) class(n *sitter.Node) ast.Node {
	name := c.expr(n.ChildByFieldName("name"))
	var superclass ast.Node
	if sup := n.ChildByFieldName("superclass"); sup != nil {
		superclass = c.expr(firstNamed(c.children(sup)))
	}

	s := c.enter(false)
	defer c.leave(s)
	return &ast.Class{
		Name:       name,
		Superclass: superclass,
		Body:       c.body(c.bodyChildren(n, "name", "superclass")),
		Expression: c.span(n),
	}
}

func (c *converter) module(n *sitter.Node) ast.Node {
	name := c.expr(n.ChildByFieldName("name"))

	s := c.enter(false)
	defer c.leave(s)
	return &ast.Module{
		Name:       name,
		Body:       c.body(c.bodyChildren(n, "name")),
		Expression: c.span(n),
	}
}

func (c *converter) singletonClass(n *sitter.Node) ast.Node {
	value := c.expr(n.ChildByFieldName("value"))

	s := c.enter(false)
	defer c.leave(s)
	return &ast.SClass{
		Expr:       value,
		Body:       c.body(c.bodyChildren(n, "value")),
		Expression: c.span(n),
	}
}

// methodName converts the operands of alias and undef.
func (c *converter) methodName(n *sitter.Node) ast.Node {
	switch n.Type() {
	case "simple_symbol", "delimited_symbol":
		return c.expr(n)
	case "global_variable":
		return &ast.Gvar{Name: c.text(n)}
	default:
		return &ast.Sym{Name: c.text(n)}
	}
}

// parameters converts a method or lambda parameter list.
func (c *converter) parameters(n *sitter.Node) *ast.Args {
	args := &ast.Args{Args: []ast.Node{}}
	for _, child := range c.children(n) {
		if p := c.parameter(child); p != nil {
			args.Args = append(args.Args, p)
		}
	}
	return args
}

// blockParameters converts `|a, b; shadow|`. A lone parameter is wrapped in
// *ast.Procarg0.
func (c *converter) blockParameters(n *sitter.Node) *ast.Args {
	locals := fieldChildren(n, "locals")
	var params []ast.Node
	for _, child := range c.children(n) {
		if isLocal(child, locals) {
			continue
		}
		if p := c.parameter(child); p != nil {
			params = append(params, p)
		}
	}

	if len(params) == 1 && token(n, ",") == nil {
		switch p := params[0].(type) {
		case *ast.Arg:
			params[0] = &ast.Procarg0{Args: []ast.Node{p}}
		case *ast.Mlhs:
			params[0] = &ast.Procarg0{Args: p.Items, Begin: p.Begin, End: p.End}
		}
	}

	for _, local := range locals {
		name := c.text(local)
		c.scope.declare(name)
		params = append(params, &ast.Shadowarg{Name: name})
	}
	return &ast.Args{Args: params}
}

func isLocal(n *sitter.Node, locals []*sitter.Node) bool {
	for _, local := range locals {
		if local.StartByte() == n.StartByte() && local.EndByte() == n.EndByte() {
			return true
		}
	}
	return false
}

func (c *converter) parameter(n *sitter.Node) ast.Node {
	name := c.text(n.ChildByFieldName("name"))
	switch n.Type() {
	case "identifier":
		name = c.text(n)
		c.scope.declare(name)
		return &ast.Arg{Name: name}
	case "optional_parameter":
		c.scope.declare(name)
		return &ast.Optarg{Name: name, Default: c.expr(n.ChildByFieldName("value"))}
	case "keyword_parameter":
		c.scope.declare(name)
		if value := n.ChildByFieldName("value"); value != nil {
			return &ast.Kwoptarg{Name: name, Default: c.expr(value)}
		}
		return &ast.Kwarg{Name: name}
	case "splat_parameter":
		c.scope.declare(name)
		return &ast.Restarg{Name: name}
	case "hash_splat_parameter":
		c.scope.declare(name)
		return &ast.Kwrestarg{Name: name}
	case "hash_splat_nil":
		return &ast.Kwnilarg{}
	case "block_parameter":
		c.scope.declare(name)
		return &ast.Blockarg{Name: name}
	case "forward_parameter":
		return &ast.ForwardArg{}
	case "destructured_parameter":
		m := &ast.Mlhs{
			Begin: c.loc(token(n, "(")),
			End:   c.loc(lastToken(n, ")")),
		}
		for _, child := range c.children(n) {
			m.Items = append(m.Items, c.parameter(child))
		}
		return m
	}
	return c.unsupported(n)
}
