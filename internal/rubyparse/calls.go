package rubyparse

import (
	"strings"

	"github.com/rubywriter/rubywriter/ast"
	sitter "github.com/smacker/go-tree-sitter"
)

func (c *converter) identifier(n *sitter.Node) ast.Node {
	switch name := c.text(n); name {
	case "__FILE__":
		return &ast.File{}
	case "__LINE__":
		return &ast.Line{}
	case "__ENCODING__":
		return &ast.Encoding{}
	default:
		return c.name(name)
	}
}

// name resolves a bare identifier: a local when one is in scope, a
// numbered block parameter, or else a receiverless call.
func (c *converter) name(name string) ast.Node {
	if c.scope.has(name) || c.scope.useNumbered(name) {
		return &ast.Lvar{Name: name}
	}
	return &ast.Send{MethodName: name}
}

func (c *converter) scopeResolution(n *sitter.Node) ast.Node {
	var scope ast.Node = &ast.Cbase{}
	if s := n.ChildByFieldName("scope"); s != nil {
		scope = c.expr(s)
	}
	return &ast.Const{Scope: scope, Name: c.text(n.ChildByFieldName("name"))}
}

func (c *converter) assignment(n *sitter.Node) ast.Node {
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	if left.Type() == "left_assignment_list" {
		lhs := c.mlhs(left)
		return &ast.Masgn{Lhs: lhs, Rhs: c.assignedValue(right)}
	}

	target := c.target(left)
	value := c.assignedValue(right)
	switch t := target.(type) {
	case *ast.Lvasgn:
		t.Value = value
	case *ast.Ivasgn:
		t.Value = value
	case *ast.Cvasgn:
		t.Value = value
	case *ast.Gvasgn:
		t.Value = value
	case *ast.Casgn:
		t.Value = value
		t.Expression = c.span(n)
	case *ast.IndexAsgn:
		t.Value = value
	case *ast.Send:
		t.MethodName += "="
		t.Args = []ast.Node{value}
		t.Operator = c.loc(token(n, "="))
	case *ast.CSend:
		t.MethodName += "="
		t.Args = []ast.Node{value}
		t.Operator = c.loc(token(n, "="))
	}
	return target
}

// assignedValue converts the right hand side of an assignment. A bare list
// of values becomes an array without brackets.
func (c *converter) assignedValue(n *sitter.Node) ast.Node {
	switch n.Type() {
	case "right_assignment_list":
		return &ast.Array{Elements: c.statements(c.children(n))}
	case "splat_argument":
		return &ast.Array{Elements: []ast.Node{c.expr(n)}}
	default:
		return c.expr(n)
	}
}

// target converts an assignable expression without its value. Identifiers
// are declared as locals.
func (c *converter) target(n *sitter.Node) ast.Node {
	switch n.Type() {
	case "identifier":
		name := c.text(n)
		c.scope.declare(name)
		return &ast.Lvasgn{Name: name}
	case "instance_variable":
		return &ast.Ivasgn{Name: c.text(n)}
	case "class_variable":
		return &ast.Cvasgn{Name: c.text(n)}
	case "global_variable":
		return &ast.Gvasgn{Name: c.text(n)}
	case "constant":
		return &ast.Casgn{Name: c.text(n), Expression: c.span(n)}
	case "scope_resolution":
		var scope ast.Node = &ast.Cbase{}
		if s := n.ChildByFieldName("scope"); s != nil {
			scope = c.expr(s)
		}
		return &ast.Casgn{Scope: scope, Name: c.text(n.ChildByFieldName("name")), Expression: c.span(n)}
	case "element_reference":
		index := c.elementReference(n).(*ast.Index)
		return &ast.IndexAsgn{Recv: index.Recv, Indexes: index.Indexes}
	case "call":
		recv := c.expr(n.ChildByFieldName("receiver"))
		name := c.text(n.ChildByFieldName("method"))
		operator := callOperator(n)
		if c.text(operator) == "&." {
			return &ast.CSend{Recv: recv, MethodName: name}
		}
		return &ast.Send{Recv: recv, MethodName: name, Dot: c.loc(operator)}
	case "rest_assignment", "splat_parameter":
		splat := &ast.Splat{}
		if inner := firstNamed(c.children(n)); inner != nil {
			splat.Value = c.target(inner)
		}
		return splat
	case "destructured_left_assignment", "left_assignment_list":
		return c.mlhs(n)
	}
	return c.unsupported(n)
}

func (c *converter) mlhs(n *sitter.Node) *ast.Mlhs {
	m := &ast.Mlhs{
		Begin: c.loc(token(n, "(")),
		End:   c.loc(lastToken(n, ")")),
	}
	for _, child := range c.children(n) {
		m.Items = append(m.Items, c.target(child))
	}
	return m
}

func (c *converter) operatorAssignment(n *sitter.Node) ast.Node {
	target := c.target(n.ChildByFieldName("left"))
	value := c.assignedValue(n.ChildByFieldName("right"))
	operator := c.text(n.ChildByFieldName("operator"))
	if operator == "" {
		operator = c.text(token(n, "+=", "-=", "*=", "/=", "%=", "**=", "&=", "|=", "^=", "<<=", ">>=", "&&=", "||="))
	}
	switch operator {
	case "||=":
		return &ast.OrAsgn{Recv: target, Value: value}
	case "&&=":
		return &ast.AndAsgn{Recv: target, Value: value}
	default:
		return &ast.OpAsgn{Recv: target, Operator: strings.TrimSuffix(operator, "="), Value: value}
	}
}

func (c *converter) binary(n *sitter.Node) ast.Node {
	left := c.expr(n.ChildByFieldName("left"))
	right := c.expr(n.ChildByFieldName("right"))
	switch operator := c.text(n.ChildByFieldName("operator")); operator {
	case "and", "&&":
		return &ast.And{Lhs: left, Rhs: right}
	case "or", "||":
		return &ast.Or{Lhs: left, Rhs: right}
	default:
		return &ast.Send{Recv: left, MethodName: operator, Args: []ast.Node{right}}
	}
}

func (c *converter) unary(n *sitter.Node) ast.Node {
	operand := n.ChildByFieldName("operand")
	switch operator := c.text(n.ChildByFieldName("operator")); operator {
	case "defined?":
		if operand.Type() == "parenthesized_statements" {
			return &ast.Defined{
				Value: sequence(c.statements(c.children(operand))),
				Begin: c.loc(token(operand, "(")),
				End:   c.loc(lastToken(operand, ")")),
			}
		}
		return &ast.Defined{Value: c.expr(operand)}
	case "not", "!":
		return &ast.Send{Recv: c.expr(operand), MethodName: "!"}
	case "-":
		switch operand.Type() {
		case "integer":
			return &ast.Int{Value: "-" + c.text(operand)}
		case "float":
			return &ast.Float{Value: "-" + c.text(operand)}
		case "rational":
			return &ast.Rational{Value: "-" + c.text(operand)}
		case "complex":
			return &ast.Complex{Value: "-" + c.text(operand)}
		}
		return &ast.Send{Recv: c.expr(operand), MethodName: "-@"}
	case "+":
		return &ast.Send{Recv: c.expr(operand), MethodName: "+@"}
	default:
		return &ast.Send{Recv: c.expr(operand), MethodName: operator}
	}
}

// rangeNode converts a range. In a condition a range is a flip-flop.
func (c *converter) rangeNode(n *sitter.Node, flipFlop bool) ast.Node {
	left := c.expr(n.ChildByFieldName("begin"))
	right := c.expr(n.ChildByFieldName("end"))
	exclusive := token(n, "...") != nil
	switch {
	case flipFlop && exclusive:
		return &ast.EFlipFlop{Left: left, Right: right}
	case flipFlop:
		return &ast.IFlipFlop{Left: left, Right: right}
	case exclusive:
		return &ast.Erange{Left: left, Right: right}
	default:
		return &ast.Irange{Left: left, Right: right}
	}
}

// callOperator returns the `.`, `&.` or `::` token of a call.
func callOperator(n *sitter.Node) *sitter.Node {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op
	}
	return token(n, ".", "&.", "::")
}

func (c *converter) call(n *sitter.Node) ast.Node {
	receiver := n.ChildByFieldName("receiver")
	method := n.ChildByFieldName("method")
	args, open, close := c.arguments(n.ChildByFieldName("arguments"))

	var call ast.Node
	switch {
	case receiver == nil && method != nil && method.Type() == "super":
		if n.ChildByFieldName("arguments") == nil {
			call = &ast.ZSuper{}
		} else {
			call = &ast.Super{Args: args, Begin: open, End: close}
		}
	default:
		recv := c.expr(receiver)
		name := "call"
		if method != nil {
			name = c.text(method)
		}
		operator := callOperator(n)
		if c.text(operator) == "&." {
			call = &ast.CSend{Recv: recv, MethodName: name, Args: args, Begin: open, End: close}
		} else {
			send := &ast.Send{Recv: recv, MethodName: name, Args: args, Begin: open, End: close}
			if recv != nil {
				send.Dot = c.loc(operator)
			}
			call = send
		}
	}

	if block := n.ChildByFieldName("block"); block != nil {
		return c.block(call, block)
	}
	return call
}

// arguments converts an argument list. Trailing labels and double splats
// are grouped into one *ast.Kwargs.
func (c *converter) arguments(n *sitter.Node) ([]ast.Node, *ast.Loc, *ast.Loc) {
	if n == nil {
		return nil, nil, nil
	}
	var args []ast.Node
	var kwargs *ast.Kwargs
	for _, child := range c.children(n) {
		switch child.Type() {
		case "pair", "hash_splat_argument":
			if kwargs == nil {
				kwargs = &ast.Kwargs{}
				args = append(args, kwargs)
			}
			kwargs.Pairs = append(kwargs.Pairs, c.expr(child))
		default:
			if arg := c.expr(child); arg != nil {
				args = append(args, arg)
			}
		}
	}
	return args, c.loc(token(n, "(")), c.loc(lastToken(n, ")"))
}

func (c *converter) elementReference(n *sitter.Node) ast.Node {
	return &ast.Index{
		Recv:    c.expr(n.ChildByFieldName("object")),
		Indexes: c.statements(c.bodyChildren(n, "object")),
	}
}

// block attaches a brace or do block to call. A block without parameters
// that refers to _1 and friends becomes a numbered block.
func (c *converter) block(call ast.Node, n *sitter.Node) ast.Node {
	s := c.enter(true)
	defer c.leave(s)

	var args ast.Node
	params := n.ChildByFieldName("parameters")
	if params != nil {
		args = c.blockParameters(params)
	}
	body := c.body(c.bodyChildren(n, "parameters"))

	if params == nil && s.numbered > 0 {
		return &ast.Numblock{Call: call, NumArgs: s.numbered, Body: body}
	}
	return &ast.Block{Call: call, Args: args, Body: body, Begin: c.span(n.Child(0))}
}

func (c *converter) lambda(n *sitter.Node) ast.Node {
	s := c.enter(true)
	defer c.leave(s)

	var args ast.Node
	params := n.ChildByFieldName("parameters")
	if params != nil {
		args = c.parameters(params)
	}
	blockNode := n.ChildByFieldName("body")
	if blockNode == nil {
		return c.unsupported(n)
	}
	body := c.body(c.bodyChildren(blockNode, "parameters"))

	if params == nil && s.numbered > 0 {
		return &ast.Numblock{Call: &ast.Lambda{}, NumArgs: s.numbered, Body: body}
	}
	return &ast.Block{Call: &ast.Lambda{}, Args: args, Body: body, Begin: c.span(blockNode.Child(0))}
}
