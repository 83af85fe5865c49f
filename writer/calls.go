package writer

import (
	"strings"

	"github.com/rubywriter/rubywriter/ast"
)

var binaryOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"<=>": true, "===": true, "=~": true, "!~": true,
	"&": true, "|": true, "^": true, "<<": true, ">>": true,
}

var unaryOperators = map[string]string{
	"-@": "-",
	"+@": "+",
	"!":  "!",
	"~":  "~",
}

func (cw *CodeWriter) writeSend(n *ast.Send, ctx Context) {
	c := ctx.Child(ast.KindSend)
	if n.Recv != nil && n.Dot == nil {
		if op, ok := unaryOperators[n.MethodName]; ok && len(n.Args) == 0 {
			cw.str(op)
			cw.node(n.Recv, c)
			return
		}
		if binaryOperators[n.MethodName] && len(n.Args) == 1 {
			cw.binary(n.Recv, " "+n.MethodName+" ", n.Args[0], c)
			return
		}
	}

	if n.Recv != nil {
		cw.node(n.Recv, c)
		if n.Dot != nil && n.Dot.Size() == 2 {
			cw.str("::")
		} else {
			cw.str(".")
		}
	}
	if n.Operator != nil {
		cw.setter(n.MethodName, n.Args, c)
		return
	}
	cw.str(n.MethodName)
	cw.arguments(n.Args, n.Begin, n.End, c)
}

func (cw *CodeWriter) writeCSend(n *ast.CSend, ctx Context) {
	c := ctx.Child(ast.KindCSend)
	cw.node(n.Recv, c)
	cw.str("&.")
	if n.Operator != nil {
		cw.setter(n.MethodName, n.Args, c)
		return
	}
	cw.str(n.MethodName)
	cw.arguments(n.Args, n.Begin, n.End, c)
}

// setter writes the `name = value` tail of an attribute assignment.
func (cw *CodeWriter) setter(method string, args []ast.Node, ctx Context) {
	cw.str(strings.TrimSuffix(method, "="))
	cw.str(" = ")
	cw.list(args, ctx, ", ")
}

// arguments writes call arguments. Parentheses are written only when the
// call had them; otherwise a single space separates the arguments from the
// method name.
func (cw *CodeWriter) arguments(args []ast.Node, begin, end *ast.Loc, ctx Context) {
	if begin != nil {
		cw.str("(")
	} else if len(args) > 0 {
		cw.str(" ")
	}
	cw.list(args, ctx, ", ")
	if end != nil {
		cw.str(")")
	}
}

func (cw *CodeWriter) keywordArgs(keyword string, args []ast.Node, ctx Context) {
	cw.str(keyword)
	if len(args) > 0 {
		cw.str(" ")
		cw.list(args, ctx, ", ")
	}
}

// writeBlock writes `call { |args| body }` or `call do |args| ... end`
// depending on the size of the opening token. A lambda call takes its
// parameters in parentheses right after the arrow.
func (cw *CodeWriter) writeBlock(n *ast.Block, ctx Context) {
	c := ctx.Child(ast.KindBlock)
	lambda := n.Call != nil && n.Call.Kind() == ast.KindLambda

	cw.node(n.Call, c)
	if lambda && n.Args != nil {
		cw.node(n.Args, ctx.Child(ast.KindLambda))
	}

	blockArgs := func() {
		if !lambda && n.Args != nil {
			cw.str(" ")
			cw.node(n.Args, c)
		}
	}

	if n.Begin.Size() == 2 {
		cw.str(" do")
		blockArgs()
		cw.str("\n")
		cw.body(n.Body, c.Indented())
		cw.indent(ctx)
		cw.str("end")
		return
	}

	cw.str(" {")
	blockArgs()
	if seq, ok := n.Body.(*ast.Begin); ok && seq.Begin == nil && len(seq.Statements) > 1 {
		cw.str("\n")
		cw.body(seq, c.Indented())
		cw.indent(ctx)
		cw.str("}")
		return
	}
	if n.Body != nil {
		cw.str(" ")
		cw.node(n.Body, c.Indented())
	}
	cw.str(" }")
}

// writeArgs writes a parameter list. Method and lambda parameters are
// wrapped in parentheses, block parameters in pipes. Block local variables
// follow a semicolon.
func (cw *CodeWriter) writeArgs(n *ast.Args, ctx Context) {
	open, close := "", ""
	switch ctx.Parent() {
	case ast.KindDef, ast.KindDefs, ast.KindLambda:
		open, close = "(", ")"
	case ast.KindBlock:
		open, close = "|", "|"
	}

	var params, shadows []ast.Node
	for _, arg := range n.Args {
		if arg.Kind() == ast.KindShadowarg {
			shadows = append(shadows, arg)
		} else {
			params = append(params, arg)
		}
	}

	c := ctx.Child(ast.KindArgs)
	cw.str(open)
	cw.list(params, c, ", ")
	if len(shadows) > 0 {
		cw.str("; ")
		cw.list(shadows, c, ", ")
	}
	cw.str(close)
}
