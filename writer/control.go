package writer

import "github.com/rubywriter/rubywriter/ast"

// elsifKeywordSize is the span size of the `elsif` keyword.
const elsifKeywordSize = 5

func (cw *CodeWriter) writeIf(n *ast.If, ctx Context) {
	c := ctx.Child(ast.KindIf)
	if n.IfTrue == nil && n.IfFalse != nil {
		cw.str("unless ")
		cw.node(n.Cond, c)
		cw.str("\n")
		cw.body(n.IfFalse, c.Indented())
	} else {
		cw.ifChain(n, "if ", c)
	}
	cw.indent(ctx)
	cw.str("end")
}

// ifChain writes one link of an if/elsif/else chain, without the closing end.
func (cw *CodeWriter) ifChain(n *ast.If, keyword string, ctx Context) {
	cw.str(keyword)
	cw.node(n.Cond, ctx)
	cw.str("\n")
	cw.body(n.IfTrue, ctx.Indented())
	if n.IfFalse == nil {
		return
	}

	cw.indent(ctx)
	if elsif, ok := n.IfFalse.(*ast.If); ok && elsif.Keyword.Size() == elsifKeywordSize {
		cw.ifChain(elsif, "elsif ", ctx)
		return
	}
	cw.str("else\n")
	cw.body(n.IfFalse, ctx.Indented())
}

func (cw *CodeWriter) writeIfMod(n *ast.IfMod, ctx Context) {
	c := ctx.Child(ast.KindIfMod)
	if n.IfTrue != nil {
		cw.binary(n.IfTrue, " if ", n.Cond, c)
		return
	}
	cw.binary(n.IfFalse, " unless ", n.Cond, c)
}

// writeCase writes case/when and case/in. The when, in and else keywords
// line up with case; their bodies sit one level deeper.
func (cw *CodeWriter) writeCase(expr ast.Node, branches []ast.Node, elseBody ast.Node, ctx Context) {
	cw.str("case")
	if expr != nil {
		cw.str(" ")
		cw.node(expr, ctx)
	}
	cw.str("\n")

	for _, b := range branches {
		cw.indent(ctx)
		cw.node(b, ctx)
	}
	if elseBody != nil {
		cw.indent(ctx)
		cw.str("else\n")
		cw.elseBody(elseBody, ctx.Indented())
	}
	cw.indent(ctx)
	cw.str("end")
}

func (cw *CodeWriter) writeWhen(n *ast.When, ctx Context) {
	c := ctx.Child(ast.KindWhen)
	cw.str("when ")
	cw.list(n.Patterns, c, ", ")
	cw.str("\n")
	cw.body(n.Body, c.Indented())
}

func (cw *CodeWriter) writeInPattern(n *ast.InPattern, ctx Context) {
	c := ctx.Child(ast.KindInPattern)
	cw.str("in ")
	cw.node(n.Pattern, c)
	cw.node(n.Guard, c)
	cw.str("\n")
	cw.body(n.Body, c.Indented())
}

// elseBody writes the statements of an else branch. An empty else has none.
func (cw *CodeWriter) elseBody(n ast.Node, ctx Context) {
	if n == nil || n.Kind() == ast.KindEmptyElse {
		return
	}
	cw.body(n, ctx)
}

// writeLoop writes a while or until loop. Without a closing end token the
// loop was a modifier and is written after its body.
func (cw *CodeWriter) writeLoop(keyword string, cond, body ast.Node, end *ast.Loc, ctx Context) {
	if end == nil {
		cw.node(body, ctx)
		cw.str(" " + keyword + " ")
		cw.node(cond, ctx)
		return
	}
	cw.str(keyword + " ")
	cw.node(cond, ctx)
	cw.str("\n")
	cw.body(body, ctx.Indented())
	cw.indent(ctx)
	cw.str("end")
}

func (cw *CodeWriter) writeFor(n *ast.For, ctx Context) {
	c := ctx.Child(ast.KindFor)
	cw.str("for ")
	cw.binary(n.Iterator, " in ", n.Iteratee, c)
	cw.str("\n")
	cw.body(n.Body, c.Indented())
	cw.indent(ctx)
	cw.str("end")
}

// writeBegin writes a statement sequence in expression position.
// Parenthesized sequences stay on one line.
func (cw *CodeWriter) writeBegin(n *ast.Begin, ctx Context) {
	c := ctx.Child(ast.KindBegin)
	if n.Begin != nil {
		cw.str("(")
		cw.list(n.Statements, c, "; ")
		if n.End != nil {
			cw.str(")")
		}
		return
	}
	for i, stmt := range n.Statements {
		if i > 0 {
			cw.str("\n")
			cw.indent(ctx)
		}
		cw.node(stmt, c)
	}
}

func (cw *CodeWriter) writeKwBegin(n *ast.KwBegin, ctx Context) {
	c := ctx.Child(ast.KindKwBegin)
	cw.str("begin\n")
	for _, stmt := range n.Statements {
		cw.statement(stmt, c.Indented())
	}
	cw.indent(ctx)
	cw.str("end")
}

// writeRescue is entered at the depth of the protected body. Clause keywords
// are written one level shallower, clause bodies at the body depth.
func (cw *CodeWriter) writeRescue(n *ast.Rescue, ctx Context) {
	c := ctx.Child(ast.KindRescue)
	if n.Modifier {
		cw.node(n.Body, c)
		cw.str(" rescue ")
		if len(n.RescueBodies) > 0 {
			if rb, ok := n.RescueBodies[0].(*ast.RescueBody); ok {
				cw.node(rb.Body, c)
			}
		}
		return
	}

	cw.body(n.Body, c)
	clause := c.Outdented()
	for _, rb := range n.RescueBodies {
		cw.indent(clause)
		cw.node(rb, clause)
	}
	if n.Else != nil {
		cw.indent(clause)
		cw.str("else\n")
		cw.elseBody(n.Else, c)
	}
}

func (cw *CodeWriter) writeRescueBody(n *ast.RescueBody, ctx Context) {
	c := ctx.Child(ast.KindRescueBody)
	cw.str("rescue")
	if n.ExcList != nil {
		cw.str(" ")
		cw.node(n.ExcList, c)
	}
	if n.ExcVar != nil {
		cw.str(" => ")
		cw.node(n.ExcVar, c)
	}
	cw.str("\n")
	cw.body(n.Body, c.Indented())
}

// writeEnsure is entered at the depth of the protected body, like writeRescue.
func (cw *CodeWriter) writeEnsure(n *ast.Ensure, ctx Context) {
	c := ctx.Child(ast.KindEnsure)
	cw.body(n.Body, c)
	cw.indent(c.Outdented())
	cw.str("ensure\n")
	cw.body(n.Ensure, c)
}

func (cw *CodeWriter) writeExe(keyword string, body ast.Node, ctx Context) {
	cw.str(keyword + " {")
	if seq, ok := body.(*ast.Begin); ok && seq.Begin == nil {
		cw.str("\n")
		cw.body(seq, ctx.Indented())
		cw.indent(ctx)
		cw.str("}")
		return
	}
	if body != nil {
		cw.str(" ")
		cw.node(body, ctx.Indented())
	}
	cw.str(" }")
}
