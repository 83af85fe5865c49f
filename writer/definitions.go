package writer

import "github.com/rubywriter/rubywriter/ast"

// writeDefinition writes the parameters and body of a method definition
// whose `def name` header is already written. An endless definition is
// written as `= expr` with no closing end.
func (cw *CodeWriter) writeDefinition(args, body ast.Node, assignment *ast.Loc, ctx Context) {
	cw.node(args, ctx)
	if assignment != nil {
		cw.str(" = ")
		cw.node(body, ctx)
		return
	}

	cw.str("\n")
	if !cw.signaturesOnly {
		cw.body(body, ctx.Indented())
	}
	cw.indent(ctx)
	cw.str("end")
}

// bodyWithEnd writes a newline, the indented body and a closing end.
func (cw *CodeWriter) bodyWithEnd(body ast.Node, ctx Context) {
	cw.str("\n")
	cw.body(body, ctx.Indented())
	cw.indent(ctx)
	cw.str("end")
}
