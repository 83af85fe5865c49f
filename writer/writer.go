// Package writer renders a Ruby syntax tree back into source text.
//
// Surface syntax is re-derived from the node structure and its presence
// markers: block form, quoting, label shorthand and indentation are never
// copied from the original text. Output uses a two space indentation unit.
//
// Writing is fail fast. The first error returned by the underlying sink is
// kept, the render stops at the next node boundary, and the error is returned
// by Write, WriteBody and Flush. Node shapes the writer does not know how to
// render produce a placeholder and are reported, rendering then continues.
package writer

import (
	"bufio"
	"io"
	"strings"

	"github.com/rubywriter/rubywriter/ast"
)

const (
	indentUnit = "  "

	// UnsupportedPlaceholder is written in place of a node the writer cannot render.
	UnsupportedPlaceholder = "unsupported"
	// UnsupportedFragment is written in place of an interpolated string part
	// of an unrecognized kind.
	UnsupportedFragment = "#{unsupported}"
)

// Option configures a CodeWriter.
type Option func(*CodeWriter)

// WithDocumentation writes the comment block that precedes each definition,
// class, module and constant assignment.
func WithDocumentation(docs *DocumentationContext) Option {
	return func(cw *CodeWriter) {
		cw.docs = docs
	}
}

// WithoutMethodBodies renders method definitions as signatures with an empty body.
func WithoutMethodBodies() Option {
	return func(cw *CodeWriter) {
		cw.signaturesOnly = true
	}
}

// WithUnsupportedHandler calls f for every node rendered as a placeholder.
func WithUnsupportedHandler(f func(ast.Node)) Option {
	return func(cw *CodeWriter) {
		cw.onUnsupported = f
	}
}

// CodeWriter renders nodes to a buffered sink.
type CodeWriter struct {
	out            *bufio.Writer
	err            error
	docs           *DocumentationContext
	signaturesOnly bool
	onUnsupported  func(ast.Node)
	unsupported    []ast.Node
}

// New creates a CodeWriter that buffers its output to w.
// Callers must call Flush once rendering is done.
func New(w io.Writer, opts ...Option) *CodeWriter {
	cw := &CodeWriter{out: bufio.NewWriter(w)}
	for _, opt := range opts {
		opt(cw)
	}
	return cw
}

// WriteCode renders a whole program. The statements of root are written one
// per line at depth zero, then the output is flushed.
func WriteCode(w io.Writer, root ast.Node, opts ...Option) error {
	cw := New(w, opts...)
	if err := cw.WriteBody(root, NewContext(0)); err != nil {
		return err
	}
	return cw.Flush()
}

// Write renders a single node inline, without leading indentation or a
// trailing newline.
func (cw *CodeWriter) Write(n ast.Node, ctx Context) error {
	cw.node(n, ctx)
	return cw.err
}

// WriteBody renders a statement body, one statement per line, each indented
// to the depth of ctx.
func (cw *CodeWriter) WriteBody(n ast.Node, ctx Context) error {
	cw.body(n, ctx)
	return cw.err
}

// Flush writes any buffered output to the sink.
func (cw *CodeWriter) Flush() error {
	if cw.err != nil {
		return cw.err
	}
	cw.err = cw.out.Flush()
	return cw.err
}

// Unsupported returns the nodes that were rendered as placeholders.
func (cw *CodeWriter) Unsupported() []ast.Node {
	return cw.unsupported
}

func (cw *CodeWriter) str(s string) {
	if cw.err != nil {
		return
	}
	_, cw.err = cw.out.WriteString(s)
}

func (cw *CodeWriter) indent(ctx Context) {
	if ctx.Indent() > 0 {
		cw.str(strings.Repeat(indentUnit, ctx.Indent()))
	}
}

func (cw *CodeWriter) unsupportedNode(n ast.Node) {
	cw.unsupported = append(cw.unsupported, n)
	if cw.onUnsupported != nil {
		cw.onUnsupported(n)
	}
}

// list writes nodes inline, separated by sep.
func (cw *CodeWriter) list(nodes []ast.Node, ctx Context, sep string) {
	for i, n := range nodes {
		if i > 0 {
			cw.str(sep)
		}
		cw.node(n, ctx)
	}
}

// body writes each statement of n on its own indented line. Rescue and
// ensure wrappers lay out their own lines so that their clause keywords can
// sit one level shallower.
func (cw *CodeWriter) body(n ast.Node, ctx Context) {
	if n == nil {
		return
	}
	if seq, ok := n.(*ast.Begin); ok && seq.Begin == nil {
		for _, stmt := range seq.Statements {
			cw.statement(stmt, ctx)
		}
		return
	}
	cw.statement(n, ctx)
}

func (cw *CodeWriter) statement(n ast.Node, ctx Context) {
	if r, ok := n.(*ast.Rescue); ok && !r.Modifier {
		cw.node(n, ctx)
		return
	}
	if _, ok := n.(*ast.Ensure); ok {
		cw.node(n, ctx)
		return
	}
	cw.indent(ctx)
	cw.node(n, ctx)
	cw.str("\n")
}

// node dispatches on the node kind.
func (cw *CodeWriter) node(n ast.Node, ctx Context) {
	if n == nil || cw.err != nil {
		return
	}

	switch n := n.(type) {
	// literals
	case *ast.Int:
		cw.str(n.Value)
	case *ast.Float:
		cw.str(n.Value)
	case *ast.Rational:
		cw.str(n.Value)
	case *ast.Complex:
		cw.str(n.Value)
	case *ast.Str:
		cw.writeStr(n)
	case *ast.Dstr:
		cw.writeDstr(n, ctx)
	case *ast.Sym:
		cw.writeSym(n, ctx)
	case *ast.Dsym:
		cw.writeDsym(n, ctx)
	case *ast.Xstr:
		cw.quoted("`", n.Parts, ctx.Child(ast.KindXstr))
	case *ast.Heredoc:
		cw.quoted(`"`, n.Parts, ctx.Child(ast.KindHeredoc))
	case *ast.XHeredoc:
		cw.quoted("`", n.Parts, ctx.Child(ast.KindXHeredoc))
	case *ast.Regexp:
		cw.writeRegexp(n, ctx)
	case *ast.RegOpt:
		cw.str(n.Options)
	case *ast.True:
		cw.str("true")
	case *ast.False:
		cw.str("false")
	case *ast.Nil:
		cw.str("nil")
	case *ast.Self:
		cw.str("self")
	case *ast.File:
		cw.str("__FILE__")
	case *ast.Line:
		cw.str("__LINE__")
	case *ast.Encoding:
		cw.str("__ENCODING__")
	case *ast.Array:
		cw.writeArray(n, ctx)
	case *ast.Hash:
		cw.delimited(n.Pairs, n.Begin, n.End, "{", "}", ctx.Child(ast.KindHash))
	case *ast.Pair:
		cw.writePair(n, ctx)
	case *ast.Kwargs:
		cw.list(n.Pairs, ctx.Child(ast.KindKwargs), ", ")
	case *ast.Kwsplat:
		cw.str("**")
		cw.node(n.Value, ctx.Child(ast.KindKwsplat))
	case *ast.Irange:
		cw.writeRange(n.Left, n.Right, "..", ctx.Child(ast.KindIrange))
	case *ast.Erange:
		cw.writeRange(n.Left, n.Right, "...", ctx.Child(ast.KindErange))
	case *ast.IFlipFlop:
		cw.writeRange(n.Left, n.Right, "..", ctx.Child(ast.KindIFlipFlop))
	case *ast.EFlipFlop:
		cw.writeRange(n.Left, n.Right, "...", ctx.Child(ast.KindEFlipFlop))

	// variables
	case *ast.Lvar:
		cw.str(n.Name)
	case *ast.Ivar:
		cw.str(n.Name)
	case *ast.Cvar:
		cw.str(n.Name)
	case *ast.Gvar:
		cw.str(n.Name)
	case *ast.BackRef:
		cw.str(n.Name)
	case *ast.NthRef:
		cw.str("$")
		cw.str(n.Name)
	case *ast.Const:
		cw.scope(n.Scope, ctx.Child(ast.KindConst))
		cw.str(n.Name)
	case *ast.Cbase:
		cw.str("::")

	// assignments
	case *ast.Lvasgn:
		cw.assign(n.Name, n.Value, ctx.Child(ast.KindLvasgn))
	case *ast.Ivasgn:
		cw.assign(n.Name, n.Value, ctx.Child(ast.KindIvasgn))
	case *ast.Cvasgn:
		cw.assign(n.Name, n.Value, ctx.Child(ast.KindCvasgn))
	case *ast.Gvasgn:
		cw.assign(n.Name, n.Value, ctx.Child(ast.KindGvasgn))
	case *ast.Casgn:
		cw.documentation(n.Expression, ctx)
		cw.scope(n.Scope, ctx.Child(ast.KindCasgn))
		cw.assign(n.Name, n.Value, ctx.Child(ast.KindCasgn))
	case *ast.OpAsgn:
		cw.node(n.Recv, ctx.Child(ast.KindOpAsgn))
		cw.str(" " + n.Operator + "= ")
		cw.node(n.Value, ctx.Child(ast.KindOpAsgn))
	case *ast.AndAsgn:
		cw.binary(n.Recv, " &&= ", n.Value, ctx.Child(ast.KindAndAsgn))
	case *ast.OrAsgn:
		cw.binary(n.Recv, " ||= ", n.Value, ctx.Child(ast.KindOrAsgn))
	case *ast.IndexAsgn:
		c := ctx.Child(ast.KindIndexAsgn)
		cw.node(n.Recv, c)
		cw.str("[")
		cw.list(n.Indexes, c, ", ")
		cw.str("]")
		if n.Value != nil {
			cw.str(" = ")
			cw.node(n.Value, c)
		}
	case *ast.Masgn:
		cw.binary(n.Lhs, " = ", n.Rhs, ctx.Child(ast.KindMasgn))
	case *ast.Mlhs:
		cw.delimited(n.Items, n.Begin, n.End, "(", ")", ctx.Child(ast.KindMlhs))

	// expressions and calls
	case *ast.And:
		cw.binary(n.Lhs, " && ", n.Rhs, ctx.Child(ast.KindAnd))
	case *ast.Or:
		cw.binary(n.Lhs, " || ", n.Rhs, ctx.Child(ast.KindOr))
	case *ast.Defined:
		cw.str("defined?")
		if n.Begin == nil {
			cw.str(" ")
		} else {
			cw.str("(")
		}
		cw.node(n.Value, ctx.Child(ast.KindDefined))
		if n.End != nil {
			cw.str(")")
		}
	case *ast.Splat:
		cw.str("*")
		cw.node(n.Value, ctx.Child(ast.KindSplat))
	case *ast.Index:
		c := ctx.Child(ast.KindIndex)
		cw.node(n.Recv, c)
		cw.str("[")
		cw.list(n.Indexes, c, ", ")
		cw.str("]")
	case *ast.Send:
		cw.writeSend(n, ctx)
	case *ast.CSend:
		cw.writeCSend(n, ctx)
	case *ast.Block:
		cw.writeBlock(n, ctx)
	case *ast.Numblock:
		c := ctx.Child(ast.KindNumblock)
		cw.node(n.Call, c)
		cw.str(" { ")
		cw.node(n.Body, c.Indented())
		cw.str(" }")
	case *ast.BlockPass:
		cw.str("&")
		cw.node(n.Value, ctx.Child(ast.KindBlockPass))
	case *ast.Lambda:
		cw.str("->")
	case *ast.Super:
		cw.str("super")
		cw.arguments(n.Args, n.Begin, n.End, ctx.Child(ast.KindSuper))
	case *ast.ZSuper:
		cw.str("super")
	case *ast.Yield:
		cw.str("yield")
		cw.arguments(n.Args, n.Begin, n.End, ctx.Child(ast.KindYield))
	case *ast.Return:
		cw.keywordArgs("return", n.Args, ctx.Child(ast.KindReturn))
	case *ast.Break:
		cw.keywordArgs("break", n.Args, ctx.Child(ast.KindBreak))
	case *ast.Next:
		cw.keywordArgs("next", n.Args, ctx.Child(ast.KindNext))
	case *ast.Redo:
		cw.str("redo")
	case *ast.Retry:
		cw.str("retry")

	// control flow
	case *ast.If:
		cw.writeIf(n, ctx)
	case *ast.IfMod:
		cw.writeIfMod(n, ctx)
	case *ast.IfTernary:
		c := ctx.Child(ast.KindIfTernary)
		cw.node(n.Cond, c)
		cw.str(" ? ")
		cw.node(n.IfTrue, c)
		cw.str(" : ")
		cw.node(n.IfFalse, c)
	case *ast.Case:
		cw.writeCase(n.Expr, n.WhenBodies, n.ElseBody, ctx.Child(ast.KindCase))
	case *ast.When:
		cw.writeWhen(n, ctx)
	case *ast.CaseMatch:
		cw.writeCase(n.Expr, n.InBodies, n.ElseBody, ctx.Child(ast.KindCaseMatch))
	case *ast.InPattern:
		cw.writeInPattern(n, ctx)
	case *ast.IfGuard:
		cw.str(" if ")
		cw.node(n.Cond, ctx.Child(ast.KindIfGuard))
	case *ast.UnlessGuard:
		cw.str(" unless ")
		cw.node(n.Cond, ctx.Child(ast.KindUnlessGuard))
	case *ast.While:
		cw.writeLoop("while", n.Cond, n.Body, n.End, ctx.Child(ast.KindWhile))
	case *ast.Until:
		cw.writeLoop("until", n.Cond, n.Body, n.End, ctx.Child(ast.KindUntil))
	case *ast.WhilePost:
		cw.binary(n.Body, " while ", n.Cond, ctx.Child(ast.KindWhilePost))
	case *ast.UntilPost:
		cw.binary(n.Body, " until ", n.Cond, ctx.Child(ast.KindUntilPost))
	case *ast.For:
		cw.writeFor(n, ctx)
	case *ast.Begin:
		cw.writeBegin(n, ctx)
	case *ast.KwBegin:
		cw.writeKwBegin(n, ctx)
	case *ast.Rescue:
		cw.writeRescue(n, ctx)
	case *ast.RescueBody:
		cw.writeRescueBody(n, ctx)
	case *ast.Ensure:
		cw.writeEnsure(n, ctx)
	case *ast.EmptyElse:
		// the owning construct writes the else keyword
	case *ast.Preexe:
		cw.writeExe("BEGIN", n.Body, ctx.Child(ast.KindPreexe))
	case *ast.Postexe:
		cw.writeExe("END", n.Body, ctx.Child(ast.KindPostexe))

	// definitions
	case *ast.Def:
		cw.documentation(n.Expression, ctx)
		cw.str("def ")
		cw.str(n.Name)
		cw.writeDefinition(n.Args, n.Body, n.Assignment, ctx.Child(ast.KindDef))
	case *ast.Defs:
		cw.documentation(n.Expression, ctx)
		cw.str("def ")
		cw.node(n.Definee, ctx.Child(ast.KindDefs))
		cw.str(".")
		cw.str(n.Name)
		cw.writeDefinition(n.Args, n.Body, n.Assignment, ctx.Child(ast.KindDefs))
	case *ast.Class:
		cw.documentation(n.Expression, ctx)
		c := ctx.Child(ast.KindClass)
		cw.str("class ")
		cw.node(n.Name, c)
		if n.Superclass != nil {
			cw.str(" < ")
			cw.node(n.Superclass, c)
		}
		cw.bodyWithEnd(n.Body, c)
	case *ast.Module:
		cw.documentation(n.Expression, ctx)
		c := ctx.Child(ast.KindModule)
		cw.str("module ")
		cw.node(n.Name, c)
		cw.bodyWithEnd(n.Body, c)
	case *ast.SClass:
		cw.documentation(n.Expression, ctx)
		c := ctx.Child(ast.KindSClass)
		cw.str("class << ")
		cw.node(n.Expr, c)
		cw.bodyWithEnd(n.Body, c)
	case *ast.Alias:
		cw.str("alias ")
		cw.binary(n.To, " ", n.From, ctx.Child(ast.KindAlias))
	case *ast.Undef:
		cw.str("undef ")
		cw.list(n.Names, ctx.Child(ast.KindUndef), ", ")
	case *ast.Args:
		cw.writeArgs(n, ctx)
	case *ast.Arg:
		cw.str(n.Name)
	case *ast.Optarg:
		cw.str(n.Name)
		cw.str(" = ")
		cw.node(n.Default, ctx.Child(ast.KindOptarg))
	case *ast.Restarg:
		cw.str("*")
		cw.str(n.Name)
	case *ast.Kwarg:
		cw.str(n.Name)
		cw.str(":")
	case *ast.Kwoptarg:
		cw.str(n.Name)
		cw.str(": ")
		cw.node(n.Default, ctx.Child(ast.KindKwoptarg))
	case *ast.Kwrestarg:
		cw.str("**")
		cw.str(n.Name)
	case *ast.Kwnilarg:
		cw.str("**nil")
	case *ast.Blockarg:
		cw.str("&")
		cw.str(n.Name)
	case *ast.Shadowarg:
		cw.str(n.Name)
	case *ast.Procarg0:
		cw.delimited(n.Args, n.Begin, n.End, "(", ")", ctx.Child(ast.KindProcarg0))
	case *ast.ForwardArg:
		cw.str("...")
	case *ast.ForwardedArgs:
		cw.str("...")

	// pattern matching
	case *ast.ArrayPattern:
		cw.delimited(n.Elements, n.Begin, n.End, "[", "]", ctx.Child(ast.KindArrayPattern))
	case *ast.ArrayPatternWithTail:
		cw.delimited(n.Elements, n.Begin, n.End, "[", ",]", ctx.Child(ast.KindArrayPatternWithTail))
		if n.End == nil {
			cw.str(",")
		}
	case *ast.HashPattern:
		cw.delimited(n.Elements, n.Begin, n.End, "{", "}", ctx.Child(ast.KindHashPattern))
	case *ast.FindPattern:
		cw.delimited(n.Elements, n.Begin, n.End, "[", "]", ctx.Child(ast.KindFindPattern))
	case *ast.ConstPattern:
		c := ctx.Child(ast.KindConstPattern)
		cw.node(n.Const, c)
		cw.str("(")
		cw.node(n.Pattern, c)
		cw.str(")")
	case *ast.MatchAlt:
		cw.binary(n.Lhs, " | ", n.Rhs, ctx.Child(ast.KindMatchAlt))
	case *ast.MatchAs:
		cw.binary(n.Value, " => ", n.As, ctx.Child(ast.KindMatchAs))
	case *ast.MatchRest:
		cw.str("*")
		cw.node(n.Name, ctx.Child(ast.KindMatchRest))
	case *ast.MatchVar:
		cw.str(n.Name)
		if ctx.Parent() == ast.KindHashPattern {
			cw.str(":")
		}
	case *ast.MatchNilPattern:
		cw.str("**nil")
	case *ast.Pin:
		cw.str("^")
		cw.node(n.Var, ctx.Child(ast.KindPin))
	case *ast.MatchPattern:
		cw.binary(n.Value, " => ", n.Pattern, ctx.Child(ast.KindMatchPattern))
	case *ast.MatchPatternP:
		cw.binary(n.Value, " in ", n.Pattern, ctx.Child(ast.KindMatchPatternP))
	case *ast.MatchCurrentLine:
		cw.node(n.Re, ctx.Child(ast.KindMatchCurrentLine))
	case *ast.MatchWithLvasgn:
		cw.binary(n.Re, " =~ ", n.Value, ctx.Child(ast.KindMatchWithLvasgn))

	default:
		cw.str(UnsupportedPlaceholder)
		cw.unsupportedNode(n)
	}
}

// binary writes lhs, op and rhs on one line.
func (cw *CodeWriter) binary(lhs ast.Node, op string, rhs ast.Node, ctx Context) {
	cw.node(lhs, ctx)
	cw.str(op)
	cw.node(rhs, ctx)
}

// delimited writes a comma separated list wrapped in open and close, each
// written only when its presence marker is set.
func (cw *CodeWriter) delimited(nodes []ast.Node, begin, end *ast.Loc, open, close string, ctx Context) {
	if begin != nil {
		cw.str(open)
	}
	cw.list(nodes, ctx, ", ")
	if end != nil {
		cw.str(close)
	}
}

func (cw *CodeWriter) documentation(expression ast.Loc, ctx Context) {
	if cw.docs == nil || cw.err != nil {
		return
	}
	if err := cw.docs.WriteDocumentation(cw.out, ctx.Indent(), expression.Begin); err != nil {
		cw.err = err
	}
}
