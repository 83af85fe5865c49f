package writer

import (
	"strings"

	"github.com/rubywriter/rubywriter/ast"
)

func (cw *CodeWriter) writeStr(n *ast.Str) {
	if n.Begin == nil && n.End == nil {
		cw.str(n.Value)
		return
	}
	if n.Begin != nil {
		cw.str(`"`)
	}
	cw.str(escapeString(n.Value, '"'))
	if n.End != nil {
		cw.str(`"`)
	}
}

func (cw *CodeWriter) writeDstr(n *ast.Dstr, ctx Context) {
	c := ctx.Child(ast.KindDstr)
	if n.Begin == nil && isLiteralSequence(n.Parts) {
		cw.list(n.Parts, c, " ")
		return
	}
	cw.quoted(`"`, n.Parts, c)
}

// isLiteralSequence reports whether parts are adjacent quoted literals, as in
// `"a" "b"`.
func isLiteralSequence(parts []ast.Node) bool {
	if len(parts) == 0 {
		return false
	}
	for _, part := range parts {
		switch part := part.(type) {
		case *ast.Str:
			if part.Begin == nil {
				return false
			}
		case *ast.Dstr:
			if part.Begin == nil {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (cw *CodeWriter) writeSym(n *ast.Sym, ctx Context) {
	switch {
	case ctx.Parent() == ast.KindPair:
		// label key: `name:` or `"quoted name":`
		if n.Begin == nil {
			cw.str(n.Name)
			return
		}
		cw.str(`"` + escapeString(n.Name, '"') + `"`)
	case n.Begin == nil:
		cw.str(n.Name)
	case n.Begin.Size() >= 2:
		cw.str(`:"` + escapeString(n.Name, '"') + `"`)
	default:
		cw.str(":" + n.Name)
	}
}

func (cw *CodeWriter) writeDsym(n *ast.Dsym, ctx Context) {
	c := ctx.Child(ast.KindDsym)
	switch {
	case n.Begin == nil:
		cw.parts(n.Parts, c, wordEscaper)
	case ctx.Parent() == ast.KindPair:
		cw.quoted(`"`, n.Parts, c)
	default:
		cw.str(":")
		cw.quoted(`"`, n.Parts, c)
	}
}

// quoted writes interpolated parts between a pair of delim characters.
func (cw *CodeWriter) quoted(delim string, parts []ast.Node, ctx Context) {
	cw.str(delim)
	cw.parts(parts, ctx, func(s string) string {
		return escapeString(s, delim[0])
	})
	cw.str(delim)
}

func (cw *CodeWriter) writeRegexp(n *ast.Regexp, ctx Context) {
	c := ctx.Child(ast.KindRegexp)
	cw.str("/")
	cw.parts(n.Parts, c, escapeRegexp)
	cw.str("/")
	cw.node(n.Options, c)
}

// parts writes the fragments of an interpolated literal. Literal fragments
// are escaped, embedded statements are wrapped in #{}, and a bare instance,
// class or global variable uses the short #@x form.
func (cw *CodeWriter) parts(parts []ast.Node, ctx Context, escape func(string) string) {
	for _, part := range parts {
		switch part := part.(type) {
		case *ast.Str:
			cw.str(escape(part.Value))
		case *ast.Dstr:
			cw.parts(part.Parts, ctx, escape)
		case *ast.Begin:
			cw.str("#{")
			cw.list(part.Statements, ctx, "; ")
			cw.str("}")
		case *ast.Ivar:
			cw.str("#" + part.Name)
		case *ast.Cvar:
			cw.str("#" + part.Name)
		case *ast.Gvar:
			cw.str("#" + part.Name)
		default:
			cw.str(UnsupportedFragment)
			cw.unsupportedNode(part)
		}
	}
}

func (cw *CodeWriter) writeArray(n *ast.Array, ctx Context) {
	c := ctx.Child(ast.KindArray)
	if n.Begin != nil && n.Begin.Size() == 3 {
		cw.str(wordListOpening(n.Elements))
		for i, element := range n.Elements {
			if i > 0 {
				cw.str(" ")
			}
			switch element := element.(type) {
			case *ast.Str:
				cw.str(wordEscaper(element.Value))
			case *ast.Sym:
				cw.str(wordEscaper(element.Name))
			case *ast.Dstr:
				cw.parts(element.Parts, c, wordEscaper)
			case *ast.Dsym:
				cw.parts(element.Parts, c, wordEscaper)
			default:
				cw.node(element, c)
			}
		}
		cw.str("]")
		return
	}
	cw.delimited(n.Elements, n.Begin, n.End, "[", "]", c)
}

// wordListOpening picks %w, %W, %i or %I from the element kinds.
func wordListOpening(elements []ast.Node) string {
	symbols, interpolated := false, false
	for _, element := range elements {
		switch element.Kind() {
		case ast.KindSym:
			symbols = true
		case ast.KindDsym:
			symbols, interpolated = true, true
		case ast.KindDstr:
			interpolated = true
		}
	}
	switch {
	case symbols && interpolated:
		return "%I["
	case symbols:
		return "%i["
	case interpolated:
		return "%W["
	default:
		return "%w["
	}
}

func (cw *CodeWriter) writePair(n *ast.Pair, ctx Context) {
	value := ctx.Child(ast.KindHash)
	if n.Operator.Size() >= 2 {
		cw.binary(n.Key, " => ", n.Value, value)
		return
	}
	cw.node(n.Key, ctx.Child(ast.KindPair))
	cw.str(": ")
	cw.node(n.Value, value)
}

func (cw *CodeWriter) writeRange(left, right ast.Node, op string, ctx Context) {
	cw.node(left, ctx)
	cw.str(op)
	cw.node(right, ctx)
}

// scope writes the `Scope::` prefix of a constant. A top level scope writes
// its own `::`.
func (cw *CodeWriter) scope(scope ast.Node, ctx Context) {
	if scope == nil {
		return
	}
	cw.node(scope, ctx)
	if scope.Kind() != ast.KindCbase {
		cw.str("::")
	}
}

// assign writes `name = value`, or the bare name when there is no value.
func (cw *CodeWriter) assign(name string, value ast.Node, ctx Context) {
	cw.str(name)
	if value != nil {
		cw.str(" = ")
		cw.node(value, ctx)
	}
}

// escapeString escapes a decoded string for a literal closed by delim.
// A '#' is escaped only where it would start an interpolation.
func escapeString(s string, delim byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0x1b:
			b.WriteString(`\e`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case 0:
			// `\0` followed by an octal digit would read as one longer escape.
			if i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7' {
				b.WriteString(`\x00`)
			} else {
				b.WriteString(`\0`)
			}
		case '#':
			if i+1 < len(s) && (s[i+1] == '{' || s[i+1] == '@' || s[i+1] == '$') {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteString(`\x`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
				continue
			}
			if c == delim {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

const hexDigits = "0123456789ABCDEF"

// escapeRegexp escapes unescaped slashes. Regexp fragments keep their
// source escapes.
func escapeRegexp(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			b.WriteByte(c)
			i++
			b.WriteByte(s[i])
		case c == '/':
			b.WriteString(`\/`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// wordEscaper escapes the separators of a %w word.
func wordEscaper(s string) string {
	r := strings.NewReplacer(`\`, `\\`, " ", `\ `, "]", `\]`)
	return r.Replace(s)
}
