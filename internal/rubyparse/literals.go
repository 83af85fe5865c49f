package rubyparse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rubywriter/rubywriter/ast"
	sitter "github.com/smacker/go-tree-sitter"
)

// stringParts converts the contents of a string-like node. Adjacent literal
// text is merged into one *ast.Str without quote tokens. Escape sequences are
// decoded unless raw is set.
func (c *converter) stringParts(n *sitter.Node, raw bool) []ast.Node {
	var parts []ast.Node
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, &ast.Str{Value: lit.String()})
			lit.Reset()
		}
	}

	for _, child := range c.children(n) {
		switch child.Type() {
		case "string_content":
			lit.WriteString(c.text(child))
		case "escape_sequence":
			if raw {
				lit.WriteString(c.text(child))
			} else {
				lit.WriteString(unescape(c.text(child)))
			}
		case "interpolation":
			flush()
			parts = append(parts, c.interpolation(child))
		default:
			c.unsupported(child)
		}
	}
	flush()
	return parts
}

// interpolation converts `#{...}`, or the short `#@var` form.
func (c *converter) interpolation(n *sitter.Node) ast.Node {
	open := token(n, "#{")
	if open == nil {
		return c.expr(firstNamed(c.children(n)))
	}
	return &ast.Begin{
		Statements: c.statements(c.children(n)),
		Begin:      c.loc(open),
		End:        c.loc(lastToken(n, "}")),
	}
}

func interpolated(parts []ast.Node) bool {
	for _, part := range parts {
		if _, ok := part.(*ast.Str); !ok {
			return true
		}
	}
	return false
}

func literalValue(parts []ast.Node) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.(*ast.Str).Value)
	}
	return b.String()
}

// delimiters returns the opening and closing tokens of a quoted literal.
func (c *converter) delimiters(n *sitter.Node) (*ast.Loc, *ast.Loc) {
	var open, close *ast.Loc
	if count := int(n.ChildCount()); count > 0 {
		if first := n.Child(0); !first.IsNamed() {
			open = c.loc(first)
		}
		if last := n.Child(count - 1); !last.IsNamed() && count > 1 {
			close = c.loc(last)
		}
	}
	return open, close
}

func (c *converter) str(n *sitter.Node) ast.Node {
	parts := c.stringParts(n, false)
	open, close := c.delimiters(n)
	if interpolated(parts) {
		return &ast.Dstr{Parts: parts, Begin: open, End: close}
	}
	return &ast.Str{Value: literalValue(parts), Begin: open, End: close}
}

func (c *converter) chainedString(n *sitter.Node) ast.Node {
	var parts []ast.Node
	for _, child := range c.children(n) {
		parts = append(parts, c.expr(child))
	}
	return &ast.Dstr{Parts: parts}
}

// character converts `?a` into a one character string.
func (c *converter) character(n *sitter.Node) ast.Node {
	value := strings.TrimPrefix(c.text(n), "?")
	if strings.HasPrefix(value, `\`) {
		value = unescape(value)
	}
	begin := int(n.StartByte())
	return &ast.Str{Value: value, Begin: ast.Span(begin, begin+1), End: ast.Span(begin, begin+1)}
}

func (c *converter) simpleSymbol(n *sitter.Node) ast.Node {
	begin := int(n.StartByte())
	return &ast.Sym{Name: strings.TrimPrefix(c.text(n), ":"), Begin: ast.Span(begin, begin+1)}
}

func (c *converter) delimitedSymbol(n *sitter.Node) ast.Node {
	parts := c.stringParts(n, false)
	open, close := c.delimiters(n)
	if interpolated(parts) {
		return &ast.Dsym{Parts: parts, Begin: open, End: close}
	}
	return &ast.Sym{Name: literalValue(parts), Begin: open, End: close}
}

func (c *converter) array(n *sitter.Node) ast.Node {
	return &ast.Array{
		Elements: c.statements(c.children(n)),
		Begin:    c.loc(token(n, "[")),
		End:      c.loc(lastToken(n, "]")),
	}
}

// wordList converts %w, %W, %i and %I literals. The opening token is three
// bytes long, which the writer reads as a word list.
func (c *converter) wordList(n *sitter.Node) ast.Node {
	symbols := n.Type() == "symbol_array"
	var elements []ast.Node
	for _, child := range c.children(n) {
		parts := c.stringParts(child, false)
		switch {
		case symbols && interpolated(parts):
			elements = append(elements, &ast.Dsym{Parts: parts})
		case symbols:
			elements = append(elements, &ast.Sym{Name: literalValue(parts)})
		case interpolated(parts):
			elements = append(elements, &ast.Dstr{Parts: parts})
		default:
			elements = append(elements, &ast.Str{Value: literalValue(parts)})
		}
	}
	begin := int(n.StartByte())
	_, close := c.delimiters(n)
	return &ast.Array{Elements: elements, Begin: ast.Span(begin, begin+3), End: close}
}

func (c *converter) hash(n *sitter.Node) ast.Node {
	return &ast.Hash{
		Pairs: c.statements(c.children(n)),
		Begin: c.loc(token(n, "{")),
		End:   c.loc(lastToken(n, "}")),
	}
}

// pair converts a hash entry. A quoted label such as `"a b": 1` becomes a
// symbol key, and a label without a value takes the local or method of the
// same name.
func (c *converter) pair(n *sitter.Node) ast.Node {
	keyNode := n.ChildByFieldName("key")
	operator := token(n, "=>", ":")
	pair := &ast.Pair{}
	if operator != nil {
		pair.Operator = c.span(operator)
	} else {
		end := int(keyNode.EndByte())
		pair.Operator = ast.Loc{Begin: end, End: end + 1}
	}

	switch {
	case keyNode.Type() == "string" && pair.Operator.Size() < 2:
		parts := c.stringParts(keyNode, false)
		open, close := c.delimiters(keyNode)
		if interpolated(parts) {
			pair.Key = &ast.Dsym{Parts: parts, Begin: open, End: close}
		} else {
			pair.Key = &ast.Sym{Name: literalValue(parts), Begin: open, End: close}
		}
	default:
		pair.Key = c.expr(keyNode)
	}

	if value := n.ChildByFieldName("value"); value != nil {
		pair.Value = c.expr(value)
	} else if key, ok := pair.Key.(*ast.Sym); ok {
		pair.Value = c.name(key.Name)
	}
	return pair
}

// regexp keeps escapes as written; options are the letters after the
// closing delimiter.
func (c *converter) regexp(n *sitter.Node) ast.Node {
	re := &ast.Regexp{Parts: c.stringParts(n, true)}
	text := c.text(n)
	i := len(text)
	for i > 0 && text[i-1] >= 'a' && text[i-1] <= 'z' {
		i--
	}
	if i < len(text) {
		re.Options = &ast.RegOpt{Options: text[i:]}
	}
	return re
}

func globalVariable(name string) ast.Node {
	digits := strings.TrimPrefix(name, "$")
	if _, err := strconv.Atoi(digits); err == nil && digits != "0" {
		return &ast.NthRef{Name: digits}
	}
	switch name {
	case "$&", "$`", "$'", "$+":
		return &ast.BackRef{Name: name}
	}
	return &ast.Gvar{Name: name}
}

// unescape decodes a single escape sequence of a double quoted literal.
func unescape(seq string) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return seq
	}
	switch ch := seq[1]; ch {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 's':
		return " "
	case 'e':
		return "\x1b"
	case 'a':
		return "\a"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '\n':
		return ""
	case 'u':
		return unescapeUnicode(seq[2:])
	case 'x':
		if v, err := strconv.ParseUint(seq[2:], 16, 8); err == nil {
			return string([]byte{byte(v)})
		}
		return seq
	case 'c', 'C', 'M':
		return seq
	default:
		if ch >= '0' && ch <= '7' {
			if v, err := strconv.ParseUint(seq[1:], 8, 8); err == nil {
				return string([]byte{byte(v)})
			}
			return seq
		}
		return seq[1:]
	}
}

// unescapeUnicode decodes the digits of `\uXXXX` or `\u{X Y ...}`.
func unescapeUnicode(digits string) string {
	digits = strings.TrimSuffix(strings.TrimPrefix(digits, "{"), "}")
	var b strings.Builder
	for _, field := range strings.Fields(digits) {
		v, err := strconv.ParseUint(field, 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return `\u` + digits
		}
		b.WriteRune(rune(v))
	}
	return b.String()
}
