package rubyparse

import (
	"slices"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/internal/util"
	sitter "github.com/smacker/go-tree-sitter"
)

// converter turns tree-sitter nodes into ast nodes. The first failure is
// kept in err and every later conversion returns nil.
type converter struct {
	source []byte
	scope  *scope
	err    error
}

func newConverter(source []byte) *converter {
	return &converter{source: source, scope: newScope(nil, false)}
}

func (c *converter) fail(n *sitter.Node, err error) {
	if c.err != nil {
		return
	}
	c.err = &Error{
		Err:      err,
		Position: util.OffsetPosition(c.source, int(n.StartByte())),
		NodeType: n.Type(),
	}
}

func (c *converter) unsupported(n *sitter.Node) ast.Node {
	c.fail(n, ErrUnsupported)
	return nil
}

func (c *converter) enter(block bool) *scope {
	c.scope = newScope(c.scope, block)
	return c.scope
}

func (c *converter) leave(s *scope) {
	c.scope = s.parent
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(c.source)
}

func (c *converter) span(n *sitter.Node) ast.Loc {
	return ast.Loc{Begin: int(n.StartByte()), End: int(n.EndByte())}
}

func (c *converter) loc(n *sitter.Node) *ast.Loc {
	if n == nil {
		return nil
	}
	l := c.span(n)
	return &l
}

func skipped(n *sitter.Node) bool {
	switch n.Type() {
	case "comment", "empty_statement":
		return true
	}
	return false
}

// children returns the named children of n, without comments.
func (c *converter) children(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if !skipped(child) {
			out = append(out, child)
		}
	}
	return out
}

// bodyChildren returns the named children of n that are not bound to one of
// the fields in skip. Body wrapper nodes are flattened.
func (c *converter) bodyChildren(n *sitter.Node, skip ...string) []*sitter.Node {
	if n == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() || skipped(child) {
			continue
		}
		if slices.Contains(skip, n.FieldNameForChild(i)) {
			continue
		}
		switch child.Type() {
		case "body_statement", "block_body":
			out = append(out, c.children(child)...)
		default:
			out = append(out, child)
		}
	}
	return out
}

// fieldChildren returns every child of n bound to field.
func fieldChildren(n *sitter.Node, field string) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.FieldNameForChild(i) == field {
			out = append(out, n.Child(i))
		}
	}
	return out
}

// token returns the first anonymous child of n with the given text.
func token(n *sitter.Node, types ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() && slices.Contains(types, child.Type()) {
			return child
		}
	}
	return nil
}

// lastToken returns the last anonymous child of n with the given text.
func lastToken(n *sitter.Node, types ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		child := n.Child(i)
		if !child.IsNamed() && slices.Contains(types, child.Type()) {
			return child
		}
	}
	return nil
}

func sequence(nodes []ast.Node) ast.Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	default:
		return &ast.Begin{Statements: nodes}
	}
}

func (c *converter) statements(nodes []*sitter.Node) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		if stmt := c.expr(n); stmt != nil {
			out = append(out, stmt)
		}
	}
	return out
}

// body converts a definition, block or begin body together with its rescue,
// else and ensure clauses.
func (c *converter) body(nodes []*sitter.Node) ast.Node {
	var stmts, rescues []ast.Node
	var elseNode, ensureNode *sitter.Node
	for _, n := range nodes {
		switch n.Type() {
		case "rescue":
			rescues = append(rescues, c.rescueBody(n))
		case "else":
			elseNode = n
		case "ensure":
			ensureNode = n
		default:
			if stmt := c.expr(n); stmt != nil {
				stmts = append(stmts, stmt)
			}
		}
	}

	result := sequence(stmts)
	if len(rescues) > 0 || elseNode != nil {
		r := &ast.Rescue{Body: result, RescueBodies: rescues}
		if elseNode != nil {
			r.Else = c.elseBody(elseNode)
		}
		result = r
	}
	if ensureNode != nil {
		result = &ast.Ensure{Body: result, Ensure: sequence(c.statements(c.children(ensureNode)))}
	}
	return result
}

// elseBody converts an else clause. An else without statements is kept as
// an explicit empty branch.
func (c *converter) elseBody(n *sitter.Node) ast.Node {
	if body := sequence(c.statements(c.children(n))); body != nil {
		return body
	}
	return &ast.EmptyElse{}
}

func (c *converter) expr(n *sitter.Node) ast.Node {
	if n == nil || c.err != nil {
		return nil
	}

	switch n.Type() {
	// literals
	case "integer":
		return &ast.Int{Value: c.text(n)}
	case "float":
		return &ast.Float{Value: c.text(n)}
	case "rational":
		return &ast.Rational{Value: c.text(n)}
	case "complex":
		return &ast.Complex{Value: c.text(n)}
	case "nil":
		return &ast.Nil{}
	case "true":
		return &ast.True{}
	case "false":
		return &ast.False{}
	case "self":
		return &ast.Self{}
	case "file":
		return &ast.File{}
	case "line":
		return &ast.Line{}
	case "encoding":
		return &ast.Encoding{}
	case "string":
		return c.str(n)
	case "chained_string":
		return c.chainedString(n)
	case "character":
		return c.character(n)
	case "simple_symbol":
		return c.simpleSymbol(n)
	case "delimited_symbol":
		return c.delimitedSymbol(n)
	case "hash_key_symbol":
		return &ast.Sym{Name: c.text(n)}
	case "array":
		return c.array(n)
	case "string_array", "symbol_array":
		return c.wordList(n)
	case "hash":
		return c.hash(n)
	case "pair":
		return c.pair(n)
	case "regex":
		return c.regexp(n)
	case "subshell":
		return &ast.Xstr{Parts: c.stringParts(n, false)}

	// variables
	case "identifier":
		return c.identifier(n)
	case "instance_variable":
		return &ast.Ivar{Name: c.text(n)}
	case "class_variable":
		return &ast.Cvar{Name: c.text(n)}
	case "global_variable":
		return globalVariable(c.text(n))
	case "constant":
		return &ast.Const{Name: c.text(n)}
	case "scope_resolution":
		return c.scopeResolution(n)

	// assignments and operators
	case "assignment":
		return c.assignment(n)
	case "operator_assignment":
		return c.operatorAssignment(n)
	case "binary":
		return c.binary(n)
	case "unary":
		return c.unary(n)
	case "conditional":
		return &ast.IfTernary{
			Cond:    c.expr(n.ChildByFieldName("condition")),
			IfTrue:  c.expr(n.ChildByFieldName("consequence")),
			IfFalse: c.expr(n.ChildByFieldName("alternative")),
		}
	case "range":
		return c.rangeNode(n, false)
	case "parenthesized_statements":
		return &ast.Begin{
			Statements: c.statements(c.children(n)),
			Begin:      c.loc(token(n, "(")),
			End:        c.loc(lastToken(n, ")")),
		}
	case "splat_argument":
		return &ast.Splat{Value: c.expr(firstNamed(c.children(n)))}
	case "hash_splat_argument":
		return &ast.Kwsplat{Value: c.expr(firstNamed(c.children(n)))}
	case "block_argument":
		return &ast.BlockPass{Value: c.expr(firstNamed(c.children(n)))}
	case "forward_argument":
		return &ast.ForwardedArgs{}

	// calls
	case "call":
		return c.call(n)
	case "element_reference":
		return c.elementReference(n)
	case "lambda":
		return c.lambda(n)
	case "super":
		return &ast.ZSuper{}
	case "yield":
		args, open, close := c.arguments(firstOfType(n, "argument_list"))
		return &ast.Yield{Args: args, Begin: open, End: close}
	case "return":
		args, _, _ := c.arguments(firstOfType(n, "argument_list"))
		return &ast.Return{Args: args}
	case "break":
		args, _, _ := c.arguments(firstOfType(n, "argument_list"))
		return &ast.Break{Args: args}
	case "next":
		args, _, _ := c.arguments(firstOfType(n, "argument_list"))
		return &ast.Next{Args: args}
	case "redo":
		return &ast.Redo{}
	case "retry":
		return &ast.Retry{}

	// control flow
	case "if", "elsif":
		return c.ifNode(n)
	case "unless":
		return c.unlessNode(n)
	case "if_modifier":
		return &ast.IfMod{Cond: c.condition(n.ChildByFieldName("condition")), IfTrue: c.expr(n.ChildByFieldName("body"))}
	case "unless_modifier":
		return &ast.IfMod{Cond: c.condition(n.ChildByFieldName("condition")), IfFalse: c.expr(n.ChildByFieldName("body"))}
	case "while", "until":
		return c.loop(n)
	case "while_modifier", "until_modifier":
		return c.loopModifier(n)
	case "for":
		return c.forLoop(n)
	case "case":
		return c.caseNode(n)
	case "case_match":
		return c.caseMatch(n)
	case "begin":
		return c.begin(n)
	case "rescue_modifier":
		return &ast.Rescue{
			Body:         c.expr(n.ChildByFieldName("body")),
			RescueBodies: []ast.Node{&ast.RescueBody{Body: c.expr(n.ChildByFieldName("handler"))}},
			Modifier:     true,
		}
	case "test_pattern":
		return &ast.MatchPatternP{Value: c.expr(n.ChildByFieldName("value")), Pattern: c.pattern(n.ChildByFieldName("pattern"))}
	case "match_pattern":
		return &ast.MatchPattern{Value: c.expr(n.ChildByFieldName("value")), Pattern: c.pattern(n.ChildByFieldName("pattern"))}

	// definitions
	case "method":
		return c.method(n)
	case "singleton_method":
		return c.singletonMethod(n)
	case "class":
		return c.class(n)
	case "module":
		return c.module(n)
	case "singleton_class":
		return c.singletonClass(n)
	case "alias":
		return &ast.Alias{To: c.methodName(n.ChildByFieldName("name")), From: c.methodName(n.ChildByFieldName("alias"))}
	case "undef":
		var names []ast.Node
		for _, child := range c.children(n) {
			names = append(names, c.methodName(child))
		}
		return &ast.Undef{Names: names}
	}

	// heredocs, BEGIN/END blocks, __END__ data and anything newer than this
	// converter
	return c.unsupported(n)
}

func firstNamed(nodes []*sitter.Node) *sitter.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func firstOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == typ {
			return child
		}
	}
	return nil
}
