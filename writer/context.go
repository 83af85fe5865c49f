package writer

import "github.com/rubywriter/rubywriter/ast"

// Context stores where the writer currently is in the tree.
// It is passed by value; every derivation returns a new Context.
type Context struct {
	indent int      // indent is the nesting depth, in units of two spaces.
	parent ast.Kind // parent is the kind of the node being written when a child is visited.
}

// NewContext creates a Context at the given depth with no parent.
func NewContext(indent int) Context {
	if indent < 0 {
		indent = 0
	}
	return Context{indent: indent}
}

// Indent returns the nesting depth.
func (c Context) Indent() int {
	return c.indent
}

// Parent returns the kind of the enclosing node.
func (c Context) Parent() ast.Kind {
	return c.parent
}

// Child creates a context for visiting a child of a node of the given kind.
func (c Context) Child(parent ast.Kind) Context {
	return Context{indent: c.indent, parent: parent}
}

// Indented creates a context one level deeper, used for block bodies.
func (c Context) Indented() Context {
	return Context{indent: c.indent + 1, parent: c.parent}
}

// Outdented creates a context one level shallower. Rescue, else and ensure
// keywords are written with it. The depth never drops below zero.
func (c Context) Outdented() Context {
	if c.indent == 0 {
		return c
	}
	return Context{indent: c.indent - 1, parent: c.parent}
}
