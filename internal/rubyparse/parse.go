// Package rubyparse converts Ruby source text into an ast tree using the
// tree-sitter Ruby grammar.
//
// Locals are tracked while converting so that a bare identifier becomes an
// *ast.Lvar once it has been assigned or bound as a parameter, and a
// receiverless *ast.Send otherwise. Presence markers are taken from the
// delimiter tokens found in the source.
package rubyparse

import (
	"context"
	"errors"
	"fmt"

	"github.com/rubywriter/rubywriter/ast"
	"github.com/rubywriter/rubywriter/internal/util"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"
)

var (
	ErrSyntax      = errors.New("syntax error")
	ErrUnsupported = errors.New("unsupported syntax")
)

// Error locates a parse failure in the source.
type Error struct {
	Err      error
	Position util.Position
	NodeType string
}

func (e *Error) Error() string {
	if e.NodeType == "" {
		return fmt.Sprintf("%s: %v", e.Position, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Position, e.Err, e.NodeType)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is a parsed program. Root is nil for a file without statements.
// Comments are in source order and each span includes its trailing newline.
type Result struct {
	Root     ast.Node
	Comments []ast.Comment
}

// Parse parses a whole Ruby file.
func Parse(ctx context.Context, source []byte) (*Result, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(ruby.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("tree-sitter returned no root node: %w", ErrSyntax)
	}
	if root.HasError() {
		bad := firstError(root)
		if bad == nil {
			bad = root
		}
		return nil, &Error{Err: ErrSyntax, Position: util.OffsetPosition(source, int(bad.StartByte()))}
	}

	c := newConverter(source)
	program := sequence(c.statements(c.children(root)))
	if c.err != nil {
		return nil, c.err
	}
	return &Result{Root: program, Comments: collectComments(root, source)}, nil
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsMissing() {
			if bad := firstError(child); bad != nil {
				return bad
			}
		}
	}
	return nil
}

func collectComments(root *sitter.Node, source []byte) []ast.Comment {
	var comments []ast.Comment
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "comment" {
			loc := ast.Loc{Begin: int(n.StartByte()), End: int(n.EndByte())}
			if loc.End < len(source) && source[loc.End] == '\n' {
				loc.End++
			}
			comments = append(comments, ast.Comment{Location: loc})
			return
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(root)
	return comments
}
