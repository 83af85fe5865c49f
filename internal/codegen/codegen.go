// codegen is a library that creates or reshapes Ruby syntax tree nodes in specific repeatable ways.
// This library is a common place for logic around how new nodes in a tree get created, and how
// statement sequences are normalized before nodes are inserted into them. Any function that
// creates a new node for insertion into the tree should be added here. When implementing
// functions for this library, the following rules should apply:
//
// 1. A node must appear at most once in a tree. Transforms move subtrees; they never share them.
// Functions here always return freshly allocated nodes.
// 2. Please add a comment header about what the output of your function is and what it does. All
// exported functions MUST be documented in way that is compatible with `godoc`.
// 3. Synthesized nodes carry presence markers, not real source locations. A marker that is set
// tells the writer which notation to use, so set exactly the ones the generated code should have.
package codegen

import "github.com/rubywriter/rubywriter/ast"

// visibilityMethods are the calls that change the visibility of the methods
// defined after them when written without arguments.
var visibilityMethods = map[string]bool{
	"private":         true,
	"protected":       true,
	"module_function": true,
}

// PublicCall returns a bare `public` call, which resets method visibility
// for the statements that follow it.
func PublicCall() *ast.Send {
	return &ast.Send{MethodName: "public"}
}

// IsVisibilityReset reports whether n is a bare `private`, `protected` or
// `module_function` call: no receiver, no arguments and not an operator form.
func IsVisibilityReset(n ast.Node) bool {
	send, ok := n.(*ast.Send)
	if !ok {
		return false
	}
	return send.Recv == nil &&
		len(send.Args) == 0 &&
		send.Dot == nil &&
		send.Operator == nil &&
		visibilityMethods[send.MethodName]
}

// MarkerString returns a double quoted string literal statement holding value.
func MarkerString(value string) *ast.Str {
	return &ast.Str{
		Value: value,
		Begin: ast.Span(0, 1),
		End:   ast.Span(len(value)+1, len(value)+2),
	}
}
