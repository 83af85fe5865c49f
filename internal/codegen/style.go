package codegen

import "github.com/rubywriter/rubywriter/ast"

// IsStatements reports whether n is an unparenthesized statement sequence,
// the shape every normalized body has.
func IsStatements(n ast.Node) bool {
	seq, ok := n.(*ast.Begin)
	return ok && seq.Begin == nil && seq.End == nil
}

// Statements normalizes a body into a statement sequence. A nil body becomes
// an empty sequence, a sequence is returned as is, and any other node is
// wrapped as the single statement of a new sequence.
func Statements(body ast.Node) *ast.Begin {
	if body == nil {
		return &ast.Begin{}
	}
	if IsStatements(body) {
		return body.(*ast.Begin)
	}
	return &ast.Begin{Statements: []ast.Node{body}}
}

// AppendStatements adds stmts to the end of a statement sequence. A nested
// unparenthesized sequence is spliced in rather than nested.
func AppendStatements(seq *ast.Begin, stmts ...ast.Node) {
	for _, stmt := range stmts {
		if IsStatements(stmt) {
			seq.Statements = append(seq.Statements, stmt.(*ast.Begin).Statements...)
			continue
		}
		seq.Statements = append(seq.Statements, stmt)
	}
}

