// Package rename rewrites local variable and parameter names to short
// canonical aliases, `a` through `z`, scoped to each method and block.
package rename

import (
	"strconv"

	"github.com/rubywriter/rubywriter/ast"
)

// Methods renames every local variable and parameter reachable from root
// in place. Top level code shares one table. Each method definition starts
// a fresh table, and each block starts from a copy of the enclosing one so
// that block locals never leak into the enclosing scope.
func Methods(root ast.Node) {
	edit(NewTable(), root)
}

func edit(table Table, node ast.Node) {
	switch n := node.(type) {
	case nil:
	case *ast.Lvar:
		n.Name = table.Resolve(n.Name)
	case *ast.Lvasgn:
		n.Name = table.Resolve(n.Name)
		edit(table, n.Value)
	case *ast.MatchVar:
		table.Keep(n.Name)
	case *ast.Def:
		method := NewTable()
		edit(method, n.Args)
		edit(method, n.Body)
	case *ast.Defs:
		edit(table, n.Definee)
		method := NewTable()
		edit(method, n.Args)
		edit(method, n.Body)
	case *ast.Block:
		edit(table, n.Call)
		block := table.Clone()
		edit(block, n.Args)
		edit(block, n.Body)
	case *ast.Numblock:
		edit(table, n.Call)
		block := table.Clone()
		for i := 1; i <= 9; i++ {
			block.Keep("_" + strconv.Itoa(i))
		}
		edit(block, n.Body)
	case *ast.Args:
		for _, arg := range n.Args {
			editParameter(table, arg)
		}
	default:
		for _, child := range ast.Children(n) {
			edit(table, child)
		}
	}
}

// editParameter assigns aliases to one entry of a parameter list. Defaults
// of optional parameters may refer to earlier parameters, so they are
// renamed with the same table after the parameter itself.
func editParameter(table Table, param ast.Node) {
	switch p := param.(type) {
	case *ast.Arg:
		p.Name = table.Resolve(p.Name)
	case *ast.Kwarg:
		p.Name = table.Resolve(p.Name)
	case *ast.Shadowarg:
		p.Name = table.Resolve(p.Name)
	case *ast.Optarg:
		p.Name = table.Resolve(p.Name)
		edit(table, p.Default)
	case *ast.Kwoptarg:
		p.Name = table.Resolve(p.Name)
		edit(table, p.Default)
	case *ast.Restarg:
		p.Name = resolveOptional(table, p.Name)
	case *ast.Kwrestarg:
		p.Name = resolveOptional(table, p.Name)
	case *ast.Blockarg:
		p.Name = resolveOptional(table, p.Name)
	case *ast.Procarg0:
		for _, arg := range p.Args {
			editParameter(table, arg)
		}
	case *ast.Mlhs:
		for _, item := range p.Items {
			editParameter(table, item)
		}
	default:
		edit(table, param)
	}
}

// resolveOptional renames a parameter that may be anonymous, like `*` or `&`.
func resolveOptional(table Table, name string) string {
	if name == "" {
		return ""
	}
	return table.Resolve(name)
}
