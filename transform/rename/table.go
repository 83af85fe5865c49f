package rename

import "maps"

// aliases is the sequence of names handed out in a scope, in order.
var aliases = [...]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
}

// Table maps the original name of a local variable to its alias within one
// method or block scope. An empty alias means the name is kept as written.
type Table map[string]string

func NewTable() Table {
	return make(Table)
}

// Resolve returns the alias of name, assigning the next unused alias on
// first use. Once every alias is taken, new names are kept unchanged.
func (t Table) Resolve(name string) string {
	if alias, ok := t[name]; ok {
		if alias == "" {
			return name
		}
		return alias
	}

	alias := ""
	if len(t) < len(aliases) {
		alias = aliases[len(t)]
	}
	t[name] = alias
	if alias == "" {
		return name
	}
	return alias
}

// Keep registers name so that it is never renamed in this scope. It still
// takes up a slot in the alias sequence.
func (t Table) Keep(name string) {
	t[name] = ""
}

// Clone copies the table for a nested block. Names added to the copy do not
// leak back into t.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	maps.Copy(c, t)
	return c
}
