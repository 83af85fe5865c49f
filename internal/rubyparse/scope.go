package rubyparse

import "strconv"

// scope holds the local variables visible at a point of the program.
// Method, class and module bodies start an empty scope. Blocks see the
// locals of the scope they are written in.
type scope struct {
	parent   *scope
	locals   map[string]bool
	block    bool
	numbered int
}

func newScope(parent *scope, block bool) *scope {
	return &scope{parent: parent, locals: map[string]bool{}, block: block}
}

func (s *scope) declare(name string) {
	if name != "" {
		s.locals[name] = true
	}
}

func (s *scope) has(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.locals[name] {
			return true
		}
		if !cur.block {
			return false
		}
	}
	return false
}

// useNumbered records a reference to a numbered block parameter such as _1.
// It reports false when name is not one or when the scope is not a block.
func (s *scope) useNumbered(name string) bool {
	if !s.block || len(name) != 2 || name[0] != '_' {
		return false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 1 {
		return false
	}
	s.numbered = max(s.numbered, n)
	return true
}
