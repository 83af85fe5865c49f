package util

import (
	"bytes"
	"fmt"
)

// Position is a 1-based line and column in a source file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position points into a file.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// OffsetPosition converts a byte offset in source into a line and column.
// Columns count bytes. An offset outside of source returns the zero Position.
func OffsetPosition(source []byte, offset int) Position {
	if offset < 0 || offset > len(source) {
		return Position{}
	}
	before := source[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	column := offset - bytes.LastIndexByte(before, '\n')
	return Position{Line: line, Column: column}
}
