package writer

import (
	"io"
	"strings"

	"github.com/rubywriter/rubywriter/ast"
)

// DocumentationContext finds the comment block written directly above a
// definition so it can be copied ahead of the rendered node.
type DocumentationContext struct {
	source   []byte
	comments []ast.Comment
	byEnd    map[int]int // byEnd maps the end offset of a comment to its index.
}

// NewDocumentationContext indexes comments of source. Each comment span must
// include its trailing newline.
func NewDocumentationContext(source []byte, comments []ast.Comment) *DocumentationContext {
	byEnd := make(map[int]int, len(comments))
	for i, c := range comments {
		if _, ok := byEnd[c.Location.End]; !ok {
			byEnd[c.Location.End] = i
		}
	}
	return &DocumentationContext{
		source:   source,
		comments: comments,
		byEnd:    byEnd,
	}
}

// WriteDocumentation writes the run of comments that ends where a node
// starting at begin is indented to depth indent. Consecutive comments may be
// separated only by that same indentation. Each comment is written verbatim,
// followed by the indentation of the node it documents.
func (d *DocumentationContext) WriteDocumentation(w io.Writer, indent int, begin int) error {
	if d == nil {
		return nil
	}
	gap := 2 * indent
	last, ok := d.byEnd[begin-gap]
	if !ok {
		return nil
	}

	first := last
	for {
		prev, ok := d.byEnd[d.comments[first].Location.Begin-gap]
		if !ok || prev >= first {
			break
		}
		first = prev
	}

	padding := strings.Repeat(" ", gap)
	for _, c := range d.comments[first : last+1] {
		if _, err := w.Write(d.source[c.Location.Begin:c.Location.End]); err != nil {
			return err
		}
		if gap > 0 {
			if _, err := io.WriteString(w, padding); err != nil {
				return err
			}
		}
	}
	return nil
}
