package ast

// Loc is a half-open byte span [Begin, End) into the parsed source.
//
// Nodes hold optional delimiters as *Loc. A nil pointer means the token was
// not present in the source, and the writer omits it.
type Loc struct {
	Begin int
	End   int
}

// Size is the number of bytes covered by the span.
func (l Loc) Size() int {
	return l.End - l.Begin
}

// Span returns a pointer to a new Loc. It is a convenience for building
// presence markers by hand.
func Span(begin, end int) *Loc {
	return &Loc{Begin: begin, End: end}
}

// Comment is a source comment. Its location includes the trailing newline.
type Comment struct {
	Location Loc
}
