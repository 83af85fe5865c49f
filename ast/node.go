// Package ast defines the Ruby syntax tree consumed by the writer and the
// transforms.
//
// Every node is a pointer to a struct defined in this package and owns its
// children outright. Transforms that graft a subtree into a new location move
// the pointer; they never share it between two parents.
package ast

// Node is implemented by every syntax tree node. The set of implementations is
// closed: only types in this package satisfy it.
type Node interface {
	Kind() Kind
	node()
}

// Literals

type Int struct{ Value string }
type Float struct{ Value string }
type Rational struct{ Value string }
type Complex struct{ Value string }

// Str is a string literal. Value holds the decoded contents. Begin and End are
// the quote tokens, absent for fragments of an interpolated string.
type Str struct {
	Value string
	Begin *Loc
	End   *Loc
}

// Dstr is a string with interpolation, or a sequence of adjacent string
// literals when it has no quote tokens of its own.
type Dstr struct {
	Parts []Node
	Begin *Loc
	End   *Loc
}

// Sym is a symbol. A Begin token of size 1 is the leading ':', size 2 is ':"'.
// Labels such as `key:` in a hash carry no Begin token.
type Sym struct {
	Name  string
	Begin *Loc
	End   *Loc
}

type Dsym struct {
	Parts []Node
	Begin *Loc
	End   *Loc
}

type Xstr struct{ Parts []Node }
type Heredoc struct{ Parts []Node }
type XHeredoc struct{ Parts []Node }

type Regexp struct {
	Parts   []Node
	Options Node
}

type RegOpt struct{ Options string }

type True struct{}
type False struct{}
type Nil struct{}
type Self struct{}
type File struct{}
type Line struct{}
type Encoding struct{}

// Array is an array literal. A Begin token of size 3 marks a %w[] or %i[]
// word list.
type Array struct {
	Elements []Node
	Begin    *Loc
	End      *Loc
}

type Hash struct {
	Pairs []Node
	Begin *Loc
	End   *Loc
}

// Pair is a hash entry. An Operator span of two bytes or more is `=>`,
// anything shorter is the label form `key: value`.
type Pair struct {
	Key      Node
	Value    Node
	Operator Loc
}

// Kwargs are the trailing bare hash arguments of a call.
type Kwargs struct{ Pairs []Node }

type Kwsplat struct{ Value Node }

type Irange struct{ Left, Right Node }
type Erange struct{ Left, Right Node }
type IFlipFlop struct{ Left, Right Node }
type EFlipFlop struct{ Left, Right Node }

// Variables

type Lvar struct{ Name string }
type Ivar struct{ Name string }
type Cvar struct{ Name string }
type Gvar struct{ Name string }
type BackRef struct{ Name string }

// NthRef is $1, $2 ... Name holds the digits only.
type NthRef struct{ Name string }

// Const is a constant reference. Scope is nil, a *Cbase for `::Name`, or
// another constant expression.
type Const struct {
	Scope Node
	Name  string
}

type Cbase struct{}

// Assignments. A nil Value is a bare target, as found in multiple assignment
// or on the left of an operator assignment.

type Lvasgn struct {
	Name  string
	Value Node
}

type Ivasgn struct {
	Name  string
	Value Node
}

type Cvasgn struct {
	Name  string
	Value Node
}

type Gvasgn struct {
	Name  string
	Value Node
}

type Casgn struct {
	Scope      Node
	Name       string
	Value      Node
	Expression Loc
}

// OpAsgn is `recv op= value`; Operator is the binary operator without '='.
type OpAsgn struct {
	Recv     Node
	Operator string
	Value    Node
}

type AndAsgn struct{ Recv, Value Node }
type OrAsgn struct{ Recv, Value Node }

type IndexAsgn struct {
	Recv    Node
	Indexes []Node
	Value   Node
}

type Masgn struct{ Lhs, Rhs Node }

type Mlhs struct {
	Items []Node
	Begin *Loc
	End   *Loc
}

// Expressions and calls

type And struct{ Lhs, Rhs Node }
type Or struct{ Lhs, Rhs Node }

type Defined struct {
	Value Node
	Begin *Loc
	End   *Loc
}

// Splat is `*value`; Value is nil for an anonymous splat.
type Splat struct{ Value Node }

type Index struct {
	Recv    Node
	Indexes []Node
}

// Send is a method call. Dot is the '.' or '::' token. Begin and End are the
// argument parentheses. Operator is present for attribute assignment, in
// which case MethodName ends with '='.
type Send struct {
	Recv       Node
	MethodName string
	Args       []Node
	Dot        *Loc
	Begin      *Loc
	End        *Loc
	Operator   *Loc
}

// CSend is a safe navigation call, `recv&.name`.
type CSend struct {
	Recv       Node
	MethodName string
	Args       []Node
	Begin      *Loc
	End        *Loc
	Operator   *Loc
}

// Block attaches a block to Call. Begin spans the opening token: `do` has
// size 2, `{` size 1.
type Block struct {
	Call  Node
	Args  Node
	Body  Node
	Begin Loc
}

// Numblock is a brace block using numbered parameters (_1, _2 ...).
type Numblock struct {
	Call    Node
	NumArgs int
	Body    Node
}

// BlockPass is `&value`; Value is nil for anonymous forwarding.
type BlockPass struct{ Value Node }

// Lambda is the `->` token. It only appears as the Call of a Block.
type Lambda struct{}

type Super struct {
	Args  []Node
	Begin *Loc
	End   *Loc
}

type ZSuper struct{}

type Yield struct {
	Args  []Node
	Begin *Loc
	End   *Loc
}

type Return struct{ Args []Node }
type Break struct{ Args []Node }
type Next struct{ Args []Node }
type Redo struct{}
type Retry struct{}

// Control flow

// If is an if, unless or elsif. Keyword spans the introducing keyword; a size
// of 5 marks an elsif link in the chain.
type If struct {
	Cond    Node
	IfTrue  Node
	IfFalse Node
	Keyword Loc
}

type IfMod struct{ Cond, IfTrue, IfFalse Node }
type IfTernary struct{ Cond, IfTrue, IfFalse Node }

type Case struct {
	Expr       Node
	WhenBodies []Node
	ElseBody   Node
}

type When struct {
	Patterns []Node
	Body     Node
}

type CaseMatch struct {
	Expr     Node
	InBodies []Node
	ElseBody Node
}

type InPattern struct {
	Pattern Node
	Guard   Node
	Body    Node
}

type IfGuard struct{ Cond Node }
type UnlessGuard struct{ Cond Node }

// While is a while loop. A nil End means the modifier form `body while cond`.
type While struct {
	Cond Node
	Body Node
	End  *Loc
}

type Until struct {
	Cond Node
	Body Node
	End  *Loc
}

// WhilePost is `begin ... end while cond`.
type WhilePost struct{ Cond, Body Node }
type UntilPost struct{ Cond, Body Node }

type For struct {
	Iterator Node
	Iteratee Node
	Body     Node
}

// Begin is a statement sequence. With Begin and End tokens it is a
// parenthesized expression, or an interpolation when it is a string part.
type Begin struct {
	Statements []Node
	Begin      *Loc
	End        *Loc
}

// KwBegin is an explicit begin ... end block.
type KwBegin struct {
	Statements []Node
	Begin      *Loc
	End        *Loc
}

// Rescue wraps Body with rescue clauses. Modifier marks `expr rescue value`.
type Rescue struct {
	Body         Node
	RescueBodies []Node
	Else         Node
	Modifier     bool
}

type RescueBody struct {
	ExcList Node
	ExcVar  Node
	Body    Node
}

type Ensure struct {
	Body   Node
	Ensure Node
}

type EmptyElse struct{}

type Preexe struct{ Body Node }
type Postexe struct{ Body Node }

// Definitions. Expression spans the whole definition and locates leading
// documentation comments.

// Def is an instance method. Args is nil when the definition has no
// parameter parentheses. Assignment is present for `def name = expr`.
type Def struct {
	Name       string
	Args       Node
	Body       Node
	Assignment *Loc
	Expression Loc
}

type Defs struct {
	Definee    Node
	Name       string
	Args       Node
	Body       Node
	Assignment *Loc
	Expression Loc
}

type Class struct {
	Name       Node
	Superclass Node
	Body       Node
	Expression Loc
}

type Module struct {
	Name       Node
	Body       Node
	Expression Loc
}

type SClass struct {
	Expr       Node
	Body       Node
	Expression Loc
}

type Alias struct{ To, From Node }
type Undef struct{ Names []Node }

// Args is a parameter list. Delimiters are chosen by the enclosing node.
type Args struct{ Args []Node }

type Arg struct{ Name string }

type Optarg struct {
	Name    string
	Default Node
}

// Restarg, Kwrestarg and Blockarg have an empty Name when anonymous.
type Restarg struct{ Name string }
type Kwarg struct{ Name string }

type Kwoptarg struct {
	Name    string
	Default Node
}

type Kwrestarg struct{ Name string }
type Kwnilarg struct{}
type Blockarg struct{ Name string }
type Shadowarg struct{ Name string }

// Procarg0 is the sole parameter of a block, optionally destructured with
// parentheses.
type Procarg0 struct {
	Args  []Node
	Begin *Loc
	End   *Loc
}

type ForwardArg struct{}
type ForwardedArgs struct{}

// Pattern matching

type ArrayPattern struct {
	Elements []Node
	Begin    *Loc
	End      *Loc
}

// ArrayPatternWithTail is `[a, ]`, a pattern with a trailing comma.
type ArrayPatternWithTail struct {
	Elements []Node
	Begin    *Loc
	End      *Loc
}

type HashPattern struct {
	Elements []Node
	Begin    *Loc
	End      *Loc
}

type FindPattern struct {
	Elements []Node
	Begin    *Loc
	End      *Loc
}

type ConstPattern struct{ Const, Pattern Node }
type MatchAlt struct{ Lhs, Rhs Node }
type MatchAs struct{ Value, As Node }

// MatchRest is `*name` in a pattern; Name is a *MatchVar or nil.
type MatchRest struct{ Name Node }

type MatchVar struct{ Name string }
type MatchNilPattern struct{}
type Pin struct{ Var Node }
type MatchPattern struct{ Value, Pattern Node }
type MatchPatternP struct{ Value, Pattern Node }
type MatchCurrentLine struct{ Re Node }
type MatchWithLvasgn struct{ Re, Value Node }

func (*Int) Kind() Kind                  { return KindInt }
func (*Float) Kind() Kind                { return KindFloat }
func (*Rational) Kind() Kind             { return KindRational }
func (*Complex) Kind() Kind              { return KindComplex }
func (*Str) Kind() Kind                  { return KindStr }
func (*Dstr) Kind() Kind                 { return KindDstr }
func (*Sym) Kind() Kind                  { return KindSym }
func (*Dsym) Kind() Kind                 { return KindDsym }
func (*Xstr) Kind() Kind                 { return KindXstr }
func (*Heredoc) Kind() Kind              { return KindHeredoc }
func (*XHeredoc) Kind() Kind             { return KindXHeredoc }
func (*Regexp) Kind() Kind               { return KindRegexp }
func (*RegOpt) Kind() Kind               { return KindRegOpt }
func (*True) Kind() Kind                 { return KindTrue }
func (*False) Kind() Kind                { return KindFalse }
func (*Nil) Kind() Kind                  { return KindNil }
func (*Self) Kind() Kind                 { return KindSelf }
func (*File) Kind() Kind                 { return KindFile }
func (*Line) Kind() Kind                 { return KindLine }
func (*Encoding) Kind() Kind             { return KindEncoding }
func (*Array) Kind() Kind                { return KindArray }
func (*Hash) Kind() Kind                 { return KindHash }
func (*Pair) Kind() Kind                 { return KindPair }
func (*Kwargs) Kind() Kind               { return KindKwargs }
func (*Kwsplat) Kind() Kind              { return KindKwsplat }
func (*Irange) Kind() Kind               { return KindIrange }
func (*Erange) Kind() Kind               { return KindErange }
func (*IFlipFlop) Kind() Kind            { return KindIFlipFlop }
func (*EFlipFlop) Kind() Kind            { return KindEFlipFlop }
func (*Lvar) Kind() Kind                 { return KindLvar }
func (*Ivar) Kind() Kind                 { return KindIvar }
func (*Cvar) Kind() Kind                 { return KindCvar }
func (*Gvar) Kind() Kind                 { return KindGvar }
func (*BackRef) Kind() Kind              { return KindBackRef }
func (*NthRef) Kind() Kind               { return KindNthRef }
func (*Const) Kind() Kind                { return KindConst }
func (*Cbase) Kind() Kind                { return KindCbase }
func (*Lvasgn) Kind() Kind               { return KindLvasgn }
func (*Ivasgn) Kind() Kind               { return KindIvasgn }
func (*Cvasgn) Kind() Kind               { return KindCvasgn }
func (*Gvasgn) Kind() Kind               { return KindGvasgn }
func (*Casgn) Kind() Kind                { return KindCasgn }
func (*OpAsgn) Kind() Kind               { return KindOpAsgn }
func (*AndAsgn) Kind() Kind              { return KindAndAsgn }
func (*OrAsgn) Kind() Kind               { return KindOrAsgn }
func (*IndexAsgn) Kind() Kind            { return KindIndexAsgn }
func (*Masgn) Kind() Kind                { return KindMasgn }
func (*Mlhs) Kind() Kind                 { return KindMlhs }
func (*And) Kind() Kind                  { return KindAnd }
func (*Or) Kind() Kind                   { return KindOr }
func (*Defined) Kind() Kind              { return KindDefined }
func (*Splat) Kind() Kind                { return KindSplat }
func (*Index) Kind() Kind                { return KindIndex }
func (*Send) Kind() Kind                 { return KindSend }
func (*CSend) Kind() Kind                { return KindCSend }
func (*Block) Kind() Kind                { return KindBlock }
func (*Numblock) Kind() Kind             { return KindNumblock }
func (*BlockPass) Kind() Kind            { return KindBlockPass }
func (*Lambda) Kind() Kind               { return KindLambda }
func (*Super) Kind() Kind                { return KindSuper }
func (*ZSuper) Kind() Kind               { return KindZSuper }
func (*Yield) Kind() Kind                { return KindYield }
func (*Return) Kind() Kind               { return KindReturn }
func (*Break) Kind() Kind                { return KindBreak }
func (*Next) Kind() Kind                 { return KindNext }
func (*Redo) Kind() Kind                 { return KindRedo }
func (*Retry) Kind() Kind                { return KindRetry }
func (*If) Kind() Kind                   { return KindIf }
func (*IfMod) Kind() Kind                { return KindIfMod }
func (*IfTernary) Kind() Kind            { return KindIfTernary }
func (*Case) Kind() Kind                 { return KindCase }
func (*When) Kind() Kind                 { return KindWhen }
func (*CaseMatch) Kind() Kind            { return KindCaseMatch }
func (*InPattern) Kind() Kind            { return KindInPattern }
func (*IfGuard) Kind() Kind              { return KindIfGuard }
func (*UnlessGuard) Kind() Kind          { return KindUnlessGuard }
func (*While) Kind() Kind                { return KindWhile }
func (*Until) Kind() Kind                { return KindUntil }
func (*WhilePost) Kind() Kind            { return KindWhilePost }
func (*UntilPost) Kind() Kind            { return KindUntilPost }
func (*For) Kind() Kind                  { return KindFor }
func (*Begin) Kind() Kind                { return KindBegin }
func (*KwBegin) Kind() Kind              { return KindKwBegin }
func (*Rescue) Kind() Kind               { return KindRescue }
func (*RescueBody) Kind() Kind           { return KindRescueBody }
func (*Ensure) Kind() Kind               { return KindEnsure }
func (*EmptyElse) Kind() Kind            { return KindEmptyElse }
func (*Preexe) Kind() Kind               { return KindPreexe }
func (*Postexe) Kind() Kind              { return KindPostexe }
func (*Def) Kind() Kind                  { return KindDef }
func (*Defs) Kind() Kind                 { return KindDefs }
func (*Class) Kind() Kind                { return KindClass }
func (*Module) Kind() Kind               { return KindModule }
func (*SClass) Kind() Kind               { return KindSClass }
func (*Alias) Kind() Kind                { return KindAlias }
func (*Undef) Kind() Kind                { return KindUndef }
func (*Args) Kind() Kind                 { return KindArgs }
func (*Arg) Kind() Kind                  { return KindArg }
func (*Optarg) Kind() Kind               { return KindOptarg }
func (*Restarg) Kind() Kind              { return KindRestarg }
func (*Kwarg) Kind() Kind                { return KindKwarg }
func (*Kwoptarg) Kind() Kind             { return KindKwoptarg }
func (*Kwrestarg) Kind() Kind            { return KindKwrestarg }
func (*Kwnilarg) Kind() Kind             { return KindKwnilarg }
func (*Blockarg) Kind() Kind             { return KindBlockarg }
func (*Shadowarg) Kind() Kind            { return KindShadowarg }
func (*Procarg0) Kind() Kind             { return KindProcarg0 }
func (*ForwardArg) Kind() Kind           { return KindForwardArg }
func (*ForwardedArgs) Kind() Kind        { return KindForwardedArgs }
func (*ArrayPattern) Kind() Kind         { return KindArrayPattern }
func (*ArrayPatternWithTail) Kind() Kind { return KindArrayPatternWithTail }
func (*HashPattern) Kind() Kind          { return KindHashPattern }
func (*FindPattern) Kind() Kind          { return KindFindPattern }
func (*ConstPattern) Kind() Kind         { return KindConstPattern }
func (*MatchAlt) Kind() Kind             { return KindMatchAlt }
func (*MatchAs) Kind() Kind              { return KindMatchAs }
func (*MatchRest) Kind() Kind            { return KindMatchRest }
func (*MatchVar) Kind() Kind             { return KindMatchVar }
func (*MatchNilPattern) Kind() Kind      { return KindMatchNilPattern }
func (*Pin) Kind() Kind                  { return KindPin }
func (*MatchPattern) Kind() Kind         { return KindMatchPattern }
func (*MatchPatternP) Kind() Kind        { return KindMatchPatternP }
func (*MatchCurrentLine) Kind() Kind     { return KindMatchCurrentLine }
func (*MatchWithLvasgn) Kind() Kind      { return KindMatchWithLvasgn }

func (*Int) node()                  {}
func (*Float) node()                {}
func (*Rational) node()             {}
func (*Complex) node()              {}
func (*Str) node()                  {}
func (*Dstr) node()                 {}
func (*Sym) node()                  {}
func (*Dsym) node()                 {}
func (*Xstr) node()                 {}
func (*Heredoc) node()              {}
func (*XHeredoc) node()             {}
func (*Regexp) node()               {}
func (*RegOpt) node()               {}
func (*True) node()                 {}
func (*False) node()                {}
func (*Nil) node()                  {}
func (*Self) node()                 {}
func (*File) node()                 {}
func (*Line) node()                 {}
func (*Encoding) node()             {}
func (*Array) node()                {}
func (*Hash) node()                 {}
func (*Pair) node()                 {}
func (*Kwargs) node()               {}
func (*Kwsplat) node()              {}
func (*Irange) node()               {}
func (*Erange) node()               {}
func (*IFlipFlop) node()            {}
func (*EFlipFlop) node()            {}
func (*Lvar) node()                 {}
func (*Ivar) node()                 {}
func (*Cvar) node()                 {}
func (*Gvar) node()                 {}
func (*BackRef) node()              {}
func (*NthRef) node()               {}
func (*Const) node()                {}
func (*Cbase) node()                {}
func (*Lvasgn) node()               {}
func (*Ivasgn) node()               {}
func (*Cvasgn) node()               {}
func (*Gvasgn) node()               {}
func (*Casgn) node()                {}
func (*OpAsgn) node()               {}
func (*AndAsgn) node()              {}
func (*OrAsgn) node()               {}
func (*IndexAsgn) node()            {}
func (*Masgn) node()                {}
func (*Mlhs) node()                 {}
func (*And) node()                  {}
func (*Or) node()                   {}
func (*Defined) node()              {}
func (*Splat) node()                {}
func (*Index) node()                {}
func (*Send) node()                 {}
func (*CSend) node()                {}
func (*Block) node()                {}
func (*Numblock) node()             {}
func (*BlockPass) node()            {}
func (*Lambda) node()               {}
func (*Super) node()                {}
func (*ZSuper) node()               {}
func (*Yield) node()                {}
func (*Return) node()               {}
func (*Break) node()                {}
func (*Next) node()                 {}
func (*Redo) node()                 {}
func (*Retry) node()                {}
func (*If) node()                   {}
func (*IfMod) node()                {}
func (*IfTernary) node()            {}
func (*Case) node()                 {}
func (*When) node()                 {}
func (*CaseMatch) node()            {}
func (*InPattern) node()            {}
func (*IfGuard) node()              {}
func (*UnlessGuard) node()          {}
func (*While) node()                {}
func (*Until) node()                {}
func (*WhilePost) node()            {}
func (*UntilPost) node()            {}
func (*For) node()                  {}
func (*Begin) node()                {}
func (*KwBegin) node()              {}
func (*Rescue) node()               {}
func (*RescueBody) node()           {}
func (*Ensure) node()               {}
func (*EmptyElse) node()            {}
func (*Preexe) node()               {}
func (*Postexe) node()              {}
func (*Def) node()                  {}
func (*Defs) node()                 {}
func (*Class) node()                {}
func (*Module) node()               {}
func (*SClass) node()               {}
func (*Alias) node()                {}
func (*Undef) node()                {}
func (*Args) node()                 {}
func (*Arg) node()                  {}
func (*Optarg) node()               {}
func (*Restarg) node()              {}
func (*Kwarg) node()                {}
func (*Kwoptarg) node()             {}
func (*Kwrestarg) node()            {}
func (*Kwnilarg) node()             {}
func (*Blockarg) node()             {}
func (*Shadowarg) node()            {}
func (*Procarg0) node()             {}
func (*ForwardArg) node()           {}
func (*ForwardedArgs) node()        {}
func (*ArrayPattern) node()         {}
func (*ArrayPatternWithTail) node() {}
func (*HashPattern) node()          {}
func (*FindPattern) node()          {}
func (*ConstPattern) node()         {}
func (*MatchAlt) node()             {}
func (*MatchAs) node()              {}
func (*MatchRest) node()            {}
func (*MatchVar) node()             {}
func (*MatchNilPattern) node()      {}
func (*Pin) node()                  {}
func (*MatchPattern) node()         {}
func (*MatchPatternP) node()        {}
func (*MatchCurrentLine) node()     {}
func (*MatchWithLvasgn) node()      {}
