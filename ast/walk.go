package ast

// Children returns the direct children of n in source order. Absent optional
// children are skipped.
func Children(n Node) []Node {
	var c children
	switch n := n.(type) {
	case *Dstr:
		c.all(n.Parts)
	case *Dsym:
		c.all(n.Parts)
	case *Xstr:
		c.all(n.Parts)
	case *Heredoc:
		c.all(n.Parts)
	case *XHeredoc:
		c.all(n.Parts)
	case *Regexp:
		c.all(n.Parts)
		c.opt(n.Options)
	case *Array:
		c.all(n.Elements)
	case *Hash:
		c.all(n.Pairs)
	case *Pair:
		c.opt(n.Key, n.Value)
	case *Kwargs:
		c.all(n.Pairs)
	case *Kwsplat:
		c.opt(n.Value)
	case *Irange:
		c.opt(n.Left, n.Right)
	case *Erange:
		c.opt(n.Left, n.Right)
	case *IFlipFlop:
		c.opt(n.Left, n.Right)
	case *EFlipFlop:
		c.opt(n.Left, n.Right)
	case *Const:
		c.opt(n.Scope)
	case *Lvasgn:
		c.opt(n.Value)
	case *Ivasgn:
		c.opt(n.Value)
	case *Cvasgn:
		c.opt(n.Value)
	case *Gvasgn:
		c.opt(n.Value)
	case *Casgn:
		c.opt(n.Scope, n.Value)
	case *OpAsgn:
		c.opt(n.Recv, n.Value)
	case *AndAsgn:
		c.opt(n.Recv, n.Value)
	case *OrAsgn:
		c.opt(n.Recv, n.Value)
	case *IndexAsgn:
		c.opt(n.Recv)
		c.all(n.Indexes)
		c.opt(n.Value)
	case *Masgn:
		c.opt(n.Lhs, n.Rhs)
	case *Mlhs:
		c.all(n.Items)
	case *And:
		c.opt(n.Lhs, n.Rhs)
	case *Or:
		c.opt(n.Lhs, n.Rhs)
	case *Defined:
		c.opt(n.Value)
	case *Splat:
		c.opt(n.Value)
	case *Index:
		c.opt(n.Recv)
		c.all(n.Indexes)
	case *Send:
		c.opt(n.Recv)
		c.all(n.Args)
	case *CSend:
		c.opt(n.Recv)
		c.all(n.Args)
	case *Block:
		c.opt(n.Call, n.Args, n.Body)
	case *Numblock:
		c.opt(n.Call, n.Body)
	case *BlockPass:
		c.opt(n.Value)
	case *Super:
		c.all(n.Args)
	case *Yield:
		c.all(n.Args)
	case *Return:
		c.all(n.Args)
	case *Break:
		c.all(n.Args)
	case *Next:
		c.all(n.Args)
	case *If:
		c.opt(n.Cond, n.IfTrue, n.IfFalse)
	case *IfMod:
		c.opt(n.IfTrue, n.IfFalse, n.Cond)
	case *IfTernary:
		c.opt(n.Cond, n.IfTrue, n.IfFalse)
	case *Case:
		c.opt(n.Expr)
		c.all(n.WhenBodies)
		c.opt(n.ElseBody)
	case *When:
		c.all(n.Patterns)
		c.opt(n.Body)
	case *CaseMatch:
		c.opt(n.Expr)
		c.all(n.InBodies)
		c.opt(n.ElseBody)
	case *InPattern:
		c.opt(n.Pattern, n.Guard, n.Body)
	case *IfGuard:
		c.opt(n.Cond)
	case *UnlessGuard:
		c.opt(n.Cond)
	case *While:
		if n.End == nil {
			c.opt(n.Body, n.Cond)
		} else {
			c.opt(n.Cond, n.Body)
		}
	case *Until:
		if n.End == nil {
			c.opt(n.Body, n.Cond)
		} else {
			c.opt(n.Cond, n.Body)
		}
	case *WhilePost:
		c.opt(n.Body, n.Cond)
	case *UntilPost:
		c.opt(n.Body, n.Cond)
	case *For:
		c.opt(n.Iterator, n.Iteratee, n.Body)
	case *Begin:
		c.all(n.Statements)
	case *KwBegin:
		c.all(n.Statements)
	case *Rescue:
		c.opt(n.Body)
		c.all(n.RescueBodies)
		c.opt(n.Else)
	case *RescueBody:
		c.opt(n.ExcList, n.ExcVar, n.Body)
	case *Ensure:
		c.opt(n.Body, n.Ensure)
	case *Preexe:
		c.opt(n.Body)
	case *Postexe:
		c.opt(n.Body)
	case *Def:
		c.opt(n.Args, n.Body)
	case *Defs:
		c.opt(n.Definee, n.Args, n.Body)
	case *Class:
		c.opt(n.Name, n.Superclass, n.Body)
	case *Module:
		c.opt(n.Name, n.Body)
	case *SClass:
		c.opt(n.Expr, n.Body)
	case *Alias:
		c.opt(n.To, n.From)
	case *Undef:
		c.all(n.Names)
	case *Args:
		c.all(n.Args)
	case *Optarg:
		c.opt(n.Default)
	case *Kwoptarg:
		c.opt(n.Default)
	case *Procarg0:
		c.all(n.Args)
	case *ArrayPattern:
		c.all(n.Elements)
	case *ArrayPatternWithTail:
		c.all(n.Elements)
	case *HashPattern:
		c.all(n.Elements)
	case *FindPattern:
		c.all(n.Elements)
	case *ConstPattern:
		c.opt(n.Const, n.Pattern)
	case *MatchAlt:
		c.opt(n.Lhs, n.Rhs)
	case *MatchAs:
		c.opt(n.Value, n.As)
	case *MatchRest:
		c.opt(n.Name)
	case *Pin:
		c.opt(n.Var)
	case *MatchPattern:
		c.opt(n.Value, n.Pattern)
	case *MatchPatternP:
		c.opt(n.Value, n.Pattern)
	case *MatchCurrentLine:
		c.opt(n.Re)
	case *MatchWithLvasgn:
		c.opt(n.Re, n.Value)
	}
	return c
}

type children []Node

// opt appends each node that is present.
func (c *children) opt(nodes ...Node) {
	for _, n := range nodes {
		if n != nil {
			*c = append(*c, n)
		}
	}
}

func (c *children) all(nodes []Node) {
	c.opt(nodes...)
}

// Inspect traverses the tree rooted at n in depth-first order, calling f for
// each node. If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// A Visitor's Visit method is invoked for each node encountered by Walk. If
// the result visitor w is not nil, Walk visits each of the children of node
// with w.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree rooted at n in depth-first order.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	for _, child := range Children(n) {
		Walk(v, child)
	}
}
