package ast

// Kind identifies the variant of a Node. The writer threads the Kind of the
// enclosing node through its Context to special-case child rendering.
type Kind uint8

const (
	KindNone Kind = iota

	// literals
	KindInt
	KindFloat
	KindRational
	KindComplex
	KindStr
	KindDstr
	KindSym
	KindDsym
	KindXstr
	KindHeredoc
	KindXHeredoc
	KindRegexp
	KindRegOpt
	KindTrue
	KindFalse
	KindNil
	KindSelf
	KindFile
	KindLine
	KindEncoding
	KindArray
	KindHash
	KindPair
	KindKwargs
	KindKwsplat
	KindIrange
	KindErange
	KindIFlipFlop
	KindEFlipFlop

	// variables
	KindLvar
	KindIvar
	KindCvar
	KindGvar
	KindBackRef
	KindNthRef
	KindConst
	KindCbase

	// assignments
	KindLvasgn
	KindIvasgn
	KindCvasgn
	KindGvasgn
	KindCasgn
	KindOpAsgn
	KindAndAsgn
	KindOrAsgn
	KindIndexAsgn
	KindMasgn
	KindMlhs

	// expressions and calls
	KindAnd
	KindOr
	KindDefined
	KindSplat
	KindIndex
	KindSend
	KindCSend
	KindBlock
	KindNumblock
	KindBlockPass
	KindLambda
	KindSuper
	KindZSuper
	KindYield
	KindReturn
	KindBreak
	KindNext
	KindRedo
	KindRetry

	// control flow
	KindIf
	KindIfMod
	KindIfTernary
	KindCase
	KindWhen
	KindCaseMatch
	KindInPattern
	KindIfGuard
	KindUnlessGuard
	KindWhile
	KindUntil
	KindWhilePost
	KindUntilPost
	KindFor
	KindBegin
	KindKwBegin
	KindRescue
	KindRescueBody
	KindEnsure
	KindEmptyElse
	KindPreexe
	KindPostexe

	// definitions and parameters
	KindDef
	KindDefs
	KindClass
	KindModule
	KindSClass
	KindAlias
	KindUndef
	KindArgs
	KindArg
	KindOptarg
	KindRestarg
	KindKwarg
	KindKwoptarg
	KindKwrestarg
	KindKwnilarg
	KindBlockarg
	KindShadowarg
	KindProcarg0
	KindForwardArg
	KindForwardedArgs

	// pattern matching
	KindArrayPattern
	KindArrayPatternWithTail
	KindHashPattern
	KindFindPattern
	KindConstPattern
	KindMatchAlt
	KindMatchAs
	KindMatchRest
	KindMatchVar
	KindMatchNilPattern
	KindPin
	KindMatchPattern
	KindMatchPatternP
	KindMatchCurrentLine
	KindMatchWithLvasgn

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:                 "none",
	KindInt:                  "int",
	KindFloat:                "float",
	KindRational:             "rational",
	KindComplex:              "complex",
	KindStr:                  "str",
	KindDstr:                 "dstr",
	KindSym:                  "sym",
	KindDsym:                 "dsym",
	KindXstr:                 "xstr",
	KindHeredoc:              "heredoc",
	KindXHeredoc:             "x_heredoc",
	KindRegexp:               "regexp",
	KindRegOpt:               "regopt",
	KindTrue:                 "true",
	KindFalse:                "false",
	KindNil:                  "nil",
	KindSelf:                 "self",
	KindFile:                 "__FILE__",
	KindLine:                 "__LINE__",
	KindEncoding:             "__ENCODING__",
	KindArray:                "array",
	KindHash:                 "hash",
	KindPair:                 "pair",
	KindKwargs:               "kwargs",
	KindKwsplat:              "kwsplat",
	KindIrange:               "irange",
	KindErange:               "erange",
	KindIFlipFlop:            "iflipflop",
	KindEFlipFlop:            "eflipflop",
	KindLvar:                 "lvar",
	KindIvar:                 "ivar",
	KindCvar:                 "cvar",
	KindGvar:                 "gvar",
	KindBackRef:              "back_ref",
	KindNthRef:               "nth_ref",
	KindConst:                "const",
	KindCbase:                "cbase",
	KindLvasgn:               "lvasgn",
	KindIvasgn:               "ivasgn",
	KindCvasgn:               "cvasgn",
	KindGvasgn:               "gvasgn",
	KindCasgn:                "casgn",
	KindOpAsgn:               "op_asgn",
	KindAndAsgn:              "and_asgn",
	KindOrAsgn:               "or_asgn",
	KindIndexAsgn:            "indexasgn",
	KindMasgn:                "masgn",
	KindMlhs:                 "mlhs",
	KindAnd:                  "and",
	KindOr:                   "or",
	KindDefined:              "defined?",
	KindSplat:                "splat",
	KindIndex:                "index",
	KindSend:                 "send",
	KindCSend:                "csend",
	KindBlock:                "block",
	KindNumblock:             "numblock",
	KindBlockPass:            "block_pass",
	KindLambda:               "lambda",
	KindSuper:                "super",
	KindZSuper:               "zsuper",
	KindYield:                "yield",
	KindReturn:               "return",
	KindBreak:                "break",
	KindNext:                 "next",
	KindRedo:                 "redo",
	KindRetry:                "retry",
	KindIf:                   "if",
	KindIfMod:                "if_mod",
	KindIfTernary:            "if_ternary",
	KindCase:                 "case",
	KindWhen:                 "when",
	KindCaseMatch:            "case_match",
	KindInPattern:            "in_pattern",
	KindIfGuard:              "if_guard",
	KindUnlessGuard:          "unless_guard",
	KindWhile:                "while",
	KindUntil:                "until",
	KindWhilePost:            "while_post",
	KindUntilPost:            "until_post",
	KindFor:                  "for",
	KindBegin:                "begin",
	KindKwBegin:              "kwbegin",
	KindRescue:               "rescue",
	KindRescueBody:           "resbody",
	KindEnsure:               "ensure",
	KindEmptyElse:            "empty_else",
	KindPreexe:               "preexe",
	KindPostexe:              "postexe",
	KindDef:                  "def",
	KindDefs:                 "defs",
	KindClass:                "class",
	KindModule:               "module",
	KindSClass:               "sclass",
	KindAlias:                "alias",
	KindUndef:                "undef",
	KindArgs:                 "args",
	KindArg:                  "arg",
	KindOptarg:               "optarg",
	KindRestarg:              "restarg",
	KindKwarg:                "kwarg",
	KindKwoptarg:             "kwoptarg",
	KindKwrestarg:            "kwrestarg",
	KindKwnilarg:             "kwnilarg",
	KindBlockarg:             "blockarg",
	KindShadowarg:            "shadowarg",
	KindProcarg0:             "procarg0",
	KindForwardArg:           "forward_arg",
	KindForwardedArgs:        "forwarded_args",
	KindArrayPattern:         "array_pattern",
	KindArrayPatternWithTail: "array_pattern_with_tail",
	KindHashPattern:          "hash_pattern",
	KindFindPattern:          "find_pattern",
	KindConstPattern:         "const_pattern",
	KindMatchAlt:             "match_alt",
	KindMatchAs:              "match_as",
	KindMatchRest:            "match_rest",
	KindMatchVar:             "match_var",
	KindMatchNilPattern:      "match_nil_pattern",
	KindPin:                  "pin",
	KindMatchPattern:         "match_pattern",
	KindMatchPatternP:        "match_pattern_p",
	KindMatchCurrentLine:     "match_current_line",
	KindMatchWithLvasgn:      "match_with_lvasgn",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every node kind except KindNone, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
