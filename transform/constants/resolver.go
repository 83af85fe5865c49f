package constants

import (
	"strconv"
	"strings"

	"github.com/rubywriter/rubywriter/ast"
)

// Resolver computes a replacement for a call assigned to a constant. It
// returns nil when it does not recognize the call.
type Resolver func(call *ast.Send) ast.Node

// LinearResolver recognizes receiverless calls to method with one integer
// literal argument per coefficient, and resolves them to
// base + c1*a1 + ... + cn*an.
func LinearResolver(method string, base int64, coefficients ...int64) Resolver {
	return func(call *ast.Send) ast.Node {
		if call.Recv != nil || call.MethodName != method || len(call.Args) != len(coefficients) {
			return nil
		}
		sum := base
		for i, arg := range call.Args {
			v, ok := IntValue(arg)
			if !ok {
				return nil
			}
			sum += coefficients[i] * v
		}
		return &ast.Int{Value: strconv.FormatInt(sum, 10)}
	}
}

// Resolvers chains resolvers. The first non-nil replacement wins.
func Resolvers(resolvers ...Resolver) Resolver {
	return func(call *ast.Send) ast.Node {
		for _, resolve := range resolvers {
			if resolve == nil {
				continue
			}
			if n := resolve(call); n != nil {
				return n
			}
		}
		return nil
	}
}

// IntValue returns the value of an integer literal written in any Ruby
// notation: digit separators and 0b, 0o, 0x and leading 0 prefixes.
func IntValue(n ast.Node) (int64, bool) {
	lit, ok := n.(*ast.Int)
	if !ok {
		return 0, false
	}
	text := strings.ReplaceAll(lit.Value, "_", "")
	sign := ""
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		sign, text = "-", rest
	}
	base := 0
	if strings.HasPrefix(text, "0d") || strings.HasPrefix(text, "0D") {
		text, base = text[2:], 10
	}
	v, err := strconv.ParseInt(sign+text, base, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
