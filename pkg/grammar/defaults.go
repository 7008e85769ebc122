package grammar

import (
	"math"
	"strings"

	"github.com/conneroisu/jexl/internal/errs"
	"github.com/conneroisu/jexl/internal/value"
)

var internalAssignError = errs.New(errs.AssignmentTarget, "assignment operator cannot be evaluated as a binary expression")

// NewDefaultGrammar builds the grammar the public facade bundles: the
// full default operator table of the language surface (`=`, `||`,
// `&&`, `==`, `!=`, `<`, `<=`, `>`, `>=`, `in`, `+`, `-`, `*`, `/`, `//`,
// `%`, `^`, unary `!`) and a small default transform library (`lower`,
// `upper`, `trim`).
func NewDefaultGrammar() *Grammar {
	g := New()

	// Assignment is reserved at the lexeme/precedence level for the
	// lexer and parser; the parser intercepts it before it ever reaches
	// a BinaryExpression, so this Eval only guards against misuse by a
	// future caller that bypasses that interception.
	g.AddBinaryOp("=", 2, func(l, r value.Value) (value.Value, error) {
		return nil, internalAssignError
	})

	g.AddBinaryOpOnDemand("||", 10, func(left, right Thunk) (value.Value, error) {
		l, err := left()
		if err != nil {
			return nil, err
		}
		if Truthy(l) {
			return l, nil
		}
		return right()
	})
	g.AddBinaryOpOnDemand("&&", 10, func(left, right Thunk) (value.Value, error) {
		l, err := left()
		if err != nil {
			return nil, err
		}
		if !Truthy(l) {
			return l, nil
		}
		return right()
	})

	g.AddBinaryOp("==", 20, func(l, r value.Value) (value.Value, error) { return value.Bool(LooseEqual(l, r)), nil })
	g.AddBinaryOp("!=", 20, func(l, r value.Value) (value.Value, error) { return value.Bool(!LooseEqual(l, r)), nil })
	g.AddBinaryOp("<", 20, relOp(func(c int) bool { return c < 0 }))
	g.AddBinaryOp("<=", 20, relOp(func(c int) bool { return c <= 0 }))
	g.AddBinaryOp(">", 20, relOp(func(c int) bool { return c > 0 }))
	g.AddBinaryOp(">=", 20, relOp(func(c int) bool { return c >= 0 }))
	g.AddBinaryOp("in", 20, func(l, r value.Value) (value.Value, error) { return value.Bool(inOp(l, r)), nil })

	g.AddBinaryOp("+", 30, func(l, r value.Value) (value.Value, error) {
		if _, ok := l.(value.String); ok {
			return value.String(ToStr(l) + ToStr(r)), nil
		}
		if _, ok := r.(value.String); ok {
			return value.String(ToStr(l) + ToStr(r)), nil
		}
		return value.Number(ToNumber(l) + ToNumber(r)), nil
	})
	g.AddBinaryOp("-", 30, func(l, r value.Value) (value.Value, error) {
		return value.Number(ToNumber(l) - ToNumber(r)), nil
	})
	g.AddBinaryOp("*", 40, func(l, r value.Value) (value.Value, error) {
		return value.Number(ToNumber(l) * ToNumber(r)), nil
	})
	g.AddBinaryOp("/", 40, func(l, r value.Value) (value.Value, error) {
		return value.Number(ToNumber(l) / ToNumber(r)), nil
	})
	g.AddBinaryOp("//", 40, func(l, r value.Value) (value.Value, error) {
		return value.Number(math.Floor(ToNumber(l) / ToNumber(r))), nil
	})
	g.AddBinaryOp("%", 50, func(l, r value.Value) (value.Value, error) {
		return value.Number(math.Mod(ToNumber(l), ToNumber(r))), nil
	})
	g.AddBinaryOp("^", 50, func(l, r value.Value) (value.Value, error) {
		return value.Number(math.Pow(ToNumber(l), ToNumber(r))), nil
	})

	g.AddUnaryOp("!", func(v value.Value) (value.Value, error) {
		return value.Bool(!Truthy(v)), nil
	})

	g.AddTransforms(map[string]Function{
		"lower": func(args []value.Value) (value.Value, error) {
			return value.String(strings.ToLower(arg0(args))), nil
		},
		"upper": func(args []value.Value) (value.Value, error) {
			return value.String(strings.ToUpper(arg0(args))), nil
		},
		"trim": func(args []value.Value) (value.Value, error) {
			return value.String(strings.TrimSpace(arg0(args))), nil
		},
	})

	return g
}

func arg0(args []value.Value) string {
	if len(args) == 0 {
		return ""
	}
	return ToStr(args[0])
}

// relOp builds a strict BinaryOp.Eval from a comparator over the
// 3-valued ordering produced by compare. NaN-involving comparisons
// compare as "incomparable" and report false for every relational op,
// matching IEEE-754 semantics.
func relOp(accept func(cmp int) bool) func(l, r value.Value) (value.Value, error) {
	return func(l, r value.Value) (value.Value, error) {
		c, ok := compare(l, r)
		if !ok {
			return value.Bool(false), nil
		}
		return value.Bool(accept(c)), nil
	}
}

func compare(l, r value.Value) (cmp int, ok bool) {
	ls, lIsStr := l.(value.String)
	rs, rIsStr := r.(value.String)
	if lIsStr && rIsStr {
		switch {
		case ls < rs:
			return -1, true
		case ls > rs:
			return 1, true
		default:
			return 0, true
		}
	}
	lf, rf := ToNumber(l), ToNumber(r)
	if math.IsNaN(lf) || math.IsNaN(rf) {
		return 0, false
	}
	switch {
	case lf < rf:
		return -1, true
	case lf > rf:
		return 1, true
	default:
		return 0, true
	}
}

func inOp(l, r value.Value) bool {
	switch rv := r.(type) {
	case value.String:
		return strings.Contains(string(rv), ToStr(l))
	case *value.Array:
		for _, e := range rv.Elements() {
			if LooseEqual(l, e) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
