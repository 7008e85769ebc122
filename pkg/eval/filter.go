package eval

import (
	"github.com/conneroisu/jexl/internal/ast"
	"github.com/conneroisu/jexl/internal/errs"
	"github.com/conneroisu/jexl/internal/value"
	"github.com/conneroisu/jexl/pkg/grammar"
)

// evalFilter implements `subject[expr]`. Relative is decided entirely by
// the parser (ast.FilterExpression.Relative): a relative body filters an
// array by predicate, a non-relative body indexes by key/position.
func (e *Evaluator) evalFilter(n *ast.FilterExpression) (value.Value, error) {
	subject, err := e.eval(n.Subject)
	if err != nil {
		return nil, err
	}

	if n.Relative {
		return e.evalRelativeFilter(subject, n.Expr)
	}
	return e.evalIndex(subject, n.Expr)
}

// evalRelativeFilter evaluates expr once per element of subject, in a
// child Evaluator whose relative-context is that element, and collects
// the elements for which expr was truthy. A null/undefined subject
// yields an empty array rather than raising.
func (e *Evaluator) evalRelativeFilter(subject value.Value, expr ast.Expr) (value.Value, error) {
	if !e.g.AllowRelativeFilter {
		return nil, errs.New(errs.RelativeFilterUnsupported, "this grammar does not allow relative filter expressions")
	}

	arr, ok := asArray(subject)
	if !ok {
		return value.NewArray(), nil
	}

	var kept []value.Value
	for _, elem := range arr.Elements() {
		sub := e.withRelative(elem)
		result, err := sub.eval(expr)
		if err != nil {
			return nil, err
		}
		if grammar.Truthy(result) {
			kept = append(kept, elem)
		}
	}
	return value.NewArray(kept...), nil
}

// evalIndex evaluates expr to an index/key and reads that single
// element or property off subject. A null/undefined subject yields
// Undefined rather than raising.
func (e *Evaluator) evalIndex(subject value.Value, expr ast.Expr) (value.Value, error) {
	switch subject.(type) {
	case value.Null, value.Undefined:
		return value.Undefined{}, nil
	}

	key, err := e.eval(expr)
	if err != nil {
		return nil, err
	}

	switch s := subject.(type) {
	case *value.Array:
		if n, ok := key.(value.Number); ok {
			return s.Get(int(n)), nil
		}
		return value.Undefined{}, nil
	case *value.Object:
		if str, ok := key.(value.String); ok {
			if v, ok := s.Get(string(str)); ok {
				return v, nil
			}
		}
		return value.Undefined{}, nil
	default:
		return value.Undefined{}, nil
	}
}

func asArray(v value.Value) (*value.Array, bool) {
	arr, ok := v.(*value.Array)
	return arr, ok
}
