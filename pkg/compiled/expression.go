package compiled

import (
	"github.com/conneroisu/jexl/internal/ast"
	"github.com/conneroisu/jexl/internal/value"
	"github.com/conneroisu/jexl/pkg/eval"
	"github.com/conneroisu/jexl/pkg/grammar"
	"github.com/conneroisu/jexl/pkg/parser"
)

// Expression is a parsed AST bound to the grammar it was compiled
// against. It may be evaluated many times against distinct contexts;
// repeated evaluation of the same compiled expression against the same
// context returns equal results, since evaluation never mutates the AST
// or the grammar.
type Expression struct {
	Source  string
	AST     ast.Expr
	Grammar *grammar.Grammar
}

// Compile lexes and parses source against g, without evaluating it.
func Compile(source string, g *grammar.Grammar) (*Expression, error) {
	tree, err := parser.Parse(source, g)
	if err != nil {
		return nil, err
	}
	return &Expression{Source: source, AST: tree, Grammar: g}, nil
}

// Evaluate walks the compiled AST against a fresh value.Context built
// from context, returning the result converted back to a plain Go value
// via value.ToNative. Assignments performed by the expression are
// written back into the supplied context map, so `x = 5` leaves
// context["x"] == 5 after the call.
func (e *Expression) Evaluate(context map[string]any) (any, error) {
	result, ctx, err := e.evaluate(context)
	if err != nil {
		return nil, err
	}
	if context != nil {
		for name, v := range ctx.Mutations() {
			context[name] = value.ToNative(v)
		}
	}
	return value.ToNative(result), nil
}

// EvaluateContext is Evaluate's lower-level counterpart: it returns the
// resulting value.Value and the post-evaluation binding snapshot
// (reflecting any assignments the expression performed), both still in
// the internal/value representation. The supplied map is not written
// back to.
func (e *Expression) EvaluateContext(context map[string]any) (value.Value, map[string]value.Value, error) {
	result, ctx, err := e.evaluate(context)
	if err != nil {
		return nil, nil, err
	}
	return result, ctx.Snapshot(), nil
}

func (e *Expression) evaluate(context map[string]any) (value.Value, *value.Context, error) {
	vars := make(map[string]value.Value, len(context))
	for k, v := range context {
		vars[k] = value.FromNative(v)
	}
	ctx := value.NewContext(vars)
	result, err := eval.New(e.Grammar, ctx).Eval(e.AST)
	if err != nil {
		return nil, nil, err
	}
	return result, ctx, nil
}
