package eval

import (
	"github.com/conneroisu/jexl/internal/ast"
	"github.com/conneroisu/jexl/internal/errs"
	"github.com/conneroisu/jexl/internal/value"
	"github.com/conneroisu/jexl/pkg/grammar"
)

// Evaluator walks one AST, against one mutable Context, for the
// grammar's registered operators and callables. A Grammar is read-only
// once evaluation starts; the host must not register new operators or
// callables concurrently with an in-flight Eval.
type Evaluator struct {
	g   *grammar.Grammar
	ctx *value.Context
	// relative is the filter body's current element, set only by
	// withRelative. Left as the nil Value by New, which is
	// indistinguishable from Undefined to property access, so reading a
	// relative identifier outside a filter degrades to Undefined rather
	// than panicking.
	relative value.Value
}

// New builds an Evaluator over ctx using g's operator and callable
// tables. The same Evaluator may run Eval repeatedly against the same
// AST; each call re-walks the tree from scratch, reading whatever ctx
// currently holds (assignments from a prior call are visible to the
// next).
func New(g *grammar.Grammar, ctx *value.Context) *Evaluator {
	return &Evaluator{g: g, ctx: ctx}
}

// Eval evaluates expr in the Evaluator's top-level (non-relative)
// context.
func (e *Evaluator) Eval(expr ast.Expr) (value.Value, error) {
	return e.eval(expr)
}

// withRelative returns a child Evaluator sharing this one's grammar and
// context but with its relative-context set to elem, for evaluating a
// filter body against one candidate element.
func (e *Evaluator) withRelative(elem value.Value) *Evaluator {
	return &Evaluator{g: e.g, ctx: e.ctx, relative: elem}
}

func (e *Evaluator) eval(expr ast.Expr) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.UnaryExpression:
		return e.evalUnary(n)
	case *ast.BinaryExpression:
		return e.evalBinary(n)
	case *ast.AssignmentExpression:
		return e.evalAssignment(n)
	case *ast.SequenceExpression:
		return e.evalSequence(n)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n)
	case *ast.ObjectLiteral:
		return e.evalObjectLiteral(n)
	case *ast.FunctionCall:
		return e.evalFunctionCall(n)
	case *ast.FilterExpression:
		return e.evalFilter(n)
	case *ast.ConditionalExpression:
		return e.evalConditional(n)
	case *ast.TemplateLiteral:
		return e.evalTemplate(n)
	default:
		return nil, errs.New(errs.UnexpectedToken, "unhandled AST node type: %T", expr)
	}
}

// evalIdentifier implements plain lookup (From absent), relative lookup
// (From absent, Relative true, inside a filter body), and property
// access (From present), including the array-projection rule: reading a
// property of an array result substitutes its element 0 first.
func (e *Evaluator) evalIdentifier(n *ast.Identifier) (value.Value, error) {
	if n.From == nil {
		if n.Relative {
			return e.property(e.relative, n.Name), nil
		}
		return e.ctx.Get(n.Name), nil
	}

	subject, err := e.eval(n.From)
	if err != nil {
		return nil, err
	}
	return e.property(subject, n.Name), nil
}

// property reads name off subject, applying the array-projection rule
// (substitute element 0 of an array before the property access) and
// yielding Undefined rather than raising for null/undefined subjects.
// Projection is exactly one level deep: if element 0 is itself an
// array, the property is read off that inner array (yielding
// Undefined), not off its first element.
func (e *Evaluator) property(subject value.Value, name string) value.Value {
	if arr, ok := subject.(*value.Array); ok {
		subject = arr.Get(0)
	}
	switch s := subject.(type) {
	case value.Null, value.Undefined:
		return value.Undefined{}
	case *value.Object:
		if v, ok := s.Get(name); ok {
			return v
		}
		return value.Undefined{}
	case value.String:
		if name == "length" {
			return value.Number(len([]rune(string(s))))
		}
		return value.Undefined{}
	default:
		return value.Undefined{}
	}
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpression) (value.Value, error) {
	op, ok := e.g.UnaryOpFor(n.Op)
	if !ok {
		return nil, errs.New(errs.UnexpectedToken, "unregistered unary operator: %s", n.Op)
	}
	right, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}
	return op.Eval(right)
}

// evalBinary looks up the operator in the grammar and either runs its
// strict Eval against both already-evaluated operands, or its
// EvalOnDemand against a thunk per operand, so short-circuit operators
// never evaluate (or observe errors from) the operand they don't need.
func (e *Evaluator) evalBinary(n *ast.BinaryExpression) (value.Value, error) {
	op, ok := e.g.BinaryOpFor(n.Op)
	if !ok {
		return nil, errs.New(errs.UnexpectedToken, "unregistered binary operator: %s", n.Op)
	}
	if op.EvalOnDemand != nil {
		return op.EvalOnDemand(e.thunk(n.Left), e.thunk(n.Right))
	}
	left, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}
	return op.Eval(left, right)
}

func (e *Evaluator) thunk(node ast.Expr) grammar.Thunk {
	return func() (value.Value, error) { return e.eval(node) }
}

func (e *Evaluator) evalAssignment(n *ast.AssignmentExpression) (value.Value, error) {
	v, err := e.eval(n.Value)
	if err != nil {
		return nil, err
	}
	e.ctx.Set(n.Target.Name, v)
	return v, nil
}

func (e *Evaluator) evalSequence(n *ast.SequenceExpression) (value.Value, error) {
	var result value.Value = value.Undefined{}
	for _, sub := range n.Exprs {
		v, err := e.eval(sub)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral) (value.Value, error) {
	elems := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.eval(el)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewArray(elems...), nil
}

func (e *Evaluator) evalObjectLiteral(n *ast.ObjectLiteral) (value.Value, error) {
	obj := value.NewObject()
	for _, entry := range n.Entries {
		v, err := e.eval(entry.Value)
		if err != nil {
			return nil, err
		}
		obj.Set(entry.Key, v)
	}
	return obj, nil
}

// evalFunctionCall resolves Name against the pool's registry and
// invokes it with its evaluated arguments, propagating a wrapped error
// if the callable itself fails.
func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall) (value.Value, error) {
	fn, ok := e.lookupCallable(n.Name, n.Pool)
	if !ok {
		return nil, errs.New(errs.UnknownCallable, "Jexl %s %s is not defined.", n.Pool, n.Name)
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	result, err := fn(args)
	if err != nil {
		return nil, errs.Wrap(err, "%s %s failed: %s", n.Pool, n.Name, err.Error())
	}
	return result, nil
}

func (e *Evaluator) lookupCallable(name string, pool ast.Pool) (grammar.Function, bool) {
	if pool == ast.Transforms {
		return e.g.GetTransform(name)
	}
	return e.g.GetFunction(name)
}

// evalConditional evaluates a ternary. A nil Consequent (the `test ?:
// alternate` form) means the test's own value is the consequent; its
// already-computed value is reused rather than walking the test subtree
// a second time.
func (e *Evaluator) evalConditional(n *ast.ConditionalExpression) (value.Value, error) {
	test, err := e.eval(n.Test)
	if err != nil {
		return nil, err
	}
	if !grammar.Truthy(test) {
		return e.eval(n.Alternate)
	}
	if n.Consequent == nil {
		return test, nil
	}
	return e.eval(n.Consequent)
}
