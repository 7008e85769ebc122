// Package ast defines the abstract syntax tree built by pkg/parser and
// walked by pkg/eval: one Go struct per AST node kind, each
// implementing the Expr interface, each carrying the source position it
// started at.
package ast

import "github.com/conneroisu/jexl/internal/value"

// SourcePos marks a node's starting line/column in the source text, used
// to attribute parser errors.
type SourcePos struct {
	Line   int
	Column int
}

// Expr is implemented by every AST node.
type Expr interface {
	Pos() SourcePos
	exprNode()
}

type baseNode struct {
	pos SourcePos
}

func (b baseNode) Pos() SourcePos { return b.pos }
func (baseNode) exprNode()        {}

// Literal holds a constant value.
type Literal struct {
	baseNode
	Value value.Value
}

// NewLiteral builds a Literal node.
func NewLiteral(pos SourcePos, v value.Value) *Literal {
	return &Literal{baseNode{pos}, v}
}

// Identifier references a context binding (From absent) or accesses a
// property of another expression's result (From present). Relative is
// true when the identifier was introduced by a leading `.` inside a
// filter body, meaning it resolves against the filter's current element
// rather than the outer context.
type Identifier struct {
	baseNode
	Name     string
	From     Expr
	Relative bool
}

// NewIdentifier builds an Identifier node.
func NewIdentifier(pos SourcePos, name string) *Identifier {
	return &Identifier{baseNode: baseNode{pos}, Name: name}
}

// UnaryExpression applies a unary operator to Right.
type UnaryExpression struct {
	baseNode
	Op    string
	Right Expr
}

// BinaryExpression applies a binary operator to Left and Right. The
// parser builds it only after both operands are parsed, so neither is
// nil.
type BinaryExpression struct {
	baseNode
	Op    string
	Left  Expr
	Right Expr
}

// ArrayLiteral is an ordered list of element expressions.
type ArrayLiteral struct {
	baseNode
	Elements []Expr
}

// ObjectEntry is one key/value pair of an ObjectLiteral, in source order.
type ObjectEntry struct {
	Key   string
	Value Expr
}

// ObjectLiteral is an ordered set of key/expression entries; keys are
// strings, insertion order preserved.
type ObjectLiteral struct {
	baseNode
	Entries []ObjectEntry
}

// Pool names which registry a FunctionCall resolves its callable in.
type Pool int

const (
	// Functions resolves Name against the grammar's function registry.
	Functions Pool = iota
	// Transforms resolves Name against the grammar's transform registry.
	// Transforms is sugar: `x|f(a,b)` desugars to a Transforms-pool
	// FunctionCall with Args = [x, a, b].
	Transforms
)

func (p Pool) String() string {
	if p == Transforms {
		return "Transform"
	}
	return "Function"
}

// FunctionCall invokes a registered function or transform by name.
type FunctionCall struct {
	baseNode
	Name string
	Args []Expr
	Pool Pool
}

// FilterExpression is `subject[expr]`. Relative is true iff expr
// references a relative (leading-dot) identifier, making this a filter
// over an array rather than a single-element indexer.
type FilterExpression struct {
	baseNode
	Subject  Expr
	Expr     Expr
	Relative bool
}

// ConditionalExpression is a ternary `test ? consequent : alternate`.
// Consequent is nil when the form `test ?: alternate` was used, meaning
// "the test's own value is the result if truthy".
type ConditionalExpression struct {
	baseNode
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// TemplatePart is one static-text or interpolation piece of a
// TemplateLiteral.
type TemplatePart struct {
	Static bool
	Text   string // valid when Static
	Node   Expr   // valid when !Static
}

// TemplateLiteral is a backtick-delimited string with `${...}`
// interpolations.
type TemplateLiteral struct {
	baseNode
	Parts []TemplatePart
}

// SequenceExpression holds two or more `;`-separated sub-expressions;
// its value is the value of the last one.
type SequenceExpression struct {
	baseNode
	Exprs []Expr
}

// AssignmentExpression stores the value of Value into the context under
// Target.Name. Target must be a bare Identifier: From nil, Relative
// false.
type AssignmentExpression struct {
	baseNode
	Target *Identifier
	Value  Expr
}

// Constructors. baseNode is unexported, so the parser (the sole builder
// of these nodes) goes through these rather than composite literals.

func NewUnary(pos SourcePos, op string, right Expr) *UnaryExpression {
	return &UnaryExpression{baseNode{pos}, op, right}
}

func NewBinary(pos SourcePos, op string, left, right Expr) *BinaryExpression {
	return &BinaryExpression{baseNode{pos}, op, left, right}
}

func NewArrayLiteral(pos SourcePos, elements []Expr) *ArrayLiteral {
	return &ArrayLiteral{baseNode{pos}, elements}
}

func NewObjectLiteral(pos SourcePos, entries []ObjectEntry) *ObjectLiteral {
	return &ObjectLiteral{baseNode{pos}, entries}
}

func NewFunctionCall(pos SourcePos, name string, args []Expr, pool Pool) *FunctionCall {
	return &FunctionCall{baseNode{pos}, name, args, pool}
}

func NewFilterExpression(pos SourcePos, subject, expr Expr, relative bool) *FilterExpression {
	return &FilterExpression{baseNode{pos}, subject, expr, relative}
}

func NewConditional(pos SourcePos, test, consequent, alternate Expr) *ConditionalExpression {
	return &ConditionalExpression{baseNode{pos}, test, consequent, alternate}
}

func NewTemplateLiteral(pos SourcePos, parts []TemplatePart) *TemplateLiteral {
	return &TemplateLiteral{baseNode{pos}, parts}
}

func NewSequence(pos SourcePos, exprs []Expr) *SequenceExpression {
	return &SequenceExpression{baseNode{pos}, exprs}
}

func NewAssignment(pos SourcePos, target *Identifier, value Expr) *AssignmentExpression {
	return &AssignmentExpression{baseNode{pos}, target, value}
}
