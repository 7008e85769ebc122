// Package ast defines the node set produced by pkg/parser and consumed by
// pkg/eval.
//
// Design Principles:
//
// Discriminated Union:
//
//	Every node kind is its own Go struct implementing Expr; pkg/eval
//	dispatches on concrete type via a type switch rather than a tagged
//	enum field.
//
// No Parent Pointers:
//
//	pkg/parser builds each node bottom-up by precedence climbing, its
//	call stack standing in for parent links, so these node structs carry
//	none: a tree reaching pkg/eval is a plain child-pointer tree with no
//	way to walk upward, which is all the evaluator ever needs.
//
// Node Set:
//   - Literal: a constant value
//   - Identifier: a context lookup, property access, or filter-relative
//     lookup
//   - UnaryExpression, BinaryExpression: operator application
//   - ArrayLiteral, ObjectLiteral: collection construction
//   - FunctionCall: invokes a grammar-registered function or transform
//   - FilterExpression: `subject[expr]`, either an array filter or a
//     single-element indexer depending on whether expr used a relative
//     identifier
//   - ConditionalExpression: ternary, with an optional omitted consequent
//   - TemplateLiteral: backtick string with `${...}` interpolations
//   - SequenceExpression: `;`-joined expressions, valued by the last
//   - AssignmentExpression: `name = value`, mutating the context
package ast
