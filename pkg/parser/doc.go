// Package parser builds an internal/ast tree from a pkg/lexer token
// stream: operator precedence (data-driven via pkg/grammar), ternary,
// filter/indexer, identifier chains with relative-filter tracking,
// object/array/template literals, sequence (`;`), and assignment (`=`).
//
// Filter vs. indexer is resolved purely during parsing: parseFilterOrIndex
// pushes a frame onto relativeStack before parsing a bracket body and
// reads it back after; any leading-dot identifier encountered while that
// frame is on top marks it relative, which becomes the emitted
// FilterExpression.Relative flag the evaluator uses to choose array-filter
// semantics over single-element indexing.
//
// Assignment is intercepted in parseInfix rather than falling through to
// the generic binary-operator path: the left operand must already be a
// bare Identifier (no From, not Relative), or an AssignmentTarget error
// is raised immediately with the token position that triggered it.
package parser
