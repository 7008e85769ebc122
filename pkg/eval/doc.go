// Package eval implements the tree-walking evaluator: the third and
// final stage of the pipeline, turning an internal/ast tree plus a
// value.Context into a value.Value.
//
// Architecture:
//
// The evaluator dispatches by node kind in a single type switch and
// threads a second, optional "relative" value alongside the ordinary
// context: this language has no nested scopes, only a filter body's
// current element, which only FilterExpression evaluation ever
// introduces (see filter.go).
//
//   - eval.go: Evaluator, the public Eval entry point, the dispatch
//     switch, and property access with its one-level array-projection
//     rule.
//   - filter.go: FilterExpression, both the relative (array-filter) and
//     non-relative (indexer) forms.
//   - template.go: TemplateLiteral interpolation and concatenation.
//
// Evaluation Strategy:
//
//   - Operands and arguments evaluate strictly left-to-right.
//   - `&&`/`||` and any grammar-registered on-demand operator receive
//     thunks and may skip evaluating the operand they don't need;
//     errors inside a skipped operand are never observed.
//   - Assignment mutates the shared value.Context in place and returns
//     the assigned value; a SequenceExpression threads the same Context
//     through each segment, so earlier assignments are visible to later
//     segments.
//
// Errors are internal/errs.Error values; the evaluator never recovers
// from one internally. The first error aborts the whole Eval call.
package eval
