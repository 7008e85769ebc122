// Package value provides the runtime value system for the expression
// language: a tagged union of Null, Undefined, Bool, Number, String,
// Array, and Object, plus the mutable Context an expression evaluates
// against.
//
// Core Design Principles:
//
// Type Safety:
//
//	Each value type implements the Value interface, providing type
//	checking at runtime. The Type() method allows for safe type
//	discrimination and error reporting without reflection.
//
// Dynamic Typing, Not Coercion-Free:
//
//	Equality (==, !=) and some operators coerce across tags (number to
//	string, null to undefined); that coercion lives in pkg/grammar, not
//	here. This package only stores and stringifies
//	values; it does not implement operator semantics.
//
// Value Types:
//
// Primitive Types:
//   - Null: the null value (singleton)
//   - Undefined: the "no such value" result of missing property access
//   - Bool: boolean values (true, false)
//   - Number: 64-bit IEEE-754 floats, the sole numeric type
//   - String: UTF-8 strings
//
// Composite Types:
//   - Array: ordered sequences of Value
//   - Object: string-keyed maps with insertion order preserved for
//     iteration; lookup is by key
//
// Context holds the mutable bindings an expression reads and, via
// assignment, writes. Unlike a lexically scoped environment with parent
// chaining, a Context is flat: this language has no user-defined
// functions or nested lexical scopes, only a second "relative" value
// threaded through filter-expression evaluation (see pkg/eval).
package value
