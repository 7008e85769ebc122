// Package grammar implements the extensibility contract all three core
// subsystems read from: a plain data object mapping operator lexemes to
// precedence and eval behavior, plus the function and transform
// registries a FunctionCall resolves against.
//
// Registration API:
//
//	AddBinaryOp / AddBinaryOpOnDemand, AddUnaryOp, RemoveOp,
//	AddFunction / AddFunctions / GetFunction,
//	AddTransform / AddTransforms / GetTransform.
//
// The lexer reads only the registered operator lexemes: BinaryLexemes/
// UnaryLexemes for its maximal-munch scan, and BinaryOpFor/UnaryOpFor to
// reclassify word-shaped operators such as `in`. The parser
// reads only each operator's Precedence. The evaluator reads only each
// operator's Eval or EvalOnDemand function and the function/transform
// registries. None of the three subsystems type-switches on grammar
// internals beyond that, so a host can add, in full, a new operator or
// callable without touching core package code.
//
// NewDefaultGrammar seeds a Grammar with the language's default operator
// table and a small transform library (lower/upper/trim).
package grammar
