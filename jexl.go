// Package jexl is the public facade: it bundles a default grammar (and,
// optionally, a compiled-expression cache) behind convenience
// Evaluate/Compile entry points. The core packages (internal/ast,
// internal/value, pkg/lexer, pkg/parser, pkg/eval, pkg/grammar) never
// import this package, only the reverse.
package jexl

import (
	"github.com/conneroisu/jexl/pkg/cache"
	"github.com/conneroisu/jexl/pkg/compiled"
	"github.com/conneroisu/jexl/pkg/grammar"
)

// Expression is a parsed AST bound to the grammar it was compiled
// against, ready to be evaluated against many contexts.
type Expression = compiled.Expression

// Option configures a Jexl instance built by New.
type Option func(*Jexl)

// WithCache enables a compiled-expression LRU cache of the given
// capacity: Evaluate and Compile will reuse a prior compilation for the
// same source string instead of re-lexing and re-parsing it.
func WithCache(capacity int) Option {
	return func(j *Jexl) { j.cache = cache.New(capacity) }
}

// WithGrammar replaces the default grammar with g, for a host that wants
// to start from an empty or custom operator/function/transform table
// rather than extending the default one.
func WithGrammar(g *grammar.Grammar) Option {
	return func(j *Jexl) { j.grammar = g }
}

// Jexl bundles a grammar (default unless overridden by WithGrammar) and
// an optional compiled-expression cache.
type Jexl struct {
	grammar *grammar.Grammar
	cache   *cache.Cache
}

// New builds a Jexl instance with the default grammar, applying opts in
// order.
func New(opts ...Option) *Jexl {
	j := &Jexl{grammar: grammar.NewDefaultGrammar()}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Grammar returns the instance's grammar, for registering additional
// operators, functions, or transforms.
func (j *Jexl) Grammar() *grammar.Grammar { return j.grammar }

// Compile lexes and parses source, without evaluating it, returning a
// reusable Expression. When a cache is configured (WithCache), a prior
// compilation of the same source is returned instead of re-parsing.
func (j *Jexl) Compile(source string) (*Expression, error) {
	if j.cache == nil {
		return compiled.Compile(source, j.grammar)
	}
	return j.cache.GetOrCompile(source, func() (*compiled.Expression, error) {
		return compiled.Compile(source, j.grammar)
	})
}

// Evaluate compiles source and evaluates it against context in one
// call, returning a plain Go value (bool, float64, string, []any,
// map[string]any, or nil for null/undefined).
func (j *Jexl) Evaluate(source string, context map[string]any) (any, error) {
	expr, err := j.Compile(source)
	if err != nil {
		return nil, err
	}
	return expr.Evaluate(context)
}

// defaultInstance is the Jexl the package-level Evaluate/Compile
// functions delegate to: a default grammar, no cache, matching what a
// caller gets from New() with no options.
var defaultInstance = New()

// Evaluate is sugar for New().Evaluate(source, context); it is
// equivalent to Compile(source) followed by
// (*Expression).Evaluate(context).
func Evaluate(source string, context map[string]any) (any, error) {
	return defaultInstance.Evaluate(source, context)
}

// Compile is sugar for New().Compile(source).
func Compile(source string) (*Expression, error) {
	return defaultInstance.Compile(source)
}
