package jexl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/jexl"
	"github.com/conneroisu/jexl/internal/value"
	"github.com/conneroisu/jexl/pkg/grammar"
)

func grammarWithDoubleFn(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.NewDefaultGrammar()
	g.AddFunction("double", func(args []value.Value) (value.Value, error) {
		return value.Number(grammar.ToNumber(args[0]) * 2), nil
	})
	return g
}

func TestEvaluateArithmetic(t *testing.T) {
	v, err := jexl.Evaluate("(2 + 3) * 4", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(20), v)
}

func TestEvaluateRelativeFilter(t *testing.T) {
	ctx := map[string]any{
		"foo": map[string]any{
			"bar": []any{
				map[string]any{"tek": "hello"},
				map[string]any{"tek": "baz"},
				map[string]any{"tok": "baz"},
			},
		},
	}
	v, err := jexl.Evaluate(`foo.bar[.tek == "baz"]`, ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"tek": "baz"}}, v)
}

func TestCompileThenEvaluateMatchesEvaluate(t *testing.T) {
	ctx := map[string]any{"age": float64(20)}
	direct, err := jexl.Evaluate("age >= 18", ctx)
	require.NoError(t, err)

	expr, err := jexl.Compile("age >= 18")
	require.NoError(t, err)
	compiled, err := expr.Evaluate(ctx)
	require.NoError(t, err)

	assert.Equal(t, direct, compiled)
}

func TestEvaluateContextReturnsAssignmentResultAndBindings(t *testing.T) {
	expr, err := jexl.Compile("x = x + 1")
	require.NoError(t, err)

	ctx := map[string]any{"x": float64(1)}
	result, bindings, err := expr.EvaluateContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", result.String())
	assert.Contains(t, bindings, "x")
}

func TestEvaluateWritesAssignmentsBackToContext(t *testing.T) {
	ctx := map[string]any{}
	v, err := jexl.Evaluate("x = 5; y = x * 2; y", ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(10), v)
	assert.Equal(t, map[string]any{"x": float64(5), "y": float64(10)}, ctx)
}

func TestWithCacheReusesCompilation(t *testing.T) {
	j := jexl.New(jexl.WithCache(8))
	expr1, err := j.Compile("1 + 1")
	require.NoError(t, err)
	expr2, err := j.Compile("1 + 1")
	require.NoError(t, err)
	assert.Same(t, expr1, expr2)
}

func TestCustomGrammarFunction(t *testing.T) {
	g := grammarWithDoubleFn(t)
	j := jexl.New(jexl.WithGrammar(g))
	v, err := j.Evaluate("double(21)", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(42), v)
}
