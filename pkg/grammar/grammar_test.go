package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/jexl/internal/value"
)

func TestNewDefaultGrammarHasOperatorTable(t *testing.T) {
	g := NewDefaultGrammar()
	for _, lexeme := range []string{"=", "||", "&&", "==", "!=", "<", "<=", ">", ">=", "in", "+", "-", "*", "/", "//", "%", "^"} {
		_, ok := g.BinaryOpFor(lexeme)
		assert.True(t, ok, "missing default binary op %q", lexeme)
	}
	_, ok := g.UnaryOpFor("!")
	assert.True(t, ok)
}

func TestAddBinaryOpAndRemoveOp(t *testing.T) {
	g := New()
	g.AddBinaryOp("~>", 15, func(l, r value.Value) (value.Value, error) {
		return value.Bool(true), nil
	})
	op, ok := g.BinaryOpFor("~>")
	require.True(t, ok)
	assert.Equal(t, 15, op.Precedence)

	g.RemoveOp("~>")
	_, ok = g.BinaryOpFor("~>")
	assert.False(t, ok)
}

func TestAddBinaryOpOnDemandReceivesThunks(t *testing.T) {
	g := New()
	var rightCalled bool
	g.AddBinaryOpOnDemand("lazy", 10, func(left, right Thunk) (value.Value, error) {
		l, err := left()
		if err != nil {
			return nil, err
		}
		if !Truthy(l) {
			return l, nil
		}
		rightCalled = true
		return right()
	})
	op, ok := g.BinaryOpFor("lazy")
	require.True(t, ok)
	require.NotNil(t, op.EvalOnDemand)

	_, err := op.EvalOnDemand(
		func() (value.Value, error) { return value.Bool(false), nil },
		func() (value.Value, error) { t.Fatal("right should not be evaluated"); return nil, nil },
	)
	require.NoError(t, err)
	assert.False(t, rightCalled)
}

func TestFunctionAndTransformRegistries(t *testing.T) {
	g := New()
	g.AddFunction("id", func(args []value.Value) (value.Value, error) { return args[0], nil })
	fn, ok := g.GetFunction("id")
	require.True(t, ok)
	v, err := fn([]value.Value{value.Number(7)})
	require.NoError(t, err)
	assert.Equal(t, value.Number(7), v)

	_, ok = g.GetFunction("missing")
	assert.False(t, ok)

	g.AddTransforms(map[string]Function{
		"double": func(args []value.Value) (value.Value, error) {
			return value.Number(ToNumber(args[0]) * 2), nil
		},
	})
	tr, ok := g.GetTransform("double")
	require.True(t, ok)
	v, err = tr([]value.Value{value.Number(21)})
	require.NoError(t, err)
	assert.Equal(t, value.Number(42), v)
}

func TestBinaryLexemesLongestFirst(t *testing.T) {
	g := NewDefaultGrammar()
	lexemes := g.BinaryLexemes()
	idxEq, idxEqEq := -1, -1
	for i, l := range lexemes {
		if l == "=" {
			idxEq = i
		}
		if l == "==" {
			idxEqEq = i
		}
	}
	require.NotEqual(t, -1, idxEq)
	require.NotEqual(t, -1, idxEqEq)
	assert.Less(t, idxEqEq, idxEq, "== must be tried before = for maximal munch")
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    value.Value
		want bool
	}{
		{value.Bool(false), false},
		{value.Number(0), false},
		{value.String(""), false},
		{value.Null{}, false},
		{value.Undefined{}, false},
		{value.Bool(true), true},
		{value.Number(1), true},
		{value.String("x"), true},
		{value.NewArray(), true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Truthy(c.v), "Truthy(%v)", c.v)
	}
}

func TestLooseEqualNullUndefined(t *testing.T) {
	assert.True(t, LooseEqual(value.Null{}, value.Undefined{}))
	assert.True(t, LooseEqual(value.Undefined{}, value.Null{}))
}

func TestLooseEqualNumberString(t *testing.T) {
	assert.True(t, LooseEqual(value.Number(1), value.String("1")))
	assert.False(t, LooseEqual(value.Number(1), value.String("x")))
}

func TestToNumberCoercion(t *testing.T) {
	assert.Equal(t, float64(3), ToNumber(value.String("3")))
	assert.Equal(t, float64(1), ToNumber(value.Bool(true)))
	assert.Equal(t, float64(0), ToNumber(value.Null{}))
	assert.True(t, ToNumber(value.Undefined{}) != ToNumber(value.Undefined{})) // NaN != NaN
}
