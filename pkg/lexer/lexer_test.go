package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/jexl/internal/value"
	"github.com/conneroisu/jexl/pkg/grammar"
)

func allTokens(t *testing.T, input string) []Token {
	t.Helper()
	l := New(input, grammar.NewDefaultGrammar())
	var toks []Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err, "input %q", input)
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	toks := allTokens(t, `foo.bar[0] | f(1,2) ? a : b; x = 1 + 2 * 3 // 4 % 5 ^ 6 && 7 || !8`)

	want := []Kind{
		Identifier, Dot, Identifier, OpenBracket, Literal, CloseBracket,
		Pipe, Identifier, OpenParen, Literal, Comma, Literal, CloseParen,
		Question, Identifier, Colon, Identifier, Semicolon,
		Identifier, BinaryOp, Literal, BinaryOp, Literal, BinaryOp, Literal,
		BinaryOp, Literal, BinaryOp, Literal, BinaryOp, Literal,
		BinaryOp, Literal, BinaryOp, UnaryOp, Literal,
		EOF,
	}
	require.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind, "token %d (%q)", i, toks[i].Raw)
	}
}

func TestLexNumberLeadingMinusAbsorption(t *testing.T) {
	toks := allTokens(t, "-7 // 2")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, Literal, toks[0].Kind)
	assert.Equal(t, value.Number(-7), toks[0].Literal)
}

func TestLexMinusNotAbsorbedAfterOperand(t *testing.T) {
	toks := allTokens(t, "7 - 2")
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, value.Number(7), toks[0].Literal)
	assert.Equal(t, BinaryOp, toks[1].Kind)
	assert.Equal(t, "-", toks[1].Raw)
	assert.Equal(t, value.Number(2), toks[2].Literal)
}

func TestLexKeywordLiterals(t *testing.T) {
	toks := allTokens(t, "true false null")
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, value.Bool(true), toks[0].Literal)
	assert.Equal(t, value.Bool(false), toks[1].Literal)
	assert.Equal(t, value.Null{}, toks[2].Literal)
}

func TestLexIdentifierReclassifiedAsOperator(t *testing.T) {
	toks := allTokens(t, `"bar" in list`)
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, BinaryOp, toks[1].Kind)
	assert.Equal(t, "in", toks[1].Raw)
}

func TestLexUnicodeIdentifiers(t *testing.T) {
	toks := allTokens(t, "Правда + café")
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, "Правда", toks[0].Raw)
	assert.Equal(t, Identifier, toks[2].Kind)
	assert.Equal(t, "café", toks[2].Raw)
}

func TestLexStringEscapes(t *testing.T) {
	toks := allTokens(t, `"a\"b\nc"`)
	require.Equal(t, Literal, toks[0].Kind)
	assert.Equal(t, value.String("a\"b\nc"), toks[0].Literal)
}

func TestLexTemplateStaticOnly(t *testing.T) {
	toks := allTokens(t, "`hello world`")
	require.Equal(t, TemplateString, toks[0].Kind)
	require.Len(t, toks[0].Parts, 1)
	assert.True(t, toks[0].Parts[0].Static)
	assert.Equal(t, "hello world", toks[0].Parts[0].Text)
}

func TestLexTemplateInterpolation(t *testing.T) {
	toks := allTokens(t, "`age: ${a + 1} done`")
	require.Equal(t, TemplateString, toks[0].Kind)
	require.Len(t, toks[0].Parts, 3)
	assert.True(t, toks[0].Parts[0].Static)
	assert.Equal(t, "age: ", toks[0].Parts[0].Text)
	assert.False(t, toks[0].Parts[1].Static)
	assert.Equal(t, "a + 1", toks[0].Parts[1].Src)
	assert.True(t, toks[0].Parts[2].Static)
	assert.Equal(t, " done", toks[0].Parts[2].Text)
}

func TestLexTemplateNestedBraceDepth(t *testing.T) {
	toks := allTokens(t, "`${ {a: 1}.a }`")
	require.Equal(t, TemplateString, toks[0].Kind)
	require.Len(t, toks[0].Parts, 1)
	assert.Equal(t, " {a: 1}.a ", toks[0].Parts[0].Src)
}

func TestLexTemplateInterpolationIgnoresBracesInStrings(t *testing.T) {
	toks := allTokens(t, "`${foo[\"}\"]}`")
	require.Equal(t, TemplateString, toks[0].Kind)
	require.Len(t, toks[0].Parts, 1)
	assert.Equal(t, `foo["}"]`, toks[0].Parts[0].Src)
}

func TestLexTemplateEscapesPassThroughVerbatim(t *testing.T) {
	toks := allTokens(t, "`a\\`b\\$c`")
	require.Equal(t, TemplateString, toks[0].Kind)
	require.Len(t, toks[0].Parts, 1)
	assert.Equal(t, "a\\`b\\$c", toks[0].Parts[0].Text)
}

func TestLexUnclosedStringErrors(t *testing.T) {
	_, err := New(`"abc`, grammar.NewDefaultGrammar()).NextToken()
	require.Error(t, err)
}

func TestLexUnclosedTemplateErrors(t *testing.T) {
	_, err := New("`abc", grammar.NewDefaultGrammar()).NextToken()
	require.Error(t, err)
}

func TestLexInvalidTokenErrors(t *testing.T) {
	_, err := New("&", grammar.NewDefaultGrammar()).NextToken()
	require.Error(t, err)
}
