package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goscheme/internal/token"
)

func TestTokenizeAtoms(t *testing.T) {
	tokens, err := Tokenize(`(+ 1 2.5 "hi\n" #t #f foo)`)
	require.NoError(t, err)

	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []token.Kind{
		token.LeftParen,
		token.Identifier,
		token.Numeric,
		token.Numeric,
		token.StringLit,
		token.Boolean,
		token.Boolean,
		token.Identifier,
		token.RightParen,
	}, kinds)

	require.Equal(t, "hi\n", tokens[4].Text)
	require.Equal(t, 2.5, tokens[3].Number)
}

func TestTokenizeReaderMacros(t *testing.T) {
	tokens, err := Tokenize("'x `(1 ,y)")
	require.NoError(t, err)

	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []token.Kind{
		token.Quote, token.Identifier,
		token.Quasiquote, token.LeftParen, token.Numeric, token.Unquote, token.Identifier, token.RightParen,
	}, kinds)
}

func TestTokenizeComments(t *testing.T) {
	tokens, err := Tokenize("; a comment\n(foo) ; trailing")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
}

func TestTokenizeDot(t *testing.T) {
	tokens, err := Tokenize("(a . b)")
	require.NoError(t, err)
	require.Equal(t, token.Dot, tokens[2].Kind)
}

func TestTokenizeNegativeNumber(t *testing.T) {
	tokens, err := Tokenize("(- -5 3)")
	require.NoError(t, err)
	require.Equal(t, token.Identifier, tokens[1].Kind)
	require.Equal(t, token.Numeric, tokens[2].Kind)
	require.Equal(t, -5.0, tokens[2].Number)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
}
