package lexer

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lam-lang/lam/frontend/lamerr"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func TestLexExpression(t *testing.T) {
	tokens, err := Lex(NewSource(`\x:Number. add x 1`))
	require.NoError(t, err)

	assert.Equal(t, []Kind{
		Lambda, Ident, Colon, TypeName, Dot, Ident, Ident, Number,
	}, kinds(tokens))
	assert.Equal(t, "add", tokens[5].Text)
	assert.Equal(t, "1", tokens[7].Text)
}

func TestLexKeywordsAndLiterals(t *testing.T) {
	tokens, err := Lex(NewSource("let x = true in f false 42"))
	require.NoError(t, err)

	assert.Equal(t, []Kind{
		Let, Ident, Equals, Bool, In, Ident, Bool, Number,
	}, kinds(tokens))
}

func TestLexArrow(t *testing.T) {
	tokens, err := Lex(NewSource("Number -> Bool"))
	require.NoError(t, err)
	assert.Equal(t, []Kind{TypeName, Arrow, TypeName}, kinds(tokens))

	_, err = Lex(NewSource("a - b"))
	require.Error(t, err)
	var lamError lamerr.LamError
	require.True(t, goerrors.As(err, &lamError))
	assert.Equal(t, lamerr.UnknownCharacter, lamError.Code())
}

func TestLexUnknownCharacter(t *testing.T) {
	src := NewSource("x ? y")
	tokens, err := Lex(src)
	require.Error(t, err)

	// tokens before the bad character are still returned
	assert.Equal(t, []Kind{Ident}, kinds(tokens))

	var lamError lamerr.LamError
	require.True(t, goerrors.As(err, &lamError))
	line, col := src.LineCol(lamError.Pos())
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, col)
}

func TestLexPositions(t *testing.T) {
	src := NewSource("ab cd\nef")
	tokens, err := Lex(src)
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	line, col := src.LineCol(tokens[1].Pos())
	assert.Equal(t, 1, line)
	assert.Equal(t, 4, col)

	line, col = src.LineCol(tokens[2].Pos())
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestSourceLines(t *testing.T) {
	src := NewSource("first\nsecond\nthird\n")
	assert.Equal(t, "first", src.Line(1))
	assert.Equal(t, "second", src.Line(2))
	assert.Equal(t, "third", src.Line(3))
	assert.Equal(t, "", src.Line(99))
}

func TestCapitalizedWordIsTypeName(t *testing.T) {
	tokens, err := Lex(NewSource("x Number y"))
	require.NoError(t, err)
	assert.Equal(t, []Kind{Ident, TypeName, Ident}, kinds(tokens))
}
