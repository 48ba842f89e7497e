package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lam-lang/lam/frontend/ast"
	"github.com/lam-lang/lam/frontend/lexer"
	"github.com/lam-lang/lam/frontend/types"
)

func parseString(t *testing.T, src string) (ast.Expr, error) {
	t.Helper()
	tokens, err := lexer.Lex(lexer.NewSource(src))
	require.NoError(t, err)
	return Parse(tokens, types.NewArena())
}

func TestApplicationIsLeftAssociative(t *testing.T) {
	expr, err := parseString(t, "f g h")
	require.NoError(t, err)

	outer, ok := expr.(*ast.Application)
	require.True(t, ok)
	assert.Equal(t, "h", outer.Argument.(*ast.Identifier).Name)

	inner, ok := outer.Function.(*ast.Application)
	require.True(t, ok)
	assert.Equal(t, "f", inner.Function.(*ast.Identifier).Name)
	assert.Equal(t, "g", inner.Argument.(*ast.Identifier).Name)
}

func TestLambda(t *testing.T) {
	expr, err := parseString(t, `\x. x y`)
	require.NoError(t, err)

	lambda, ok := expr.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, "x", lambda.Param)
	assert.Nil(t, lambda.Annotation)
	assert.IsType(t, &ast.Application{}, lambda.Body)
}

func TestLambdaBodyExtendsRight(t *testing.T) {
	// the body of a lambda is everything to the right of the dot
	expr, err := parseString(t, `\f. f \x. x`)
	require.NoError(t, err)

	lambda := expr.(*ast.Lambda)
	app, ok := lambda.Body.(*ast.Application)
	require.True(t, ok)
	assert.IsType(t, &ast.Lambda{}, app.Argument)
}

func TestParenthesized(t *testing.T) {
	expr, err := parseString(t, `(\x.x) 3`)
	require.NoError(t, err)

	app, ok := expr.(*ast.Application)
	require.True(t, ok)
	assert.IsType(t, &ast.Lambda{}, app.Function)

	lit, ok := app.Argument.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.NumberLit, lit.Kind)
	assert.Equal(t, "3", lit.Value)
}

func TestLetIn(t *testing.T) {
	expr, err := parseString(t, "let x = 3 in x")
	require.NoError(t, err)

	let, ok := expr.(*ast.LetIn)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	assert.Nil(t, let.Annotation)
	assert.IsType(t, &ast.Literal{}, let.Bound)
	assert.IsType(t, &ast.Identifier{}, let.Body)
}

func TestBoolLiterals(t *testing.T) {
	expr, err := parseString(t, "true")
	require.NoError(t, err)

	lit, ok := expr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.BoolLit, lit.Kind)
}

func TestAnnotationArrowsAssociateRight(t *testing.T) {
	expr, err := parseString(t, `\f:Number -> Number -> Bool. f`)
	require.NoError(t, err)

	lambda := expr.(*ast.Lambda)
	require.NotNil(t, lambda.Annotation)
	arrow, ok := lambda.Annotation.Type.(*ast.ArrowType)
	require.True(t, ok)
	assert.IsType(t, &ast.TypeName{}, arrow.Arg)
	assert.IsType(t, &ast.ArrowType{}, arrow.Ret)
	assert.Equal(t, "Number -> Number -> Bool", ast.TypeExprString(lambda.Annotation.Type))
}

func TestAnnotationParenthesizedArrow(t *testing.T) {
	expr, err := parseString(t, `\f:(Number -> Bool) -> Number. f`)
	require.NoError(t, err)

	lambda := expr.(*ast.Lambda)
	require.NotNil(t, lambda.Annotation)
	arrow, ok := lambda.Annotation.Type.(*ast.ArrowType)
	require.True(t, ok)
	assert.IsType(t, &ast.ArrowType{}, arrow.Arg)
	assert.Equal(t, "(Number -> Bool) -> Number", ast.TypeExprString(lambda.Annotation.Type))
}

func TestLetAnnotation(t *testing.T) {
	expr, err := parseString(t, "let x:Number = 3 in x")
	require.NoError(t, err)

	let := expr.(*ast.LetIn)
	require.NotNil(t, let.Annotation)
	assert.Equal(t, "Number", ast.TypeExprString(let.Annotation.Type))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src     string
		message string
	}{
		{``, "expected Lambda or L-Paren or Identifier or Number or Bool or Let, got EOF"},
		{`\x x`, "expected Dot, got Identifier 'x'"},
		{`\x.`, "expected Lambda or L-Paren or Identifier or Number or Bool or Let, got EOF"},
		{`(x`, "expected R-Paren, got EOF"},
		{`x)`, "expected EOF, got R-Paren ')'"},
		{`let x 3 in x`, "expected Equals, got Number '3'"},
		{`let x = (3) in`, "expected Lambda or L-Paren or Identifier or Number or Bool or Let, got EOF"},
		{`\x:number. x`, "expected Type, got Identifier 'number'"},
	}
	for _, c := range cases {
		_, err := parseString(t, c.src)
		require.Error(t, err, "source: %s", c.src)
		assert.Contains(t, err.Error(), c.message, "source: %s", c.src)
	}
}

func TestEveryNodeGetsItsOwnVariable(t *testing.T) {
	arena := types.NewArena()
	tokens, err := lexer.Lex(lexer.NewSource(`(\x.x) 3`))
	require.NoError(t, err)
	expr, err := Parse(tokens, arena)
	require.NoError(t, err)

	app := expr.(*ast.Application)
	lambda := app.Function.(*ast.Lambda)
	seen := map[int]bool{}
	for _, node := range []ast.Expr{app, lambda, lambda.Body, app.Argument} {
		id := node.TypeVar().Id()
		assert.False(t, seen[id], "variable %d assigned twice", id)
		seen[id] = true
	}
}
