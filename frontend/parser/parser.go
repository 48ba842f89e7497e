package parser

import (
	"fmt"
	"strings"

	"github.com/lam-lang/lam/frontend/ast"
	"github.com/lam-lang/lam/frontend/lamerr"
	"github.com/lam-lang/lam/frontend/lexer"
	"github.com/lam-lang/lam/frontend/types"
	"github.com/lam-lang/lam/internal/log"
)

var logger = log.DefaultLogger.With("section", "parser")

// Parse turns a token stream into a single expression tree. Every node is
// assigned a fresh type variable from arena at construction, before any
// inference runs.
func Parse(tokens []lexer.Token, arena *types.Arena) (ast.Expr, error) {
	r := &tokenReader{tokens: tokens, arena: arena}
	expr, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok, ok := r.peek(); ok {
		return nil, r.expectedError(nil, tok.Range)
	}
	logger.Debug("parsed expression", "syntax", expr.ExprName())
	return expr, nil
}

type tokenReader struct {
	tokens []lexer.Token
	pos    int
	arena  *types.Arena
}

func (r *tokenReader) peek() (lexer.Token, bool) {
	if r.pos >= len(r.tokens) {
		return lexer.Token{}, false
	}
	return r.tokens[r.pos], true
}

func (r *tokenReader) forward() {
	r.pos++
}

// endRange is where an unexpected end of input is reported: just past the
// last token.
func (r *tokenReader) endRange() ast.Range {
	if len(r.tokens) == 0 {
		return ast.Range{}
	}
	last := r.tokens[len(r.tokens)-1]
	return ast.Range{PosStart: last.End(), PosEnd: last.End()}
}

func (r *tokenReader) expectedError(expected []lexer.Kind, at ast.Positioner) error {
	var names []string
	for _, kind := range expected {
		names = append(names, kind.String())
	}
	expectedStr := strings.Join(names, " or ")
	if expectedStr == "" {
		expectedStr = "EOF"
	}
	got := "EOF"
	if tok, ok := r.peek(); ok {
		got = fmt.Sprintf("%s '%s'", tok.Kind, tok.Text)
	}
	return lamerr.New(lamerr.NewParse{
		Positioner:    ast.RangeOf(at),
		ParserMessage: fmt.Sprintf("expected %s, got %s", expectedStr, got),
	})
}

func (r *tokenReader) eat(kind lexer.Kind) (lexer.Token, error) {
	tok, ok := r.peek()
	if !ok {
		return lexer.Token{}, r.expectedError([]lexer.Kind{kind}, r.endRange())
	}
	if tok.Kind != kind {
		return lexer.Token{}, r.expectedError([]lexer.Kind{kind}, tok.Range)
	}
	r.forward()
	return tok, nil
}

var atomStarts = []lexer.Kind{
	lexer.Lambda,
	lexer.LParen,
	lexer.Ident,
	lexer.Number,
	lexer.Bool,
	lexer.Let,
}

// parseExpression parses a juxtaposition chain: one atom followed by zero or
// more atoms, folded into left-associative applications.
func (r *tokenReader) parseExpression() (ast.Expr, error) {
	expr, err := r.tryParseAtom()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		at := ast.Positioner(r.endRange())
		if tok, ok := r.peek(); ok {
			at = tok.Range
		}
		return nil, r.expectedError(atomStarts, at)
	}

	for {
		next, err := r.tryParseAtom()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return expr, nil
		}
		expr = &ast.Application{
			Range:    ast.RangeBetween(expr, next),
			Function: expr,
			Argument: next,
			TVar:     r.arena.Fresh(),
		}
	}
}

// tryParseAtom parses a non-application expression, or returns nil when the
// next token cannot start one.
func (r *tokenReader) tryParseAtom() (ast.Expr, error) {
	tok, ok := r.peek()
	if !ok {
		return nil, nil
	}
	switch tok.Kind {
	case lexer.Lambda:
		return r.parseLambda()
	case lexer.LParen:
		return r.parseParenthesized()
	case lexer.Ident:
		r.forward()
		return &ast.Identifier{Range: tok.Range, Name: tok.Text, TVar: r.arena.Fresh()}, nil
	case lexer.Number:
		r.forward()
		return &ast.Literal{Range: tok.Range, Value: tok.Text, Kind: ast.NumberLit, TVar: r.arena.Fresh()}, nil
	case lexer.Bool:
		r.forward()
		return &ast.Literal{Range: tok.Range, Value: tok.Text, Kind: ast.BoolLit, TVar: r.arena.Fresh()}, nil
	case lexer.Let:
		return r.parseLetIn()
	default:
		return nil, nil
	}
}

func (r *tokenReader) parseLambda() (ast.Expr, error) {
	lambdaTok, err := r.eat(lexer.Lambda)
	if err != nil {
		return nil, err
	}
	param, err := r.eat(lexer.Ident)
	if err != nil {
		return nil, err
	}
	annotation, err := r.tryParseAnnotation()
	if err != nil {
		return nil, err
	}
	if _, err := r.eat(lexer.Dot); err != nil {
		return nil, err
	}
	body, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{
		Range:      ast.RangeBetween(lambdaTok, body),
		Param:      param.Text,
		ParamRange: param.Range,
		Annotation: annotation,
		Body:       body,
		TVar:       r.arena.Fresh(),
	}, nil
}

func (r *tokenReader) parseParenthesized() (ast.Expr, error) {
	if _, err := r.eat(lexer.LParen); err != nil {
		return nil, err
	}
	expr, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := r.eat(lexer.RParen); err != nil {
		return nil, err
	}
	return expr, nil
}

func (r *tokenReader) parseLetIn() (ast.Expr, error) {
	letTok, err := r.eat(lexer.Let)
	if err != nil {
		return nil, err
	}
	name, err := r.eat(lexer.Ident)
	if err != nil {
		return nil, err
	}
	annotation, err := r.tryParseAnnotation()
	if err != nil {
		return nil, err
	}
	if _, err := r.eat(lexer.Equals); err != nil {
		return nil, err
	}
	bound, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := r.eat(lexer.In); err != nil {
		return nil, err
	}
	body, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.LetIn{
		Range:      ast.RangeBetween(letTok, body),
		Name:       name.Text,
		NameRange:  name.Range,
		Annotation: annotation,
		Bound:      bound,
		Body:       body,
		TVar:       r.arena.Fresh(),
	}, nil
}

// tryParseAnnotation parses ": T" after a binder, if present.
func (r *tokenReader) tryParseAnnotation() (*ast.TypeAnnotation, error) {
	tok, ok := r.peek()
	if !ok || tok.Kind != lexer.Colon {
		return nil, nil
	}
	r.forward()
	typ, err := r.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	return &ast.TypeAnnotation{
		Range: ast.RangeBetween(tok, typ),
		Type:  typ,
	}, nil
}

// parseTypeExpr parses annotation syntax. Arrows associate to the right.
func (r *tokenReader) parseTypeExpr() (ast.TypeExpr, error) {
	arg, err := r.parseTypePrimary()
	if err != nil {
		return nil, err
	}
	tok, ok := r.peek()
	if !ok || tok.Kind != lexer.Arrow {
		return arg, nil
	}
	r.forward()
	ret, err := r.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ArrowType{
		Range: ast.RangeBetween(arg, ret),
		Arg:   arg,
		Ret:   ret,
	}, nil
}

func (r *tokenReader) parseTypePrimary() (ast.TypeExpr, error) {
	tok, ok := r.peek()
	if ok && tok.Kind == lexer.LParen {
		r.forward()
		typ, err := r.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		if _, err := r.eat(lexer.RParen); err != nil {
			return nil, err
		}
		return typ, nil
	}
	name, err := r.eat(lexer.TypeName)
	if err != nil {
		return nil, err
	}
	return &ast.TypeName{Range: name.Range, Name: name.Text}, nil
}
