// Package lam ties the frontend phases together: one Program is one source
// expression, carried from raw text through lexing, parsing and type
// inference.
package lam

import (
	goerrors "errors"

	"github.com/pkg/errors"

	"github.com/lam-lang/lam/frontend/ast"
	"github.com/lam-lang/lam/frontend/infer"
	"github.com/lam-lang/lam/frontend/lamerr"
	"github.com/lam-lang/lam/frontend/lexer"
	"github.com/lam-lang/lam/frontend/parser"
	"github.com/lam-lang/lam/frontend/types"
	"github.com/lam-lang/lam/internal/log"
)

var programLogger = log.DefaultLogger.With("section", "repl")

// Program is a single expression being checked. The arena it owns is the
// run-scoped allocator shared by the parser (which assigns every node its
// type variable) and the inferrer (which binds them); nothing in a Program
// aliases state of any other Program.
type Program struct {
	source  *lexer.Source
	tokens  []lexer.Token
	syntax  ast.Expr
	arena   *types.Arena
	typ     types.Type
	notices *lamerr.Errors
}

// Load lexes and parses src into a Program ready for inference. A lex or
// parse failure is returned as a positioned lamerr error.
func Load(src string) (*Program, error) {
	p := &Program{
		source: lexer.NewSource(src),
		arena:  types.NewArena(),
	}
	tokens, err := lexer.Lex(p.source)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	expr, err := parser.Parse(tokens, p.arena)
	if err != nil {
		return nil, err
	}
	p.syntax = expr
	return p, nil
}

// Infer runs type inference over the whole tree. On failure no partial type
// is kept: Type stays nil and the same Program can be reported and dropped.
func (p *Program) Infer() error {
	if p.syntax == nil {
		return errors.New("program has no syntax to infer")
	}
	inferrer := infer.New(p.arena)
	typ, err := inferrer.Infer(p.syntax, nil)
	if err != nil {
		return err
	}
	p.typ = typ
	for _, free := range inferrer.FreeIdents() {
		p.notices = p.notices.With(lamerr.New(lamerr.NewUndefinedVariable{
			Positioner: free.Range,
			Name:       free.Name,
		}))
	}
	programLogger.Debug("inferred program", "type", p.arena.TypeString(typ))
	return nil
}

// Source returns the source buffer the Program was loaded from.
func (p *Program) Source() *lexer.Source { return p.source }

// Tokens returns the token stream produced by the lexer.
func (p *Program) Tokens() []lexer.Token { return p.tokens }

// Syntax returns the root of the expression tree.
func (p *Program) Syntax() ast.Expr { return p.syntax }

// Type returns the inferred type of the root expression, or nil before a
// successful Infer.
func (p *Program) Type() types.Type { return p.typ }

// TypeString renders the inferred type of the root expression.
func (p *Program) TypeString() string {
	if p.typ == nil {
		return "<not inferred>"
	}
	return p.arena.TypeString(p.typ)
}

// SyntaxString renders the expression tree with the types inferred so far.
func (p *Program) SyntaxString() string {
	return ast.ExprString(p.syntax, p.arena)
}

// UnresolvedVars returns the display names of type variables left unbound in
// the root type after inference.
func (p *Program) UnresolvedVars() []string {
	if p.typ == nil {
		return nil
	}
	vars := p.arena.FreeVars(p.typ)
	names := make([]string, 0, len(vars))
	for _, v := range vars {
		names = append(names, p.arena.VarName(v))
	}
	return names
}

// Notices returns non-fatal findings from inference, such as undefined
// variables that were tolerated as unconstrained.
func (p *Program) Notices() []lamerr.LamError {
	return p.notices.Errors()
}

// FormatError renders err for the user, attaching the offending source line
// and a caret when err carries a position.
func (p *Program) FormatError(err error) string {
	var lamError lamerr.LamError
	if goerrors.As(err, &lamError) {
		return lamerr.FormatWithSource(lamError, p.source)
	}
	return err.Error()
}
