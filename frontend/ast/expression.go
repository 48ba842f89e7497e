package ast

import (
	"github.com/lam-lang/lam/frontend/types"
)

// Expr is implemented by every expression node.
//
// Each node owns exactly one type variable, allocated from the run's arena by
// the parser before inference starts. Inference is the only mutator of that
// variable, and binds it at most once per pass.
type Expr interface {
	Positioner
	exprNode()
	ExprName() string

	// TypeVar is the type variable the parser assigned to this node.
	TypeVar() types.Var
}

// LiteralKind tags a Literal with the kind its token carried.
type LiteralKind int

const (
	NumberLit LiteralKind = iota
	BoolLit
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLit:
		return "Number"
	case BoolLit:
		return "Bool"
	}
	return "Unknown"
}

// Literal represents a literal value (a number or a boolean).
type Literal struct {
	Range
	Value string
	Kind  LiteralKind
	TVar  types.Var
}

func (e *Literal) exprNode()          {}
func (e *Literal) ExprName() string   { return "literal" }
func (e *Literal) TypeVar() types.Var { return e.TVar }

// Identifier represents a variable occurrence.
type Identifier struct {
	Range
	Name string
	TVar types.Var
}

func (e *Identifier) exprNode()          {}
func (e *Identifier) ExprName() string   { return "ident" }
func (e *Identifier) TypeVar() types.Var { return e.TVar }

// Application represents applying Function to Argument by juxtaposition.
type Application struct {
	Range
	Function Expr
	Argument Expr
	TVar     types.Var
}

func (e *Application) exprNode()          {}
func (e *Application) ExprName() string   { return "app" }
func (e *Application) TypeVar() types.Var { return e.TVar }

// Lambda represents a single-parameter abstraction, \x. body, with an
// optional type annotation on the parameter.
type Lambda struct {
	Range
	Param      string
	ParamRange Range
	Annotation *TypeAnnotation
	Body       Expr
	TVar       types.Var
}

func (e *Lambda) exprNode()          {}
func (e *Lambda) ExprName() string   { return "lambda" }
func (e *Lambda) TypeVar() types.Var { return e.TVar }

// LetIn represents let Name = Bound in Body, with an optional type annotation
// on the bound name.
type LetIn struct {
	Range
	Name       string
	NameRange  Range
	Annotation *TypeAnnotation
	Bound      Expr
	Body       Expr
	TVar       types.Var
}

func (e *LetIn) exprNode()          {}
func (e *LetIn) ExprName() string   { return "let" }
func (e *LetIn) TypeVar() types.Var { return e.TVar }
