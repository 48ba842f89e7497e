package infer

import (
	"github.com/lam-lang/lam/frontend/ast"
	"github.com/lam-lang/lam/frontend/types"
)

// groundForLiteral maps a literal kind to its ground type. A kind missing
// from the table is a bug in the parser, not a user-facing type error.
func groundForLiteral(kind ast.LiteralKind) types.Ground {
	switch kind {
	case ast.NumberLit:
		return types.Number
	case ast.BoolLit:
		return types.Bool
	}
	panic("no ground type for literal kind " + kind.String())
}
