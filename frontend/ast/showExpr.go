package ast

import (
	"fmt"
	"strings"

	"github.com/lam-lang/lam/frontend/types"
)

// ExprString renders the expression as an indented tree, each node suffixed
// with its type as currently resolved in arena. Before inference every node
// shows its own fresh variable.
func ExprString(expr Expr, arena *types.Arena) string {
	ctx := newShowContext(arena)
	ctx.showExprWalker(expr)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
	arena     *types.Arena
	indent    int
	indentStr string
}

func newShowContext(arena *types.Arena) *showContext {
	return &showContext{
		Builder:   &strings.Builder{},
		arena:     arena,
		indentStr: "  ",
		indent:    0,
	}
}

func (ctx *showContext) line(s string) {
	ctx.WriteString(strings.Repeat(ctx.indentStr, ctx.indent))
	ctx.WriteString(s)
	ctx.WriteString("\n")
}

func (ctx *showContext) typeOf(expr Expr) string {
	return ctx.arena.TypeString(expr.TypeVar())
}

func (ctx *showContext) showExprWalker(expr Expr) {
	if expr == nil {
		ctx.line("nil")
		return
	}
	switch expr := expr.(type) {
	case *Literal:
		ctx.line(fmt.Sprintf("literal[%s] %s", expr.Value, ctx.typeOf(expr)))
	case *Identifier:
		ctx.line(fmt.Sprintf("ident[%s] %s", expr.Name, ctx.typeOf(expr)))
	case *Application:
		ctx.line("app " + ctx.typeOf(expr))
		ctx.indent++
		ctx.showExprWalker(expr.Function)
		ctx.showExprWalker(expr.Argument)
		ctx.indent--
	case *Lambda:
		ctx.line(fmt.Sprintf("λ [%s%s] . %s", expr.Param, annotationSuffix(expr.Annotation), ctx.typeOf(expr)))
		ctx.indent++
		ctx.showExprWalker(expr.Body)
		ctx.indent--
	case *LetIn:
		ctx.line(fmt.Sprintf("let [%s%s] %s =", expr.Name, annotationSuffix(expr.Annotation), ctx.typeOf(expr)))
		ctx.indent++
		ctx.showExprWalker(expr.Bound)
		ctx.indent--
		ctx.line("in")
		ctx.indent++
		ctx.showExprWalker(expr.Body)
		ctx.indent--
	default:
		ctx.line(expr.ExprName())
	}
}

func annotationSuffix(ann *TypeAnnotation) string {
	if ann == nil {
		return ""
	}
	return ":" + TypeExprString(ann.Type)
}
