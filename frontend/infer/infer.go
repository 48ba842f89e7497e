package infer

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/lam-lang/lam/frontend/ast"
	"github.com/lam-lang/lam/frontend/lamerr"
	"github.com/lam-lang/lam/frontend/types"
	"github.com/lam-lang/lam/internal/log"
)

// FreeIdent records an identifier that was found neither in the environment
// nor in the universe. Free identifiers are tolerated (their occurrence keeps
// an unconstrained type variable) but callers may want to report them.
type FreeIdent struct {
	Name string
	ast.Range
}

// Inferrer drives type inference for one expression tree. It owns the run's
// arena: the same arena the parser allocated the tree's variables from.
//
// Inference is a single forward pass. Any unification failure aborts the
// whole pass; no partial type is returned. An Inferrer must not be shared
// between trees of different runs.
type Inferrer struct {
	arena  *types.Arena
	free   []FreeIdent
	logger *slog.Logger
}

func New(arena *types.Arena) *Inferrer {
	return &Inferrer{
		arena:  arena,
		logger: log.DefaultLogger.With("section", "infer"),
	}
}

// FreeIdents returns the free identifiers seen by the last Infer call, in
// occurrence order.
func (inf *Inferrer) FreeIdents() []FreeIdent {
	return inf.free
}

// Infer computes the type of expr under env, binding the type variable of
// every node it visits as a side effect. Passing a nil env starts from the
// empty environment (builtins stay visible through the universe).
func (inf *Inferrer) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	inf.free = inf.free[:0]
	return inf.infer(expr, env)
}

func (inf *Inferrer) infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	switch expr := expr.(type) {
	case *ast.Literal:
		return inf.inferLiteral(expr)
	case *ast.Identifier:
		return inf.inferIdentifier(expr, env)
	case *ast.Application:
		return inf.inferApplication(expr, env)
	case *ast.Lambda:
		return inf.inferLambda(expr, env)
	case *ast.LetIn:
		return inf.inferLetIn(expr, env)
	default:
		return nil, lamerr.New(lamerr.NewUnsupportedConstruct{
			Positioner: ast.RangeOf(expr),
			Construct:  expr.ExprName(),
		})
	}
}

func (inf *Inferrer) inferLiteral(lit *ast.Literal) (types.Type, error) {
	ground := groundForLiteral(lit.Kind)
	unified, err := inf.arena.Unify(ground, lit.TVar)
	if err != nil {
		return nil, inf.typeError(err, lit)
	}
	if err := inf.arena.Bind(lit.TVar, unified); err != nil {
		return nil, inf.typeError(err, lit)
	}
	inf.logger.Debug("inferred literal", "value", lit.Value, "type", inf.arena.TypeString(unified))
	return unified, nil
}

func (inf *Inferrer) inferIdentifier(ident *ast.Identifier, env *TypeEnv) (types.Type, error) {
	found, ok := env.Lookup(ident.Name)
	if !ok {
		found, ok = LookupUniverse(ident.Name, inf.arena)
	}
	if !ok {
		// tolerated: a free identifier keeps its unconstrained variable
		inf.free = append(inf.free, FreeIdent{Name: ident.Name, Range: ast.RangeOf(ident)})
		inf.logger.Debug("free identifier", "name", ident.Name)
		return ident.TVar, nil
	}
	unified, err := inf.arena.Unify(found, ident.TVar)
	if err != nil {
		return nil, inf.typeError(err, ident)
	}
	if err := inf.arena.Bind(ident.TVar, unified); err != nil {
		return nil, inf.typeError(err, ident)
	}
	inf.logger.Debug("inferred identifier", "name", ident.Name, "type", inf.arena.TypeString(unified))
	return unified, nil
}

func (inf *Inferrer) inferApplication(app *ast.Application, env *TypeEnv) (types.Type, error) {
	functionType, err := inf.infer(app.Function, env)
	if err != nil {
		return nil, err
	}
	argumentType, err := inf.infer(app.Argument, env)
	if err != nil {
		return nil, err
	}
	resultType, err := inf.applyType(functionType, argumentType, app)
	if err != nil {
		return nil, err
	}
	unified, err := inf.arena.Unify(resultType, app.TVar)
	if err != nil {
		return nil, inf.typeError(err, app)
	}
	if err := inf.arena.Bind(app.TVar, unified); err != nil {
		return nil, inf.typeError(err, app)
	}
	inf.logger.Debug("inferred application", "type", inf.arena.TypeString(unified))
	return unified, nil
}

// applyType computes the type of applying a function of type functionType to
// an argument of type argumentType.
func (inf *Inferrer) applyType(functionType, argumentType types.Type, at ast.Positioner) (types.Type, error) {
	switch f := inf.arena.Resolve(functionType).(type) {
	case *types.Func:
		if _, err := inf.arena.Unify(f.Arg, argumentType); err != nil {
			return nil, inf.typeError(err, at)
		}
		// the parameter is now settled: specialise the result with it
		return inf.arena.Substitute(f.Arg, inf.arena.Resolve(f.Arg), f.Ret), nil

	case types.Var:
		// the function is still unknown: force it into function shape
		// and retry
		shape := inf.arena.NewFunc(argumentType, inf.arena.Fresh())
		unified, err := inf.arena.Unify(shape, f)
		if err != nil {
			return nil, inf.typeError(err, at)
		}
		return inf.applyType(unified, argumentType, at)

	default:
		return nil, lamerr.New(lamerr.NewNotAFunction{
			Positioner: ast.RangeOf(at),
			Type:       inf.arena.TypeString(f),
		})
	}
}

func (inf *Inferrer) inferLambda(lambda *ast.Lambda, env *TypeEnv) (types.Type, error) {
	paramVar := inf.arena.Fresh()
	if lambda.Annotation != nil {
		annotated, err := inf.annotationType(lambda.Annotation.Type)
		if err != nil {
			return nil, err
		}
		if _, err := inf.arena.Unify(paramVar, annotated); err != nil {
			return nil, inf.typeError(err, lambda.Annotation)
		}
	}

	bodyType, err := inf.infer(lambda.Body, env.Extend(lambda.Param, paramVar))
	if err != nil {
		return nil, err
	}
	functionType := inf.arena.NewFunc(paramVar, bodyType)
	unified, err := inf.arena.Unify(functionType, lambda.TVar)
	if err != nil {
		return nil, inf.typeError(err, lambda)
	}
	if err := inf.arena.Bind(lambda.TVar, unified); err != nil {
		return nil, inf.typeError(err, lambda)
	}
	inf.logger.Debug("inferred lambda", "param", lambda.Param, "type", inf.arena.TypeString(unified))
	return unified, nil
}

// inferLetIn types let monomorphically: the bound expression is inferred
// once, and its type (not a generalised scheme) is what the body sees. Using
// the name at two incompatible types in the body is a mismatch.
func (inf *Inferrer) inferLetIn(let *ast.LetIn, env *TypeEnv) (types.Type, error) {
	boundType, err := inf.infer(let.Bound, env)
	if err != nil {
		return nil, err
	}
	if let.Annotation != nil {
		annotated, err := inf.annotationType(let.Annotation.Type)
		if err != nil {
			return nil, err
		}
		if _, err := inf.arena.Unify(boundType, annotated); err != nil {
			return nil, inf.typeError(err, let.Annotation)
		}
	}

	bodyType, err := inf.infer(let.Body, env.Extend(let.Name, boundType))
	if err != nil {
		return nil, err
	}
	unified, err := inf.arena.Unify(bodyType, let.TVar)
	if err != nil {
		return nil, inf.typeError(err, let)
	}
	if err := inf.arena.Bind(let.TVar, unified); err != nil {
		return nil, inf.typeError(err, let)
	}
	inf.logger.Debug("inferred let", "name", let.Name, "type", inf.arena.TypeString(unified))
	return unified, nil
}

// annotationType converts annotation syntax into a type in the run's arena.
// Any capitalised name is accepted as a ground type; a name that matches no
// real type will simply fail to unify.
func (inf *Inferrer) annotationType(t ast.TypeExpr) (types.Type, error) {
	switch t := t.(type) {
	case *ast.TypeName:
		return types.Ground{Name: t.Name}, nil
	case *ast.ArrowType:
		arg, err := inf.annotationType(t.Arg)
		if err != nil {
			return nil, err
		}
		ret, err := inf.annotationType(t.Ret)
		if err != nil {
			return nil, err
		}
		return inf.arena.NewFunc(arg, ret), nil
	default:
		return nil, lamerr.New(lamerr.NewUnsupportedConstruct{
			Positioner: ast.RangeOf(t),
			Construct:  "type annotation",
		})
	}
}

// typeError attaches position information to a unification failure.
func (inf *Inferrer) typeError(err error, at ast.Positioner) error {
	var mismatch types.MismatchError
	if errors.As(err, &mismatch) {
		return lamerr.New(lamerr.NewTypeMismatch{
			Positioner: ast.RangeOf(at),
			First:      mismatch.First,
			Second:     mismatch.Second,
		})
	}
	var recursive types.RecursiveError
	if errors.As(err, &recursive) {
		return lamerr.New(lamerr.NewRecursiveType{
			Positioner: ast.RangeOf(at),
			Variable:   recursive.Variable,
			In:         recursive.In,
		})
	}
	return lamerr.New(lamerr.Unclassified{From: err, Positioner: ast.RangeOf(at)})
}
