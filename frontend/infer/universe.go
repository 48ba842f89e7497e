package infer

import (
	"github.com/benbjohnson/immutable"
	"github.com/lam-lang/lam/frontend/types"
)

// A Scheme instantiates a predeclared type into a run's arena. Builtins are
// stored as constructors rather than types so that no type value is ever
// shared between arenas of independent runs.
type Scheme func(a *types.Arena) types.Type

// universe holds the identifiers every program can refer to without binding
// them. It is persistent and shared by all runs.
var universe = buildUniverse()

func buildUniverse() *immutable.Map[string, Scheme] {
	m := immutable.NewMap[string, Scheme](nil)

	m = m.Set("succ", func(a *types.Arena) types.Type {
		return a.NewFunc(types.Number, types.Number)
	})
	m = m.Set("pred", func(a *types.Arena) types.Type {
		return a.NewFunc(types.Number, types.Number)
	})
	m = m.Set("add", func(a *types.Arena) types.Type {
		return a.NewFunc(types.Number, a.NewFunc(types.Number, types.Number))
	})
	m = m.Set("mul", func(a *types.Arena) types.Type {
		return a.NewFunc(types.Number, a.NewFunc(types.Number, types.Number))
	})
	m = m.Set("iszero", func(a *types.Arena) types.Type {
		return a.NewFunc(types.Number, types.Bool)
	})
	m = m.Set("not", func(a *types.Arena) types.Type {
		return a.NewFunc(types.Bool, types.Bool)
	})
	m = m.Set("and", func(a *types.Arena) types.Type {
		return a.NewFunc(types.Bool, a.NewFunc(types.Bool, types.Bool))
	})

	return m
}

// LookupUniverse instantiates the builtin with the given name into arena.
func LookupUniverse(name string, arena *types.Arena) (types.Type, bool) {
	scheme, ok := universe.Get(name)
	if !ok {
		return nil, false
	}
	return scheme(arena), true
}
