package types

import (
	"sort"

	"github.com/xtgo/set"
)

// TypeString renders t after resolution: ground names verbatim, unbound
// variables as 't<N>, function arrows right-associative. An arrow is
// parenthesised only when it sits in the argument position of an enclosing
// arrow, so (A -> B) -> A -> B round-trips.
func (a *Arena) TypeString(t Type) string {
	return a.typeString(t, false)
}

func (a *Arena) typeString(t Type, argPosition bool) string {
	switch t := a.Resolve(t).(type) {
	case Ground:
		return t.Name
	case Var:
		return "'" + a.names[t.id]
	case *Func:
		s := a.typeString(t.Arg, true) + " -> " + a.typeString(t.Ret, false)
		if argPosition {
			return "(" + s + ")"
		}
		return s
	}
	return "<unknown>"
}

// VarName returns the synthetic display name of a variable, without the
// leading quote.
func (a *Arena) VarName(v Var) string {
	return a.names[v.id]
}

// FreeVars returns the unbound variables reachable from t, deduplicated and
// sorted by slot id.
func (a *Arena) FreeVars(t Type) []Var {
	var ids sort.IntSlice
	a.collectFree(t, &ids)
	sort.Sort(ids)
	ids = ids[:set.Uniq(ids)]
	vars := make([]Var, 0, len(ids))
	for _, id := range ids {
		vars = append(vars, Var{id: id})
	}
	return vars
}

func (a *Arena) collectFree(t Type, ids *sort.IntSlice) {
	switch t := a.Resolve(t).(type) {
	case Var:
		*ids = append(*ids, t.id)
	case *Func:
		a.collectFree(t.Arg, ids)
		a.collectFree(t.Ret, ids)
	}
}
