package types

import "strconv"

// Arena owns every type variable and function type allocated during a single
// parse-and-infer run. Each Var and *Func addresses one slot; a slot holds the
// type its owner has been bound to, or nil while unbound.
//
// An Arena is not safe for concurrent use, and types allocated by one Arena
// must never be mixed into another: independent runs each get their own.
type Arena struct {
	bound []Type
	names []string
	vars  int
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) newSlot() int {
	a.bound = append(a.bound, nil)
	a.names = append(a.names, "")
	return len(a.bound) - 1
}

// Fresh allocates a new unbound type variable. Variables are numbered t1, t2,
// ... in allocation order, so numbering is deterministic within a run.
func (a *Arena) Fresh() Var {
	id := a.newSlot()
	a.vars++
	a.names[id] = "t" + strconv.Itoa(a.vars)
	return Var{id: id}
}

// NewFunc allocates a function type with its own binding slot.
func (a *Arena) NewFunc(arg, ret Type) *Func {
	return &Func{id: a.newSlot(), Arg: arg, Ret: ret}
}

func slotOf(t Type) (int, bool) {
	switch t := t.(type) {
	case Var:
		return t.id, true
	case *Func:
		return t.id, true
	default:
		return 0, false
	}
}

// Resolve follows t's binding chain to its current representative: an unbound
// variable, or the first type whose own slot is unbound. It never recurses
// into function components. Slots visited on the way are repointed at the
// representative, so chains stay short across repeated resolution.
func (a *Arena) Resolve(t Type) Type {
	var visited []int
	for {
		id, ok := slotOf(t)
		if !ok || a.bound[id] == nil {
			break
		}
		visited = append(visited, id)
		t = a.bound[id]
	}
	for _, id := range visited {
		a.bound[id] = t
	}
	return t
}

// Bind points t's slot at target. Binding an already bound slot delegates to
// its representative: a target equal under Resolve is a no-op, anything else
// means the caller tried to rebind a settled type and is reported as a
// mismatch. Binding a variable to a type containing itself is rejected, which
// keeps every binding chain acyclic.
func (a *Arena) Bind(t, target Type) error {
	rep := a.Resolve(t)
	tgt := a.Resolve(target)
	if a.Equal(rep, tgt) {
		return nil
	}
	id, ok := slotOf(rep)
	if !ok {
		return MismatchError{First: a.TypeString(rep), Second: a.TypeString(tgt)}
	}
	if v, isVar := rep.(Var); isVar {
		if a.OccursIn(v, tgt) {
			return RecursiveError{Variable: a.TypeString(v), In: a.TypeString(tgt)}
		}
	}
	a.bound[id] = tgt
	return nil
}
