package types

// Equal reports structural equality of t1 and t2 after resolution. Variables
// compare by identity, ground types by name, functions component-wise.
func (a *Arena) Equal(t1, t2 Type) bool {
	t1, t2 = a.Resolve(t1), a.Resolve(t2)
	switch t1 := t1.(type) {
	case Ground:
		t2, ok := t2.(Ground)
		return ok && t1.Name == t2.Name
	case Var:
		t2, ok := t2.(Var)
		return ok && t1.id == t2.id
	case *Func:
		t2, ok := t2.(*Func)
		return ok && a.Equal(t1.Arg, t2.Arg) && a.Equal(t1.Ret, t2.Ret)
	}
	return false
}

// OccursIn reports whether v appears anywhere in the resolved structure of t.
func (a *Arena) OccursIn(v Var, t Type) bool {
	switch t := a.Resolve(t).(type) {
	case Var:
		return t.id == v.id
	case *Func:
		return a.OccursIn(v, t.Arg) || a.OccursIn(v, t.Ret)
	default:
		return false
	}
}

// Unify makes t1 and t2 the same type, binding variables as needed, and
// returns the unified type. A failed unification returns a MismatchError or a
// RecursiveError; variables bound by nested unifications before the failure
// stay bound, because a failure aborts the whole inference pass anyway.
func (a *Arena) Unify(t1, t2 Type) (Type, error) {
	r1, r2 := a.Resolve(t1), a.Resolve(t2)
	if a.Equal(r1, r2) {
		return r1, nil
	}
	if v, ok := r1.(Var); ok {
		if a.OccursIn(v, r2) {
			return nil, RecursiveError{Variable: a.TypeString(v), In: a.TypeString(r2)}
		}
		a.bound[v.id] = r2
		return r2, nil
	}
	if v, ok := r2.(Var); ok {
		if a.OccursIn(v, r1) {
			return nil, RecursiveError{Variable: a.TypeString(v), In: a.TypeString(r1)}
		}
		a.bound[v.id] = r1
		return r1, nil
	}
	f1, ok1 := r1.(*Func)
	f2, ok2 := r2.(*Func)
	if ok1 && ok2 {
		arg, err := a.Unify(f1.Arg, f2.Arg)
		if err != nil {
			return nil, err
		}
		ret, err := a.Unify(f1.Ret, f2.Ret)
		if err != nil {
			return nil, err
		}
		// neither operand is bound to the combined type: the recursive
		// calls above already linked whatever variables they contained
		return a.NewFunc(arg, ret), nil
	}
	return nil, MismatchError{First: a.TypeString(r1), Second: a.TypeString(r2)}
}

// Substitute rewrites every occurrence of from inside in to to, recursing
// through function components. All three types are considered up to Resolve.
// Used to specialise a function's result type once its parameter variable has
// been unified with a concrete argument type.
func (a *Arena) Substitute(from, to, in Type) Type {
	from, to, in = a.Resolve(from), a.Resolve(to), a.Resolve(in)
	if a.Equal(from, in) {
		return to
	}
	if f, ok := in.(*Func); ok {
		return a.NewFunc(
			a.Substitute(from, to, f.Arg),
			a.Substitute(from, to, f.Ret),
		)
	}
	return in
}
