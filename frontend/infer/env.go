package infer

import "github.com/lam-lang/lam/frontend/types"

// TypeEnv is one frame of the lexical scope chain: a name, the type it is
// bound to, and the enclosing frame. A nil *TypeEnv is the empty environment.
// Frames are never mutated; extending returns a new innermost frame, so
// sibling scopes share their common tail.
type TypeEnv struct {
	name   string
	typ    types.Type
	parent *TypeEnv
}

// Extend returns a new environment with name bound to t in front of e.
func (e *TypeEnv) Extend(name string, t types.Type) *TypeEnv {
	return &TypeEnv{name: name, typ: t, parent: e}
}

// Lookup searches the chain innermost-first, so inner binders shadow outer
// ones.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if frame.name == name {
			return frame.typ, true
		}
	}
	return nil, false
}
