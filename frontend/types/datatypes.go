package types

// Type is one term of the closed type algebra.
// The possible terms are Ground, Var, and *Func.
type Type interface {
	typeNode()
}

// Ground is an atomic, non-parametric type such as Number or Bool.
type Ground struct {
	Name string
}

func (Ground) typeNode() {}

// Var is a placeholder for an as-yet-unknown type. It is a handle into the
// slot of the Arena that allocated it; whether it stands for something more
// concrete is a question only its Arena can answer.
type Var struct {
	id int
}

func (Var) typeNode() {}

// Id returns the slot index of the variable within its Arena.
func (v Var) Id() int { return v.id }

// Func is the type of a single-argument function. Like Var it owns a slot in
// its Arena, so it too can be pointed at another type during unification.
type Func struct {
	id  int
	Arg Type
	Ret Type
}

func (*Func) typeNode() {}

// Predeclared ground types. The literal table and the universe of builtin
// identifiers are made of these.
var (
	Number = Ground{Name: "Number"}
	Bool   = Ground{Name: "Bool"}
)
