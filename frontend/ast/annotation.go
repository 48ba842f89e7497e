package ast

// TypeAnnotation is the ": T" syntax attached to a lambda or let binder.
type TypeAnnotation struct {
	Range
	Type TypeExpr
}

// TypeExpr is a type as written in the source: a ground type name, or an
// arrow between two type expressions.
type TypeExpr interface {
	Positioner
	typeExprNode()
}

// TypeName is a capitalised type name such as Number.
type TypeName struct {
	Range
	Name string
}

func (*TypeName) typeExprNode() {}

// ArrowType is the function type syntax, A -> B. Arrows written in the source
// associate to the right.
type ArrowType struct {
	Range
	Arg TypeExpr
	Ret TypeExpr
}

func (*ArrowType) typeExprNode() {}

// TypeExprString renders annotation syntax back to source form.
func TypeExprString(t TypeExpr) string {
	return typeExprString(t, false)
}

func typeExprString(t TypeExpr, argPosition bool) string {
	switch t := t.(type) {
	case *TypeName:
		return t.Name
	case *ArrowType:
		s := typeExprString(t.Arg, true) + " -> " + typeExprString(t.Ret, false)
		if argPosition {
			return "(" + s + ")"
		}
		return s
	}
	return "<unknown>"
}
