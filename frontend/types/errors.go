package types

import "fmt"

// MismatchError reports two types that cannot be made equal.
type MismatchError struct {
	First  string
	Second string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("cannot unify type %s with %s", e.First, e.Second)
}

// RecursiveError reports an occurs-check rejection: binding the variable would
// have produced an infinite type.
type RecursiveError struct {
	Variable string
	In       string
}

func (e RecursiveError) Error() string {
	return fmt.Sprintf("cannot construct recursive type: %s occurs in %s", e.Variable, e.In)
}
