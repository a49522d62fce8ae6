package mediator

// Unit is the zero-information response type for commands. It lets requests
// with no meaningful result flow through the same result-typed pipeline
// machinery as queries. All Unit values are equal.
type Unit struct{}

// String implements fmt.Stringer.
func (Unit) String() string { return "()" }
