package message

// Result is the outcome of a command. Results are always presented to the
// user, even when progress notes are hidden.
type Result struct {
	Value string
}

func NewResult(value string) Result {
	return Result{Value: value}
}

func (m Result) String() string {
	return m.Value
}

func (m Result) Type() Type {
	return TypeResult
}
