package message

// Note carries progress detail about what a command is doing. Notes are only
// presented when verbose output is enabled.
type Note struct {
	Value string
}

func NewNote(value string) Note {
	return Note{Value: value}
}

func (m Note) String() string {
	return m.Value
}

func (m Note) Type() Type {
	return TypeNote
}
