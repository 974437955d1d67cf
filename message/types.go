package message

type Type int

const (
	TypeNote Type = iota
	TypeResult
)

type Message interface {
	String() string
	Type() Type
}
