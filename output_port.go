package bohelper

import "github.com/agrzeslak/bohelper/message"

type OutputPort interface {
	InfoX(m message.Message)
	Info(msg string)

	// Println logs the output even when it's muted
	Println(msg string)

	Separator()
	Mute()
	Unmute()
	Toggle()
}
