package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/agrzeslak/bohelper/message"
)

// OutputAdapter writes session output to a terminal. Results are always
// shown; notes only when verbose output is enabled. Consecutive duplicate
// notes are suppressed.
type OutputAdapter struct {
	lastLine string
	muted    bool
	verbose  bool
	writer   io.Writer
}

func NewOutputAdapter() *OutputAdapter {
	return &OutputAdapter{
		writer: os.Stdout, // Default to stdout
	}
}

func (p *OutputAdapter) SetWriter(w io.Writer) {
	p.writer = w
}

func (p *OutputAdapter) InfoX(m message.Message) {
	if m.Type() == message.TypeResult {
		p.print(m.String(), true)
		return
	}
	if p.verbose {
		ts := time.Now().Format(time.DateTime)
		p.print(fmt.Sprintf("%s %s", ts, m.String()), false)
	}
}

func (p *OutputAdapter) Toggle() {
	p.verbose = !p.verbose
	if p.verbose {
		p.Println("verbose notes enabled")
	} else {
		p.Println("verbose notes disabled")
	}
}

func (p *OutputAdapter) Info(msg string) {
	ts := time.Now().Format(time.DateTime)
	p.print(fmt.Sprintf("%s %s", ts, msg), false)
}

func (p *OutputAdapter) Separator() {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	p.print(strings.Repeat("─", width), false)
}

func (p *OutputAdapter) Println(msg string) {
	p.print(msg, true)
}

func (p *OutputAdapter) Mute() {
	p.muted = true
}

func (p *OutputAdapter) Unmute() {
	p.muted = false
}

func (p *OutputAdapter) print(s string, force bool) {
	if !force && p.muted {
		return
	}

	if !force && p.lastLine == s {
		return
	}
	fmt.Fprintln(p.writer, s)
	p.lastLine = s
}
