package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/agrzeslak/bohelper/hexstr"
	"github.com/agrzeslak/bohelper/patterns"
)

// KeyboardAdapter drives an interactive session from terminal input.
type KeyboardAdapter struct {
	session    sessionPort
	output     outputPort
	endianness hexstr.Endianness // default byte order for command input
}

func NewKeyboardAdapter(session sessionPort, output outputPort, endianness hexstr.Endianness) *KeyboardAdapter {
	return &KeyboardAdapter{session: session, output: output, endianness: endianness}
}

// Start runs the command loop until the user quits or input ends.
func (a *KeyboardAdapter) Start() error {
	rl, err := readline.New("bohelper> ")
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("Enter 'h' followed by <enter> for help...")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if quit := a.dispatch(strings.Fields(line)); quit {
			return nil
		}
	}
}

func (a *KeyboardAdapter) dispatch(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "quit", "exit", "q":
		fmt.Println("Terminating session...")
		return true
	case "status", "s":
		fmt.Println(a.session.Status())
	case "help", "h":
		printHelp()
	case "find", "f":
		a.find(fields[1:])
	case "conv", "c":
		a.convert(fields[1:])
	case "enc", "e":
		a.encode(fields[1:])
	case "int", "i":
		a.integer(fields[1:])
	case "scan":
		a.scan(fields[1:])
	case "history":
		a.recent(fields[1:])
	case "mute":
		a.output.Mute()
	case "unmute":
		a.output.Unmute()
	case "verbose", "v":
		a.output.Toggle()
	default:
		fmt.Printf("Unknown command: %s (use 'h' for help)\n", fields[0])
	}
	return false
}

func (a *KeyboardAdapter) find(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: find <haystack-hex> <needle-hex> [needle-endianness]")
		return
	}
	needleEndianness := a.endianness
	if len(args) > 2 {
		e, err := hexstr.ParseEndianness(args[2])
		if err != nil {
			fmt.Println(err)
			return
		}
		needleEndianness = e
	}
	a.output.Separator()
	if _, err := a.session.Find(args[0], args[1], needleEndianness); err != nil {
		fmt.Println(err)
	}
}

func (a *KeyboardAdapter) convert(args []string) {
	if len(args) != 3 {
		fmt.Println("usage: conv <hex> <from-endianness> <to-endianness>")
		return
	}
	from, to, err := parseEndiannessPair(args[1], args[2])
	if err != nil {
		fmt.Println(err)
		return
	}
	a.output.Separator()
	if _, err := a.session.Convert(args[0], from, to); err != nil {
		fmt.Println(err)
	}
}

func (a *KeyboardAdapter) encode(args []string) {
	if len(args) < 3 {
		fmt.Println("usage: enc <text> <from-endianness> <to-endianness>")
		return
	}
	from, to, err := parseEndiannessPair(args[len(args)-2], args[len(args)-1])
	if err != nil {
		fmt.Println(err)
		return
	}
	// Everything before the endianness pair is the text, spaces included.
	text := strings.Join(args[:len(args)-2], " ")
	a.output.Separator()
	a.session.Encode(text, from, to)
}

func (a *KeyboardAdapter) integer(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: int <hex> [endianness]")
		return
	}
	e := a.endianness
	if len(args) > 1 {
		parsed, err := hexstr.ParseEndianness(args[1])
		if err != nil {
			fmt.Println(err)
			return
		}
		e = parsed
	}
	a.output.Separator()
	if _, _, err := a.session.Integer(args[0], e); err != nil {
		fmt.Println(err)
	}
}

func (a *KeyboardAdapter) scan(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: scan <haystack-hex>")
		return
	}
	a.output.Separator()
	if _, err := a.session.Scan(args[0]); err != nil {
		fmt.Println(err)
	}
}

func (a *KeyboardAdapter) recent(args []string) {
	limit := 10
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			fmt.Println("usage: history [limit]")
			return
		}
		limit = parsed
	}
	a.output.Separator()
	if err := a.session.Recent(limit); err != nil {
		fmt.Println(err)
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  find/f <haystack> <needle> [endianness] - Find needle offsets in haystack (hex text)")
	fmt.Println("  conv/c <hex> <from> <to>                - Convert hex text between byte orders")
	fmt.Println("  enc/e <text> <from> <to>                - Encode text as hex")
	fmt.Println("  int/i <hex> [endianness]                - Render hex text as an unsigned integer")
	fmt.Println("  scan <haystack>                         - Apply all configured patterns")
	fmt.Println("  history [limit]                         - Show recent searches")
	fmt.Println("  status/s                                - Show session status")
	fmt.Println("  mute/unmute, verbose/v                  - Control output")
	fmt.Println("  quit/exit/q                             - Quit")
}

func parseEndiannessPair(from, to string) (hexstr.Endianness, hexstr.Endianness, error) {
	f, err := hexstr.ParseEndianness(from)
	if err != nil {
		return 0, 0, err
	}
	t, err := hexstr.ParseEndianness(to)
	if err != nil {
		return 0, 0, err
	}
	return f, t, nil
}

type sessionPort interface {
	Find(haystackHex, needleHex string, needleEndianness hexstr.Endianness) ([]int, error)
	Convert(hexText string, from, to hexstr.Endianness) (string, error)
	Encode(text string, from, to hexstr.Endianness) string
	Integer(hexText string, e hexstr.Endianness) (uint64, bool, error)
	Scan(haystackHex string) ([]patterns.Match, error)
	Recent(limit int) error
	Status() string
}

type outputPort interface {
	Separator()
	Mute()
	Unmute()
	Toggle()
}
