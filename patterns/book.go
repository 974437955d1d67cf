package patterns

import (
	"fmt"

	"github.com/agrzeslak/bohelper/config"
	"github.com/agrzeslak/bohelper/hexstr"
)

// Match is the result of applying one pattern to a haystack.
type Match struct {
	Name    string
	Hex     string // the pattern's hex text as declared in the configuration
	Offsets []int
}

type compiled struct {
	name   string
	hex    string
	needle hexstr.Sequence
}

// Book holds the named hex patterns declared in the configuration, compiled
// once at load time.
type Book struct {
	patterns []compiled
}

// NewBook compiles configuration patterns. A pattern without an explicit
// endianness is declared in fallback order. Invalid pattern hex fails fast.
func NewBook(configPatterns []config.Pattern, fallback hexstr.Endianness) (*Book, error) {
	b := &Book{}
	for i, p := range configPatterns {
		declared := fallback
		if p.Endianness != "" {
			e, err := hexstr.ParseEndianness(p.Endianness)
			if err != nil {
				return nil, fmt.Errorf("pattern[%d] %q: %w", i, p.Name, err)
			}
			declared = e
		}

		needle, err := hexstr.ParseHex(p.Hex, declared, declared)
		if err != nil {
			return nil, fmt.Errorf("pattern[%d] %q: %w", i, p.Name, err)
		}

		b.patterns = append(b.patterns, compiled{name: p.Name, hex: p.Hex, needle: needle})
	}
	return b, nil
}

// Scan applies every pattern to the haystack, in declaration order. Patterns
// without a hit are reported with an empty offset list.
func (b *Book) Scan(haystack hexstr.Sequence) []Match {
	matches := make([]Match, 0, len(b.patterns))
	for _, p := range b.patterns {
		matches = append(matches, Match{Name: p.name, Hex: p.hex, Offsets: haystack.Offsets(p.needle)})
	}
	return matches
}

// Len returns the number of loaded patterns.
func (b *Book) Len() int {
	return len(b.patterns)
}

// Status renders the loaded patterns for the status command.
func (b *Book) Status() string {
	if len(b.patterns) == 0 {
		return ""
	}
	s := "\n  Patterns:"
	for i, p := range b.patterns {
		s += fmt.Sprintf("\n  - P%d: %s => %s", i+1, p.name, p.needle)
	}
	return s
}
