package bohelper

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/agrzeslak/bohelper/hexstr"
	"github.com/agrzeslak/bohelper/message"
	"github.com/agrzeslak/bohelper/patterns"
)

// Session executes byte-order operations against a shared default
// endianness. Results are reported through the output port and searches are
// recorded through the history port when one is attached.
type Session struct {
	endianness hexstr.Endianness
	book       *patterns.Book
	outputPort OutputPort
	history    HistoryPort // nil when history is disabled
}

// NewSession creates a new session.
func NewSession(endianness hexstr.Endianness, book *patterns.Book, outputPort OutputPort, history HistoryPort) *Session {
	return &Session{endianness: endianness, book: book, outputPort: outputPort, history: history}
}

// Find reports every offset of needle inside haystack, both given as hex
// text. The haystack is declared in the session's default order, the needle
// in needleEndianness; the needle is re-tagged to match before comparison.
func (s *Session) Find(haystackHex, needleHex string, needleEndianness hexstr.Endianness) ([]int, error) {
	haystack, err := hexstr.ParseHex(haystackHex, s.endianness, s.endianness)
	if err != nil {
		return nil, fmt.Errorf("haystack: %w", err)
	}
	needle, err := hexstr.ParseHex(needleHex, needleEndianness, needleEndianness)
	if err != nil {
		return nil, fmt.Errorf("needle: %w", err)
	}

	s.outputPort.InfoX(message.NewNote(fmt.Sprintf("find needle=%s haystack=%s", needle, haystack)))
	offsets := haystack.Offsets(needle)
	s.outputPort.InfoX(message.NewResult(FormatOffsets(offsets)))
	s.record(haystackHex, needleHex, offsets)
	return offsets, nil
}

// Convert re-expresses hex text declared in from-order as hex text in
// to-order.
func (s *Session) Convert(hexText string, from, to hexstr.Endianness) (string, error) {
	seq, err := hexstr.ParseHex(hexText, from, from)
	if err != nil {
		return "", err
	}
	out := seq.HexString(to)
	s.outputPort.InfoX(message.NewResult(out))
	return out, nil
}

// Encode turns arbitrary text into hex text, converting from-order to
// to-order. Cannot fail.
func (s *Session) Encode(text string, from, to hexstr.Endianness) string {
	out := hexstr.EncodeText(text, from, to).HexString(to)
	s.outputPort.InfoX(message.NewResult(out))
	return out
}

// Integer renders hex text as an unsigned integer. The boolean is false when
// the value exceeds 64 bits, which is a normal outcome rather than an error.
func (s *Session) Integer(hexText string, e hexstr.Endianness) (uint64, bool, error) {
	seq, err := hexstr.ParseHex(hexText, e, e)
	if err != nil {
		return 0, false, err
	}

	v, ok := seq.Uint64()
	if ok {
		s.outputPort.InfoX(message.NewResult(strconv.FormatUint(v, 10)))
	} else {
		s.outputPort.InfoX(message.NewResult("value does not fit into 64 bits"))
	}
	return v, ok, nil
}

// Scan applies every configured pattern to the haystack. Hits are recorded
// in the history.
func (s *Session) Scan(haystackHex string) ([]patterns.Match, error) {
	haystack, err := hexstr.ParseHex(haystackHex, s.endianness, s.endianness)
	if err != nil {
		return nil, fmt.Errorf("haystack: %w", err)
	}

	matches := s.book.Scan(haystack)
	if len(matches) == 0 {
		s.outputPort.Println("no patterns configured")
		return matches, nil
	}
	for _, m := range matches {
		if len(m.Offsets) == 0 {
			s.outputPort.InfoX(message.NewNote(fmt.Sprintf("%s: no matches", m.Name)))
			continue
		}
		s.outputPort.InfoX(message.NewResult(fmt.Sprintf("%s: %s", m.Name, FormatOffsets(m.Offsets))))
		s.record(haystackHex, m.Hex, m.Offsets)
	}
	return matches, nil
}

// Recent prints the latest recorded searches, newest first.
func (s *Session) Recent(limit int) error {
	if s.history == nil {
		s.outputPort.Println("history is disabled")
		return nil
	}

	searches, err := s.history.Recent(limit)
	if err != nil {
		return err
	}
	if len(searches) == 0 {
		s.outputPort.InfoX(message.NewResult("no searches recorded"))
		return nil
	}
	for _, rec := range searches {
		s.outputPort.InfoX(message.NewResult(fmt.Sprintf("%s needle=%s haystack=%s %s",
			rec.When.Format(time.DateTime), rec.Needle, rec.Haystack, FormatOffsets(rec.Offsets))))
	}
	return nil
}

func (s *Session) Status() string {
	status := fmt.Sprintf("Default endianness: %s", s.endianness)
	status += fmt.Sprintf("\n  Patterns loaded: %d", s.book.Len())
	status += s.book.Status()
	if s.history == nil {
		status += "\n  History: disabled"
	} else {
		status += "\n  History: enabled"
	}
	return status
}

func (s *Session) record(haystack, needle string, offsets []int) {
	if s.history == nil {
		return
	}
	search := Search{When: time.Now(), Haystack: haystack, Needle: needle, Offsets: offsets}
	if err := s.history.Record(search); err != nil {
		slog.Error("failed to record search", "error", err)
	}
}

// FormatOffsets renders an offset list for presentation.
func FormatOffsets(offsets []int) string {
	if len(offsets) == 0 {
		return "no matches"
	}
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = strconv.Itoa(o)
	}
	return "offsets: " + strings.Join(parts, ", ")
}
