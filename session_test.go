package bohelper

import (
	"strings"
	"testing"

	"github.com/agrzeslak/bohelper/config"
	"github.com/agrzeslak/bohelper/hexstr"
	"github.com/agrzeslak/bohelper/message"
	"github.com/agrzeslak/bohelper/patterns"
)

type recordingOutput struct {
	results []string
	notes   []string
	lines   []string
}

func (r *recordingOutput) InfoX(m message.Message) {
	if m.Type() == message.TypeResult {
		r.results = append(r.results, m.String())
		return
	}
	r.notes = append(r.notes, m.String())
}

func (r *recordingOutput) Info(msg string)    { r.lines = append(r.lines, msg) }
func (r *recordingOutput) Println(msg string) { r.lines = append(r.lines, msg) }
func (r *recordingOutput) Separator()         {}
func (r *recordingOutput) Mute()              {}
func (r *recordingOutput) Unmute()            {}
func (r *recordingOutput) Toggle()            {}

type recordingHistory struct {
	searches []Search
}

func (r *recordingHistory) Record(s Search) error {
	r.searches = append(r.searches, s)
	return nil
}

func (r *recordingHistory) Recent(limit int) ([]Search, error) {
	if limit > len(r.searches) {
		limit = len(r.searches)
	}
	out := make([]Search, limit)
	for i := 0; i < limit; i++ {
		out[i] = r.searches[len(r.searches)-1-i]
	}
	return out, nil
}

func newTestSession(t *testing.T, patternsCfg []config.Pattern) (*Session, *recordingOutput, *recordingHistory) {
	t.Helper()
	book, err := patterns.NewBook(patternsCfg, hexstr.Little)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	out := &recordingOutput{}
	hist := &recordingHistory{}
	return NewSession(hexstr.Little, book, out, hist), out, hist
}

func TestSession_Find(t *testing.T) {
	session, out, hist := newTestSession(t, nil)

	offsets, err := session.Find("00112233440011223344", "2233", hexstr.Little)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(offsets) != 2 || offsets[0] != 2 || offsets[1] != 7 {
		t.Errorf("offsets = %v, want [2 7]", offsets)
	}
	if len(out.results) != 1 || out.results[0] != "offsets: 2, 7" {
		t.Errorf("results = %v", out.results)
	}
	if len(hist.searches) != 1 {
		t.Fatalf("recorded %d searches, want 1", len(hist.searches))
	}
	if hist.searches[0].Needle != "2233" {
		t.Errorf("recorded needle = %q", hist.searches[0].Needle)
	}
}

func TestSession_Find_SwappedEndianNeedle(t *testing.T) {
	session, _, _ := newTestSession(t, nil)

	offsets, err := session.Find("0011223344", "3322", hexstr.Big)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(offsets) != 1 || offsets[0] != 2 {
		t.Errorf("offsets = %v, want [2]", offsets)
	}
}

func TestSession_Find_InvalidInput(t *testing.T) {
	session, _, hist := newTestSession(t, nil)

	if _, err := session.Find("zz", "2233", hexstr.Little); err == nil {
		t.Error("expected error for invalid haystack")
	}
	if _, err := session.Find("0011", "zz", hexstr.Little); err == nil {
		t.Error("expected error for invalid needle")
	}
	if len(hist.searches) != 0 {
		t.Errorf("failed searches must not be recorded, got %d", len(hist.searches))
	}
}

func TestSession_Convert(t *testing.T) {
	session, out, _ := newTestSession(t, nil)

	got, err := session.Convert("00112233", hexstr.Big, hexstr.Little)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "33221100" {
		t.Errorf("Convert = %q, want %q", got, "33221100")
	}
	if len(out.results) != 1 || out.results[0] != "33221100" {
		t.Errorf("results = %v", out.results)
	}
}

func TestSession_Encode(t *testing.T) {
	session, _, _ := newTestSession(t, nil)

	if got := session.Encode("Aa0", hexstr.Little, hexstr.Little); got != "416130" {
		t.Errorf("Encode = %q, want %q", got, "416130")
	}
	if got := session.Encode("Aa0", hexstr.Big, hexstr.Little); got != "306141" {
		t.Errorf("Encode with conversion = %q, want %q", got, "306141")
	}
}

func TestSession_Integer(t *testing.T) {
	session, out, _ := newTestSession(t, nil)

	v, ok, err := session.Integer("00112233", hexstr.Big)
	if err != nil {
		t.Fatalf("Integer: %v", err)
	}
	if !ok || v != 1122867 {
		t.Errorf("Integer = %d ok=%v, want 1122867 ok=true", v, ok)
	}

	_, ok, err = session.Integer("fffffffffffffffff", hexstr.Big)
	if err != nil {
		t.Fatalf("Integer: %v", err)
	}
	if ok {
		t.Error("17 hex digits of f must not fit into 64 bits")
	}
	if len(out.results) != 2 {
		t.Fatalf("results = %v", out.results)
	}
	if out.results[1] != "value does not fit into 64 bits" {
		t.Errorf("overflow result = %q", out.results[1])
	}
}

func TestSession_Scan(t *testing.T) {
	session, out, hist := newTestSession(t, []config.Pattern{
		{Name: "magic", Hex: "2233"},
		{Name: "missing", Hex: "55"},
	})

	matches, err := session.Scan("00112233440011223344")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("matches = %v", matches)
	}
	if len(matches[0].Offsets) != 2 {
		t.Errorf("magic offsets = %v, want [2 7]", matches[0].Offsets)
	}
	if len(matches[1].Offsets) != 0 {
		t.Errorf("missing offsets = %v, want none", matches[1].Offsets)
	}
	if len(out.results) != 1 || !strings.HasPrefix(out.results[0], "magic: ") {
		t.Errorf("results = %v", out.results)
	}
	// only the hit is recorded
	if len(hist.searches) != 1 || hist.searches[0].Needle != "2233" {
		t.Errorf("recorded searches = %v", hist.searches)
	}
}

func TestSession_Recent(t *testing.T) {
	session, out, _ := newTestSession(t, nil)

	if _, err := session.Find("0011223344", "2233", hexstr.Little); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if _, err := session.Find("0011223344", "55", hexstr.Little); err != nil {
		t.Fatalf("Find: %v", err)
	}

	out.results = nil
	if err := session.Recent(10); err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(out.results) != 2 {
		t.Fatalf("results = %v", out.results)
	}
	// newest first
	if !strings.Contains(out.results[0], "needle=55") {
		t.Errorf("first result = %q", out.results[0])
	}
}

func TestSession_Recent_HistoryDisabled(t *testing.T) {
	book, err := patterns.NewBook(nil, hexstr.Little)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	out := &recordingOutput{}
	session := NewSession(hexstr.Little, book, out, nil)

	if err := session.Recent(10); err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(out.lines) != 1 || out.lines[0] != "history is disabled" {
		t.Errorf("lines = %v", out.lines)
	}
}

func TestSession_Status(t *testing.T) {
	session, _, _ := newTestSession(t, []config.Pattern{{Name: "magic", Hex: "cafe"}})

	status := session.Status()
	if !strings.Contains(status, "Default endianness: little") {
		t.Errorf("status = %q", status)
	}
	if !strings.Contains(status, "Patterns loaded: 1") {
		t.Errorf("status = %q", status)
	}
	if !strings.Contains(status, "magic") {
		t.Errorf("status = %q", status)
	}
	if !strings.Contains(status, "History: enabled") {
		t.Errorf("status = %q", status)
	}
}

func TestFormatOffsets(t *testing.T) {
	if got := FormatOffsets(nil); got != "no matches" {
		t.Errorf("FormatOffsets(nil) = %q", got)
	}
	if got := FormatOffsets([]int{2, 7}); got != "offsets: 2, 7" {
		t.Errorf("FormatOffsets = %q", got)
	}
}
