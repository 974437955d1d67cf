package hexstr

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence is an ordered list of Units tagged with the Endianness that
// describes how the order is to be interpreted. The tag always matches the
// physical unit order: changing the tag reverses the units so the encoded
// value is preserved. All operations return new values; a Sequence is never
// mutated after construction.
type Sequence struct {
	units      []Unit
	endianness Endianness
}

// NewSequence builds a Sequence from ready-made units declared in source
// order. If source and target differ the unit order is reversed.
func NewSequence(units []Unit, source, target Endianness) Sequence {
	owned := make([]Unit, len(units))
	copy(owned, units)
	if source != target {
		reverse(owned)
	}
	return Sequence{units: owned, endianness: target}
}

// ParseHex builds a Sequence from hex text declared in source order. Input
// with an odd number of characters is left-padded with a single '0' so the
// most significant nibble is padded. Construction is all-or-nothing: the
// first invalid fragment aborts it.
func ParseHex(s string, source, target Endianness) (Sequence, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}

	units := make([]Unit, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		u, err := NewUnit(s[i : i+2])
		if err != nil {
			return Sequence{}, fmt.Errorf("invalid hex text: %w", err)
		}
		units = append(units, u)
	}
	return NewSequence(units, source, target), nil
}

// EncodeText builds a Sequence from arbitrary text by encoding each
// character's code point in left-to-right order. Cannot fail.
func EncodeText(s string, source, target Endianness) Sequence {
	var units []Unit
	for _, r := range s {
		units = append(units, UnitsForRune(r)...)
	}
	return NewSequence(units, source, target)
}

// WithEndianness returns a copy of s re-tagged to e, reversing the unit
// order when the tag changes. Re-tagging to the current endianness returns
// an identical copy.
func (s Sequence) WithEndianness(e Endianness) Sequence {
	owned := make([]Unit, len(s.units))
	copy(owned, s.units)
	if s.endianness != e {
		reverse(owned)
	}
	return Sequence{units: owned, endianness: e}
}

// HexString renders the sequence as hex text in the requested byte order.
// The result is exactly twice as long as the unit count.
func (s Sequence) HexString(e Endianness) string {
	out := s
	if e != s.endianness {
		out = s.WithEndianness(e)
	}

	var b strings.Builder
	b.Grow(len(out.units) * 2)
	for _, u := range out.units {
		b.WriteString(u.String())
	}
	return b.String()
}

// Uint64 renders the sequence as an unsigned integer. The second return
// value is false when the encoded value does not fit into 64 bits; that is
// a documented ceiling, not an error.
func (s Sequence) Uint64() (uint64, bool) {
	v, err := strconv.ParseUint(s.HexString(Big), 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Offsets returns every zero-based unit offset at which needle occurs in s,
// in ascending order with overlapping matches included. An empty needle or a
// needle longer than the haystack yields no offsets. The needle is re-tagged
// to the haystack's endianness before comparison so the encoded values are
// compared order-consistently.
func (s Sequence) Offsets(needle Sequence) []int {
	var offsets []int
	if needle.Len() == 0 || s.Len() < needle.Len() {
		return offsets
	}

	if needle.endianness != s.endianness {
		needle = needle.WithEndianness(s.endianness)
	}

	for i := 0; i+needle.Len() <= s.Len(); i++ {
		matched := true
		for j, u := range needle.units {
			if s.units[i+j] != u {
				matched = false
				break
			}
		}
		if matched {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// Len returns the number of units.
func (s Sequence) Len() int {
	return len(s.units)
}

// Units returns a copy of the unit list in physical order.
func (s Sequence) Units() []Unit {
	out := make([]Unit, len(s.units))
	copy(out, s.units)
	return out
}

// Endianness returns the tag describing the current unit order.
func (s Sequence) Endianness() Endianness {
	return s.endianness
}

// Equal reports whether both sequences hold the same units in the same
// physical order under the same tag.
func (s Sequence) Equal(other Sequence) bool {
	if s.endianness != other.endianness || len(s.units) != len(other.units) {
		return false
	}
	for i, u := range s.units {
		if other.units[i] != u {
			return false
		}
	}
	return true
}

func (s Sequence) String() string {
	return fmt.Sprintf("%s (%s endian)", s.HexString(s.endianness), s.endianness)
}

func reverse(units []Unit) {
	for i, j := 0, len(units)-1; i < j; i, j = i+1, j-1 {
		units[i], units[j] = units[j], units[i]
	}
}
