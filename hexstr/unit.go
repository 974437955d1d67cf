package hexstr

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the canonical two-character lowercase hexadecimal encoding of one
// byte. A Unit is immutable once built; copying it copies the value.
type Unit struct {
	value string
}

// InvalidFragmentError reports a text fragment that cannot form a Unit:
// either it is longer than two characters or it contains a character outside
// 0-9, A-F, a-f.
type InvalidFragmentError struct {
	Fragment string

	// Char is the first offending character, 0 when the length was invalid.
	Char byte
}

func (e InvalidFragmentError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("fragment %q contains non-hexadecimal character %q", e.Fragment, e.Char)
	}
	return fmt.Sprintf("fragment must be at most 2 characters, got %d", len(e.Fragment))
}

// NewUnit validates a 0-2 character hex fragment and normalizes it into a
// Unit. Shorter fragments are left-padded with '0'. The accepted alphabet is
// checked by explicit code-point ranges so that it stays exact and
// locale-independent.
func NewUnit(fragment string) (Unit, error) {
	if len(fragment) > 2 {
		return Unit{}, InvalidFragmentError{Fragment: fragment}
	}

	padded := fragment
	for len(padded) < 2 {
		padded = "0" + padded
	}

	for i := 0; i < len(padded); i++ {
		c := padded[i]
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')) {
			return Unit{}, InvalidFragmentError{Fragment: fragment, Char: c}
		}
	}

	return Unit{value: strings.ToLower(padded)}, nil
}

// UnitsForRune encodes a character's code point as hex units. Code points up
// to U+00FF fit into a single unit; larger ones take as many units as the
// code point needs, most significant byte first (U+0100 becomes "01" "00").
func UnitsForRune(r rune) []Unit {
	digits := strconv.FormatUint(uint64(uint32(r)), 16)
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	units := make([]Unit, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		// The fragment comes from the hex formatter above and cannot fail
		// validation.
		u, _ := NewUnit(digits[i : i+2])
		units = append(units, u)
	}
	return units
}

// String returns the canonical two-character lowercase form.
func (u Unit) String() string {
	return u.value
}
