package hexstr

import "fmt"

// Endianness describes how the byte order of a Sequence is interpreted.
type Endianness int

const (
	// Big means the most significant byte comes first.
	Big Endianness = iota

	// Little means the least significant byte comes first.
	Little
)

func (e Endianness) String() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	}
	return fmt.Sprintf("endianness(%d)", int(e))
}

// ParseEndianness converts a config or console value into an Endianness.
func ParseEndianness(value string) (Endianness, error) {
	switch value {
	case "big", "be":
		return Big, nil
	case "little", "le":
		return Little, nil
	}
	return Big, fmt.Errorf("invalid endianness %q, must be 'big' or 'little'", value)
}
