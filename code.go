package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Code represents a sequence of bits, the path from the tree's root to one
// of its nodes.
//
// A Code holds at most 64 bits.  An optimal tree only assigns a code deeper
// than 64 levels when the frequency counts sum to at least the 67th
// Fibonacci number (roughly 2^45), so the cap is unreachable for any table
// a real message produces.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant
	// valid bit of Bits is the first bit, i.e. the bit chosen at the
	// root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(hc.Size < 64, "code of %d bits cannot be extended", hc.Size)
	return MakeCode(hc.Size+1, hc.Bits<<1|uint64(bit&1))
}

// Bit returns the index'th bit of the Code, counting from the root end.
func (hc Code) Bit(index byte) byte {
	assert.Assertf(index < hc.Size, "bit index %d out of range for a code of %d bits", index, hc.Size)
	return byte(hc.Bits>>(hc.Size-1-index)) & 1
}

// BitString returns the code as a bare string of '0' and '1' characters.
func (hc Code) BitString() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.BitString())
}

// GoString returns the Go expression that constructs this Code.
func (hc Code) GoString() string {
	if hc.Size == 0 {
		return "MakeCode(0, 0)"
	}
	return fmt.Sprintf("MakeCode(%d, 0b%s)", hc.Size, hc.BitString())
}

var _ fmt.Stringer = Code{}
var _ fmt.GoStringer = Code{}

// ParseCode parses a bare string of '0' and '1' characters, the inverse of
// BitString.  Characters outside the bit alphabet are reported as
// ErrInvalidBit; the empty string and strings longer than 64 characters are
// rejected as out of range.
func ParseCode(s string) (Code, error) {
	if len(s) == 0 || len(s) > 64 {
		return Code{}, errors.Errorf("cannot parse %q as a code: length %d out of range 1..64", s, len(s))
	}
	var bits uint64
	for index := 0; index < len(s); index++ {
		switch s[index] {
		case '0':
			bits <<= 1
		case '1':
			bits = bits<<1 | 1
		default:
			return Code{}, errors.Wrapf(ErrInvalidBit, "character %q at offset %d", s[index], index)
		}
	}
	return MakeCode(byte(len(s)), bits), nil
}
