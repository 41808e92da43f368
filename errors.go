package huffman

import (
	"github.com/pkg/errors"
)

// Errors reported by the coding pipeline.  All of them are sentinels:
// context is attached at the failure site with github.com/pkg/errors, so
// both errors.Is and errors.Cause recover the values below.
var (
	// ErrEmptyAlphabet is reported by BuildTree when no symbol has a
	// positive frequency.  There is no tree for an empty message.
	ErrEmptyAlphabet = errors.New("huffman: no symbol has a positive frequency")

	// ErrUnknownSymbol is reported by Encoder.Encode when the message
	// contains a symbol that has no code in the table.  This only
	// happens when the table was built from a different message's
	// frequencies.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code in the table")

	// ErrTruncated is reported by Decoder.Decode when the bitstring ends
	// in the middle of a code.  No partial output is returned.
	ErrTruncated = errors.New("huffman: bitstring ends in the middle of a code")

	// ErrInvalidBit is reported by Decoder.Decode and ParseCode when a
	// character cannot be interpreted as a bit of any code.
	ErrInvalidBit = errors.New("huffman: invalid bit in encoded input")

	// ErrNotPrefixFree is reported by CodeTable.Tree when one code in
	// the table duplicates or is a prefix of another.
	ErrNotPrefixFree = errors.New("huffman: code table is not prefix-free")
)
