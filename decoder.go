package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Decoder decodes '0'/'1' bitstrings by walking the Huffman tree they were
// encoded with.  Decoding requires the tree itself: a code table alone only
// supports encoding.
type Decoder struct {
	root *Node
}

// NewDecoder returns a Decoder over the given tree.
func NewDecoder(root *Node) Decoder {
	assert.Assertf(root != nil, "NewDecoder called with a nil root")
	return Decoder{root: root}
}

// Decode walks the tree once per code: starting from the root, each '0'
// moves the cursor to the left child and each '1' to the right child.
// Whenever the cursor reaches a leaf, its symbol is emitted and the cursor
// resets to the root.
//
// Decode reports ErrInvalidBit for any character other than '0' or '1', and
// ErrTruncated if the input ends while the cursor is mid-tree; in both cases
// the partially decoded output is discarded, never returned.
//
// A tree that is a single leaf carries the one-bit code "0" for its only
// symbol, so every input bit must be '0' and each one emits that symbol.
func (d Decoder) Decode(encoded string) ([]Symbol, error) {
	if d.root.IsLeaf() {
		return d.decodeLeafRoot(encoded)
	}

	out := make([]Symbol, 0, len(encoded))
	cursor := d.root
	var depth uint
	for index := 0; index < len(encoded); index++ {
		switch encoded[index] {
		case '0':
			cursor = cursor.left
		case '1':
			cursor = cursor.right
		default:
			return nil, errors.Wrapf(ErrInvalidBit, "character %q at offset %d", encoded[index], index)
		}
		assert.Assertf(cursor != nil, "malformed tree: internal node above offset %d is missing a child", index)
		depth++
		if cursor.IsLeaf() {
			out = append(out, cursor.sym)
			cursor = d.root
			depth = 0
		}
	}
	if cursor != d.root {
		return nil, errors.Wrapf(ErrTruncated, "input ends %d bits into a code", depth)
	}
	return out, nil
}

// decodeLeafRoot handles the degenerate single-leaf tree, whose only code is
// "0" by convention.
func (d Decoder) decodeLeafRoot(encoded string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(encoded))
	for index := 0; index < len(encoded); index++ {
		if encoded[index] != '0' {
			return nil, errors.Wrapf(ErrInvalidBit, "character %q at offset %d: the only code is \"0\"", encoded[index], index)
		}
		out = append(out, d.root.sym)
	}
	return out, nil
}

// DecodeString decodes a byte-oriented message, one byte per emitted Symbol.
func (d Decoder) DecodeString(encoded string) (string, error) {
	symbols, err := d.Decode(encoded)
	if err != nil {
		return "", err
	}
	return StringOf(symbols), nil
}

// Tree returns the decoder's tree root.
func (d Decoder) Tree() *Node {
	return d.root
}

// Dump writes a programmer-readable rendering of the decoding tree to the
// given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	return d.root.Dump(w)
}

// DebugString returns Dump's output as a string.
func (d Decoder) DebugString() string {
	return d.root.DebugString()
}
