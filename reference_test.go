package huffman

import (
	"testing"
)

// A fixed message, the exact bitstring it must encode to under the
// documented tie-break rule, and the per-symbol codes that produce it.
const (
	refMessage = "aabbccddbbeaebdddfffdbffddabbbbbcdefaabbcccccaabbddfffdcecc"
	refEncoded = "001001101011111101011010000001000100101011101101100110110110010100110101010101110100011000100110101111111111111110010011010010111011011001111000111111"
)

var refCodes = map[Symbol]string{
	'a': "001",
	'b': "10",
	'c': "111",
	'd': "01",
	'e': "000",
	'f': "110",
}

func buildReference(t *testing.T) (*Node, CodeTable) {
	t.Helper()
	root, err := BuildTree(CountString(refMessage))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	return root, NewCodeTable(root)
}
