package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// CodeTable maps each symbol present in a message to its bit path.  The set
// of codes is prefix-free because the codes are root-to-leaf paths of one
// tree.  A table is built once and read-only afterward.
type CodeTable map[Symbol]Code

// NewCodeTable derives the code for every leaf of the tree with a single
// depth-first walk: '0' is appended when descending into a left child and
// '1' when descending into a right child.  Every node visited, internal
// nodes included, has its own path cached for diagnostic dumps.
//
// If the root is itself a leaf (single distinct symbol), that symbol is
// assigned the one-bit code "0" by convention: an empty code would make the
// length of the encoded stream ambiguous.
func NewCodeTable(root *Node) CodeTable {
	assert.Assertf(root != nil, "NewCodeTable called with a nil root")
	ct := make(CodeTable)
	ct.walk(root, Code{})
	if root.IsLeaf() {
		ct[root.sym] = MakeCode(1, 0)
	}
	return ct
}

func (ct CodeTable) walk(node *Node, path Code) {
	node.path = path
	node.hasPath = true
	if node.IsLeaf() {
		ct[node.sym] = path
		return
	}
	ct.walk(node.left, path.Append(0))
	ct.walk(node.right, path.Append(1))
}

// Symbols returns the table's symbols in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	list := make(bySymbol, 0, len(ct))
	for sym := range ct {
		list = append(list, sym)
	}
	list.Sort()
	return []Symbol(list)
}

// Tree reconstructs a decoding tree from the table, e.g. on the receiving
// side after the table has been transmitted as JSON.  The reconstructed
// nodes carry no weights.
//
// Tree reports ErrNotPrefixFree if one code duplicates or is a prefix of
// another, ErrEmptyAlphabet for an empty table, and a plain error if the
// codes do not describe a tree whose internal nodes all have two children.
// The one-entry table produced by NewCodeTable's single-leaf convention
// reconstructs to a single leaf.
func (ct CodeTable) Tree() (*Node, error) {
	if len(ct) == 0 {
		return nil, errors.Wrap(ErrEmptyAlphabet, "cannot rebuild a tree")
	}

	syms := ct.Symbols()
	if len(syms) == 1 && ct[syms[0]] == MakeCode(1, 0) {
		return &Node{sym: syms[0]}, nil
	}

	root := &Node{sym: InvalidSymbol}
	for _, sym := range syms {
		hc := ct[sym]
		node := root
		for index := byte(0); index < hc.Size; index++ {
			if node.sym != InvalidSymbol {
				return nil, errors.Wrapf(ErrNotPrefixFree, "code %s for symbol %s passes through another leaf", hc, formatSymbol(sym))
			}
			child := &node.left
			if hc.Bit(index) == 1 {
				child = &node.right
			}
			if *child == nil {
				*child = &Node{sym: InvalidSymbol}
			}
			node = *child
		}
		if node.sym != InvalidSymbol || !node.IsLeaf() {
			return nil, errors.Wrapf(ErrNotPrefixFree, "code %s for symbol %s collides with another code", hc, formatSymbol(sym))
		}
		node.sym = sym
	}
	if err := checkComplete(root, Code{}); err != nil {
		return nil, err
	}
	return root, nil
}

func checkComplete(node *Node, path Code) error {
	if node.IsLeaf() {
		if node.sym == InvalidSymbol {
			return errors.Errorf("code table does not describe a complete tree: no code extends %s", path)
		}
		return nil
	}
	if node.left == nil || node.right == nil {
		return errors.Errorf("code table does not describe a complete tree: node %s has exactly one child", path)
	}
	if err := checkComplete(node.left, path.Append(0)); err != nil {
		return err
	}
	return checkComplete(node.right, path.Append(1))
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, one "symbol: code" line per symbol in ascending order.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, sym := range ct.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %s\n", formatSymbol(sym), ct[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns Dump's output as a string.
func (ct CodeTable) DebugString() string {
	var buf bytes.Buffer
	_, _ = ct.Dump(&buf)
	return buf.String()
}

// MarshalJSON encodes the table as an object mapping each symbol's decimal
// value to its bit string, e.g. {"97":"001","98":"10"}.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(ct))
	for sym, hc := range ct {
		obj[strconv.FormatInt(int64(sym), 10)] = hc.BitString()
	}
	return json.Marshal(obj)
}

// UnmarshalJSON decodes a table produced by MarshalJSON.
func (ct *CodeTable) UnmarshalJSON(raw []byte) error {
	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err != nil {
		return err
	}
	out := make(CodeTable, len(obj))
	for key, bits := range obj {
		num, err := strconv.ParseInt(key, 10, 32)
		if err != nil || num < 0 {
			return errors.Errorf("invalid symbol key %q", key)
		}
		hc, err := ParseCode(bits)
		if err != nil {
			return errors.Wrapf(err, "symbol %s", key)
		}
		out[Symbol(num)] = hc
	}
	*ct = out
	return nil
}

var _ json.Marshaler = CodeTable(nil)
var _ json.Unmarshaler = (*CodeTable)(nil)
