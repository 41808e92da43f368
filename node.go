package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Node is one node of a Huffman tree.  A leaf carries a Symbol and its
// occurrence count; an internal node carries exactly two children and the sum
// of their weights, never a symbol.  The tree is owned from the root down:
// nodes are not shared between trees, and a tree must not be walked
// concurrently with NewCodeTable, which caches each node's path.
type Node struct {
	left    *Node
	right   *Node
	sym     Symbol
	freq    uint64
	path    Code
	hasPath bool
}

// IsLeaf reports whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Symbol returns the leaf's symbol, or InvalidSymbol for an internal node.
func (n *Node) Symbol() Symbol {
	if n.IsLeaf() {
		return n.sym
	}
	return InvalidSymbol
}

// Freq returns the node's weight: a leaf's occurrence count, or the sum of
// the children's weights for an internal node.  The root's weight equals the
// length of the counted message.
func (n *Node) Freq() uint64 {
	return n.freq
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Path returns the node's own bit path from the root.  The second return is
// false until NewCodeTable has been run on the tree containing this node.
func (n *Node) Path() (Code, bool) {
	return n.path, n.hasPath
}

// Dump writes a programmer-readable rendering of the whole subtree to the
// given writer: each node as "symbol:weight(path)" with its children listed
// in braces.  The path is omitted until NewCodeTable has cached it.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.dump(&buf)
	buf.WriteString("\n")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer) {
	if n.IsLeaf() {
		buf.WriteString(formatSymbol(n.sym))
	}
	fmt.Fprintf(buf, ":%d", n.freq)
	if n.hasPath {
		fmt.Fprintf(buf, "(%s)", n.path.BitString())
	}
	if !n.IsLeaf() {
		buf.WriteString(" {")
		n.left.dump(buf)
		buf.WriteString(", ")
		n.right.dump(buf)
		buf.WriteString("}")
	}
}

// DebugString returns Dump's output as a string.
func (n *Node) DebugString() string {
	var buf bytes.Buffer
	_, _ = n.Dump(&buf)
	return buf.String()
}
