package huffman

import (
	"container/heap"

	"github.com/pkg/errors"
)

// BuildTree constructs the optimal prefix-code tree for the given frequency
// table.  Symbols with a zero count are left out of the alphabet.
//
// Construction is the classic greedy merge: keep the not-yet-merged nodes in
// a min-heap, repeatedly pop the two lightest nodes and push an internal
// node owning them (left = first popped, right = second popped) with their
// summed weight, until one node remains.  Equal weights are broken by a
// deterministic order stamp: leaves are stamped 0, 1, 2, … in ascending
// symbol order, and each merged node takes the next stamp of a counter that
// starts at -1 and decreases, so the freshest merge wins a tie and lower
// symbols win among leaves.  The same table therefore always yields the same
// tree shape, and hence the same codes.
//
// A table with exactly one distinct symbol yields a tree that is a single
// leaf; see NewCodeTable for the code convention in that case.
//
// BuildTree reports ErrEmptyAlphabet if no symbol has a positive count.
func BuildTree(ft FreqTable) (*Node, error) {
	syms := ft.Symbols()
	if len(syms) == 0 {
		return nil, errors.Wrap(ErrEmptyAlphabet, "cannot build a tree")
	}

	h := mergeHeap{list: make([]mergeItem, 0, len(syms))}
	for index, sym := range syms {
		leaf := &Node{sym: sym, freq: uint64(ft[sym])}
		h.list = append(h.list, mergeItem{node: leaf, order: int64(index)})
	}
	h.Init()

	nextOrder := int64(-1)
	for h.Len() > 1 {
		a := heap.Pop(&h).(mergeItem)
		b := heap.Pop(&h).(mergeItem)
		parent := &Node{
			left:  a.node,
			right: b.node,
			sym:   InvalidSymbol,
			freq:  a.node.freq + b.node.freq,
		}
		heap.Push(&h, mergeItem{node: parent, order: nextOrder})
		nextOrder--
	}
	return heap.Pop(&h).(mergeItem).node, nil
}

// type mergeItem + type mergeHeap {{{

type mergeItem struct {
	node  *Node
	order int64
}

type mergeHeap struct {
	list []mergeItem
}

func (h *mergeHeap) Init() {
	heap.Init(h)
}

func (h *mergeHeap) Len() int {
	return len(h.list)
}

func (h *mergeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *mergeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.order < b.order
}

func (h *mergeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(mergeItem))
}

func (h *mergeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*mergeHeap)(nil)

// }}}
