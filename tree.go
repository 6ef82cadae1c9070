package huffman

import "container/heap"

// node is one node of the code tree.  A node has exactly zero or exactly two
// children, never one: a childless node is a leaf and carries a Symbol, an
// internal node carries none.  Each child is owned by exactly one parent.
type node struct {
	symbol      Symbol
	weight      uint64
	left, right *node

	// ord fixes a total order among equal-weight nodes: leaves use their
	// symbol value, internal nodes take consecutive ordinals from
	// numSymbols upward in creation order.  Equal weights pop in ord
	// order, so tree shapes are reproducible.
	ord int32
}

func (n *node) leaf() bool {
	return n.left == nil
}

// buildTree greedily merges weighted leaves into a single strictly-binary
// tree and returns its root.  One leaf is seeded per symbol with a nonzero
// count, plus always a zero-weight leaf for PseudoEOF, so the queue never
// starts empty.  Each round extracts the two minimum nodes and reinserts an
// internal node owning them, first extracted as the left child.  When the
// source held no symbols at all the PseudoEOF leaf itself is the root, and
// the tree is legally a single leaf.
func buildTree(freqs *[numSymbols]uint64) *node {
	h := nodeHeap{make([]*node, 0, numSymbols)}
	for symbol := Symbol(0); symbol < PseudoEOF; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			h.list = append(h.list, &node{symbol: symbol, weight: freq, ord: int32(symbol)})
		}
	}
	h.list = append(h.list, &node{symbol: PseudoEOF, ord: int32(PseudoEOF)})
	heap.Init(&h)

	nextOrd := int32(numSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			weight: a.weight + b.weight,
			left:   a,
			right:  b,
			ord:    nextOrd,
		})
		nextOrd++
	}
	return heap.Pop(&h).(*node)
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*node
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.ord < b.ord
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
