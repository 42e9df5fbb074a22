// Package ahtree implements Vitter's Algorithm Λ: a dynamic prefix-code
// tree that an encoder and a decoder maintain in lockstep, without ever
// exchanging a code table.
//
// The tree is a binary Huffman tree over bytes, plus a distinguished NYT
// ("not yet transmitted") leaf standing in for every byte not yet seen.
// Nodes are grouped into blocks: the equivalence classes of same-weight,
// same-kind (leaf or internal) nodes that the sibling property requires
// to be kept contiguous and swappable as a unit.
package ahtree

// nodeRef and blockRef are indices into a Model's node and block arenas.
// noRef marks "no such reference" for both, in place of nil pointers.
// The whole tree/block graph is cyclic (node to block, node to node via
// parent/child and block-list links, block to block), and indices into
// flat slices sidestep that instead of chasing pointers through a
// garbage-collected heap.
type nodeRef int32

type blockRef int32

const noRef = -1

// node is one vertex of the Huffman tree. A node is a leaf iff both
// left and right are noRef; the root may be either.
type node struct {
	weight int
	symbol byte

	parent nodeRef
	left   nodeRef
	right  nodeRef

	// blockNext/blockPrev thread this node into its owning block's
	// member list; block is the weak back-reference to that block.
	blockNext nodeRef
	blockPrev nodeRef
	block     blockRef
}

func (n *node) isLeaf() bool {
	return n.left == noRef && n.right == noRef
}
