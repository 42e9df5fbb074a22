package ahtree

// block is the equivalence class of tree nodes sharing (weight, kind).
// Its member list is ordered so that leader carries the highest implicit
// number and tail the lowest; fresh insertions land at the tail end,
// which is what keeps that ordering true as updates happen in the
// prescribed sequence.
type block struct {
	internal bool
	weight   int

	next blockRef
	prev blockRef

	leader nodeRef
	tail   nodeRef
}

func (b *block) isEmpty() bool {
	return b.leader == noRef && b.tail == noRef
}

// blockInsert appends n at the tail end of b's member list: n becomes
// the new tail, and the new leader too if b was empty.
func (m *Model) blockInsert(br blockRef, nr nodeRef) {
	b := &m.blocks[br]
	n := &m.nodes[nr]

	if b.tail != noRef {
		m.nodes[b.tail].blockPrev = nr
		n.blockNext = b.tail
	} else {
		n.blockNext = noRef
	}
	if b.leader == noRef {
		b.leader = nr
	}

	b.tail = nr
	n.blockPrev = noRef
	n.block = br
}

// blockRemove unlinks n from its block's member list, fixing leader/tail
// if n was one of them.
func (m *Model) blockRemove(nr nodeRef) {
	n := &m.nodes[nr]
	br := n.block
	b := &m.blocks[br]

	if n.blockPrev != noRef {
		m.nodes[n.blockPrev].blockNext = n.blockNext
	}
	if n.blockNext != noRef {
		m.nodes[n.blockNext].blockPrev = n.blockPrev
	}
	if b.leader == nr {
		b.leader = n.blockPrev
	}
	if b.tail == nr {
		b.tail = n.blockNext
	}

	n.block = noRef
	n.blockPrev = noRef
	n.blockNext = noRef
}

// newBlock allocates a fresh block in the arena and returns its reference.
func (m *Model) newBlock(internal bool, weight int) blockRef {
	m.blocks = append(m.blocks, block{
		internal: internal,
		weight:   weight,
		next:     noRef,
		prev:     noRef,
		leader:   noRef,
		tail:     noRef,
	})
	return blockRef(len(m.blocks) - 1)
}
