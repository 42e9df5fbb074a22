package ahtree

import "fmt"

// RootWeight returns the root's current weight, the count of symbols
// processed so far.
func (m *Model) RootWeight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nodes[m.root].weight
}

// SymbolWeight returns the weight of the leaf assigned to c, if any.
func (m *Model) SymbolWeight(c byte) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	nr, ok := m.index[c]
	if !ok {
		return 0, false
	}
	return m.nodes[nr].weight, true
}

// CodeOf returns the current codeword for c, if c has been assigned a
// leaf (ok is false otherwise; callers needing the NYT-prefixed form
// for an unseen symbol should use Encode instead).
func (m *Model) CodeOf(c byte) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	nr, ok := m.index[c]
	if !ok {
		return "", false
	}
	return m.nodeToString(nr), true
}

// CheckInvariants walks the whole tree and block list, verifying weight
// conservation, block ordering, block membership, and NYT uniqueness.
// It is O(n) in the tree size and is meant for tests, not hot paths.
func (m *Model) CheckInvariants() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkWeights(m.root); err != nil {
		return err
	}
	if err := m.checkBlocks(); err != nil {
		return err
	}
	if !m.nodes[m.nyt].isLeaf() {
		return fmt.Errorf("nyt node is not a leaf")
	}
	if m.nodes[m.nyt].weight != 0 {
		return fmt.Errorf("nyt weight is %d, want 0", m.nodes[m.nyt].weight)
	}
	if m.nodes[m.nyt].block != m.startBlock {
		return fmt.Errorf("nyt does not live in the weight-0 leaf block")
	}
	return nil
}

// checkWeights verifies that every internal node's weight equals the
// sum of its children's weights.
func (m *Model) checkWeights(nr nodeRef) error {
	n := &m.nodes[nr]
	if n.isLeaf() {
		return nil
	}
	if err := m.checkWeights(n.left); err != nil {
		return err
	}
	if err := m.checkWeights(n.right); err != nil {
		return err
	}
	sum := m.nodes[n.left].weight + m.nodes[n.right].weight
	if sum != n.weight {
		return fmt.Errorf("node weight %d does not equal children sum %d", n.weight, sum)
	}
	return nil
}

// checkBlocks verifies block-list ordering (non-decreasing weight, leaf
// before internal at equal weight) and that every non-empty block's
// leader/tail/member chain is internally consistent.
func (m *Model) checkBlocks() error {
	prevWeight := -1
	prevInternal := false
	for br := m.startBlock; br != noRef; br = m.blocks[br].next {
		b := &m.blocks[br]
		if b.weight < prevWeight {
			return fmt.Errorf("block weight %d out of order after %d", b.weight, prevWeight)
		}
		if b.weight == prevWeight && prevInternal && !b.internal {
			return fmt.Errorf("leaf block at weight %d follows internal block of same weight", b.weight)
		}
		prevWeight, prevInternal = b.weight, b.internal

		if b.isEmpty() {
			continue
		}
		seen := map[nodeRef]bool{}
		reachedTail := false
		for nr := b.leader; nr != noRef; nr = m.nodes[nr].blockPrev {
			if seen[nr] {
				return fmt.Errorf("cycle in block member list")
			}
			seen[nr] = true
			if m.nodes[nr].block != br {
				return fmt.Errorf("node's block back-reference does not match containing block")
			}
			if nr == b.tail {
				reachedTail = true
				break
			}
		}
		if !reachedTail {
			return fmt.Errorf("block member chain does not terminate at its declared tail")
		}
	}
	return nil
}
