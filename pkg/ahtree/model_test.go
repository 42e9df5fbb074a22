package ahtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelStartsWithNytAtRoot(t *testing.T) {
	m := NewModel()

	assert.Equal(t, m.root, m.nyt, "a fresh model's root is the sole NYT node")
	assert.True(t, m.nodes[m.root].isLeaf())
	assert.Equal(t, 0, m.nodes[m.root].weight)
	require.NoError(t, m.CheckInvariants())
}

func TestFindNodeUnknownSymbol(t *testing.T) {
	m := NewModel()
	_, ok := m.findNode('Z')
	assert.False(t, ok)
}

func TestSplitNYTCreatesSiblingPair(t *testing.T) {
	m := NewModel()
	oldNyt := m.nyt

	leaf := m.addSymbol('A')

	assert.Equal(t, byte('A'), m.nodes[leaf].symbol)
	assert.Equal(t, oldNyt, m.nodes[leaf].parent)
	assert.NotEqual(t, oldNyt, m.nyt, "NYT should have moved to the new left child")
	assert.False(t, m.nodes[oldNyt].isLeaf(), "old NYT becomes internal")
	assert.True(t, m.nodes[m.nyt].isLeaf())
	assert.Equal(t, 0, m.nodes[m.nyt].weight)

	require.NoError(t, m.CheckInvariants())
}

func TestUpdateModelIncrementsRootWeight(t *testing.T) {
	m := NewModel()
	for i, c := range []byte("hello world") {
		m.UpdateModel(c)
		assert.Equal(t, i+1, m.RootWeight())
	}
}

func TestNYTStaysUniqueAcrossUpdates(t *testing.T) {
	m := NewModel()
	for _, c := range []byte("mississippi river") {
		m.UpdateModel(c)

		count := 0
		var walk func(nr nodeRef)
		walk = func(nr nodeRef) {
			if nr == noRef {
				return
			}
			if nr == m.nyt {
				count++
			}
			walk(m.nodes[nr].left)
			walk(m.nodes[nr].right)
		}
		walk(m.root)
		require.Equal(t, 1, count, "exactly one NYT node must exist in the tree")
	}
}

func TestCodeOfReflectsCurrentTree(t *testing.T) {
	m := NewModel()
	_, ok := m.CodeOf('A')
	assert.False(t, ok, "unassigned symbol has no stable code yet")

	m.UpdateModel('A')
	code, ok := m.CodeOf('A')
	require.True(t, ok)
	assert.NotEmpty(t, code)
}

func TestResetReturnsToFreshState(t *testing.T) {
	m := NewModel()
	for _, c := range []byte("some data") {
		m.UpdateModel(c)
	}
	require.NotZero(t, m.RootWeight())

	m.Reset()
	assert.Equal(t, 0, m.RootWeight())
	assert.Equal(t, m.root, m.nyt)
	require.NoError(t, m.CheckInvariants())
}
