package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pushSequence simulates the facade's push/commit bookkeeping for a single
// live state across n steps, returning the final crumb, its level (bits
// pushed since the last commit), and the tree it committed into.
func pushSequence(bits []int) (*solTree, solCrumb, int) {
	tree := newSolTree()
	crumb := newSolCrumb(0)
	level := 0

	for _, bit := range bits {
		crumb.push(uint64(bit))
		level++
		if level == 64 {
			tree.commit(&crumb)
			level = 0
		}
	}

	return tree, crumb, level
}

func TestCrumbRoundTripUnderOneCommit(t *testing.T) {
	itemOrder := []int{10, 20, 30, 40, 50}
	bits := []int{1, 0, 1, 1, 0}

	tree, crumb, level := pushSequence(bits)

	decision := make([]bool, 60)
	tree.backtrack(crumb, level, itemOrder, decision)

	for i, bit := range bits {
		assert.Equal(t, bit != 0, decision[itemOrder[i]], "item %d", itemOrder[i])
	}
}

func TestCrumbRoundTripAcrossCommitBoundary(t *testing.T) {
	const n = 130 // forces sol_level to wrap past 64 at least twice
	itemOrder := make([]int, n)
	bits := make([]int, n)
	for i := 0; i < n; i++ {
		itemOrder[i] = i * 2 // arbitrary distinct original indices
		if i%3 == 0 {
			bits[i] = 1
		}
	}

	tree, crumb, level := pushSequence(bits)
	require.Greater(t, len(tree.crumbs), 2, "expected at least two commits for 130 pushes")

	decision := make([]bool, n*2)
	tree.backtrack(crumb, level, itemOrder, decision)

	for i, bit := range bits {
		assert.Equal(t, bit != 0, decision[itemOrder[i]], "item %d", itemOrder[i])
	}
}

func TestSolCrumbPushPacksLSBMostRecent(t *testing.T) {
	c := newSolCrumb(0)
	c.push(1)
	c.push(0)
	c.push(1)
	// pushes: 1, then 0, then 1 -> recent = 0b101
	assert.Equal(t, uint64(0b101), c.recent)
}

func TestSolTreeCommitRewiresCrumb(t *testing.T) {
	tree := newSolTree()
	c := newSolCrumb(0)
	c.push(1)
	tree.commit(&c)

	assert.Equal(t, 1, c.previous)
	assert.Equal(t, uint64(0), c.recent)
	assert.Len(t, tree.crumbs, 2)
}
