package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// permissiveBound never prunes: capacity is large and the efficiency table
// is empty, so upperBound always falls through to "return profit unchanged".
func permissiveBound() boundOracle {
	return boundOracle{capacity: 1_000_000}
}

func TestFrontierAddItemMergesInWeightOrder(t *testing.T) {
	f := frontier{current: []state{
		{w: 5, p: 10, crumb: newSolCrumb(0)},
		{w: 8, p: 12, crumb: newSolCrumb(0)},
	}}
	item := Item{ID: 1, Value: 3, Weight: 2}

	res := f.addItem(item, permissiveBound(), 0, 0, 1_000_000, 0)
	// lowerBound is 0, so every surviving change branch counts as an
	// improvement; the last one processed (weight 10) wins.
	assert.True(t, res.improved)
	assert.Equal(t, uint64(10), res.bestW)
	assert.Equal(t, uint64(15), res.bestP)

	// The keep-branch state at weight 8 is dominated by the weight-7 change
	// branch's profit (12 <= 13) and must be dropped from the merge.
	weights := make([]uint64, len(f.current))
	for i, s := range f.current {
		weights[i] = s.w
	}
	assert.Equal(t, []uint64{5, 7, 10}, weights)

	for i := 1; i < len(f.current); i++ {
		assert.Less(t, f.current[i-1].w, f.current[i].w, "dominance: weight must strictly increase")
		assert.Less(t, f.current[i-1].p, f.current[i].p, "dominance: profit must strictly increase")
	}
}

func TestFrontierAddItemDropsOverMaxStateWeight(t *testing.T) {
	f := frontier{current: []state{{w: 5, p: 10, crumb: newSolCrumb(0)}}}
	item := Item{ID: 1, Value: 3, Weight: 100}

	res := f.addItem(item, permissiveBound(), 0, 0, 10, 0)
	assert.False(t, res.improved)
	// change branch (w=105) exceeds maxStateWeight=10 and must be dropped,
	// leaving only the kept state.
	assert.Len(t, f.current, 1)
	assert.Equal(t, uint64(5), f.current[0].w)
}

func TestFrontierAddItemRecordsImprovement(t *testing.T) {
	f := frontier{current: []state{{w: 5, p: 10, crumb: newSolCrumb(0)}}}
	item := Item{ID: 1, Value: 4, Weight: 1}

	b := boundOracle{capacity: 10}
	res := f.addItem(item, b, 0, 0, 100, 10)
	assert.True(t, res.improved)
	assert.Equal(t, uint64(6), f.current[len(f.current)-1].w)
	assert.Equal(t, uint64(14), res.bestP)
	assert.Equal(t, uint64(6), res.bestW)
}

func TestFrontierAppendOverwritesEqualWeight(t *testing.T) {
	f := frontier{}
	f.append(state{w: 5, p: 10})
	f.append(state{w: 5, p: 12})
	f.append(state{w: 6, p: 15})

	assert.Len(t, f.next, 2)
	assert.Equal(t, uint64(12), f.next[0].p)
	assert.Equal(t, uint64(15), f.next[1].p)
}

func TestFrontierRemoveItemMergesInWeightOrder(t *testing.T) {
	f := frontier{current: []state{
		{w: 6, p: 14, crumb: newSolCrumb(0)},
		{w: 9, p: 16, crumb: newSolCrumb(0)},
	}}
	item := Item{ID: 0, Value: 10, Weight: 5}

	res := f.removeItem(item, permissiveBound(), 0, 0, 0)
	assert.True(t, res.improved)

	for i := 1; i < len(f.current); i++ {
		assert.Less(t, f.current[i-1].w, f.current[i].w)
		assert.Less(t, f.current[i-1].p, f.current[i].p)
	}
}
