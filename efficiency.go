package knapsack

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// efficiencyEntry is one item's position in the value/weight-sorted order
// used throughout MinKnap. originalIndex refers back into the reduced item
// slice built by newEfficiencyOrder (reducedProblem.items), not the caller's
// original Problem.Items.
type efficiencyEntry struct {
	originalIndex int
	efficiency    float64
}

// reducedProblem is the output of variable reduction: the subset of items
// that can possibly be taken (weight <= capacity), in their original order,
// plus a mapping back to the caller's item indices for decision-vector
// reconstruction.
type reducedProblem struct {
	items      []Item
	origIndex  []int
	capacity   uint64
	efficiency []efficiencyEntry
}

// newEfficiencyOrder performs variable reduction (dropping items that can
// never fit) and computes the value/weight efficiency ordering described in
// spec.md 4.1. Items with zero weight are rejected rather than silently
// dropped or taken for free; see DESIGN.md's Open Question decision.
func newEfficiencyOrder(p Problem) (reducedProblem, error) {
	items := make([]Item, 0, len(p.Items))
	origIndex := make([]int, 0, len(p.Items))

	for i, item := range p.Items {
		if item.Weight == 0 {
			return reducedProblem{}, errors.Wrapf(ErrInvalidInput, "item %d has zero weight", item.ID)
		}
		if item.Weight > p.Capacity {
			continue
		}
		items = append(items, item)
		origIndex = append(origIndex, i)
	}

	entries := make([]efficiencyEntry, len(items))
	for i, item := range items {
		entries[i] = efficiencyEntry{
			originalIndex: i,
			efficiency:    float64(item.Value) / float64(item.Weight),
		}
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].efficiency > entries[b].efficiency
	})

	return reducedProblem{
		items:      items,
		origIndex:  origIndex,
		capacity:   p.Capacity,
		efficiency: entries,
	}, nil
}

// item returns the Item at position i of the efficiency order.
func (r reducedProblem) item(i int) Item {
	return r.items[r.efficiency[i].originalIndex]
}

// n is the number of items that survived reduction.
func (r reducedProblem) n() int {
	return len(r.items)
}

// ceilFrac computes ceil(weight * efficiency) as a uint64, saturating at 0
// for non-positive products. Used by both the break solver and the bound
// oracle to convert a fractional linear-relaxation contribution into an
// integer profit bound.
func ceilFrac(weight uint64, efficiency float64) uint64 {
	v := float64(weight) * efficiency
	if v <= 0 {
		return 0
	}
	return uint64(math.Ceil(v))
}
