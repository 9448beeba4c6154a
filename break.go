package knapsack

// breakSolution is the greedy-fill solution computed in efficiency order:
// the fractional "break" point beyond which an item no longer fits, per
// spec.md 4.2.
type breakSolution struct {
	// breakItem is the index, in efficiency order, of the first item that
	// does not fit strictly under capacity. Equal to r.n() if every item
	// fits.
	breakItem int
	profit    uint64
	weight    uint64
	// linearProfit is the LP-relaxation bound at the break point: profit
	// plus the fractional contribution of the break item.
	linearProfit uint64
}

// computeBreakSolution walks the efficiency order, greedily accepting items
// until the next one would meet or exceed capacity, and records that as the
// break point. decision is indexed by reduced-item position (not the
// caller's original Problem.Items index) and is mutated in place so that
// decision[i] is true for every item in the greedy prefix.
func computeBreakSolution(r reducedProblem, decision []bool) breakSolution {
	var profitSum, weightSum uint64

	for i := 0; i < r.n(); i++ {
		item := r.item(i)
		if weightSum+item.Weight < r.capacity {
			profitSum += item.Value
			weightSum += item.Weight
			decision[r.efficiency[i].originalIndex] = true
			continue
		}

		remaining := r.capacity - weightSum
		return breakSolution{
			breakItem:    i,
			profit:       profitSum,
			weight:       weightSum,
			linearProfit: profitSum + ceilFrac(remaining, r.efficiency[i].efficiency),
		}
	}

	// every item fits: the break point is past the end of the order.
	return breakSolution{
		breakItem:    r.n(),
		profit:       profitSum,
		weight:       weightSum,
		linearProfit: profitSum,
	}
}
