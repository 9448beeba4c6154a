package knapsack

// boundOracle computes LP-relaxation upper bounds for the frontier, per
// spec.md 4.3 and original_source/src/solver/minknap.rs's Instance::upper_bound.
// It holds only the data needed to look up the next fractional item to add
// or remove; window state (s, t) is passed in by the caller at each call
// site, since it changes within a single expansion step.
type boundOracle struct {
	capacity   uint64
	efficiency []efficiencyEntry
}

// upperBound returns an upper bound on the best achievable profit of any
// completion of a state with the given weight and profit, given the current
// window endpoints s and t.
//
// If weight fits under capacity, the bound linearly adds the fractional
// contribution of the next item beyond the window (position t+1). If weight
// is over capacity, the bound linearly removes the fractional contribution
// of the next item inside the window (position s-1).
func (b boundOracle) upperBound(weight, profit uint64, s, t int) uint64 {
	n := len(b.efficiency)

	if weight <= b.capacity {
		if t >= n-1 {
			return profit
		}
		remaining := b.capacity - weight
		return profit + ceilFrac(remaining, b.efficiency[t+1].efficiency)
	}

	if s <= 0 {
		return profit
	}
	over := weight - b.capacity
	linearDiff := ceilFrac(over, b.efficiency[s-1].efficiency)
	if linearDiff > profit {
		return 0
	}
	return profit - linearDiff
}
