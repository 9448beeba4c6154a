package knapsack

import "sort"

// Greedy solves p with the single-pass value/weight-ratio heuristic: a
// lower bound on the optimal value, used as a cross-check oracle and as
// one of the three SolverKinds selectable from the CLI. Grounded on
// original_source/src/solver/greedy.rs.
func Greedy(p Problem) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	type ratioItem struct {
		index int
		ratio float64
	}

	ratios := make([]ratioItem, len(p.Items))
	for i, item := range p.Items {
		if item.Weight == 0 {
			return Solution{}, ErrInvalidInput
		}
		ratios[i] = ratioItem{index: i, ratio: float64(item.Value) / float64(item.Weight)}
	}

	sort.Slice(ratios, func(a, b int) bool {
		return ratios[a].ratio > ratios[b].ratio
	})

	decision := make([]bool, len(p.Items))
	var weightSum, valueSum uint64
	for _, r := range ratios {
		item := p.Items[r.index]
		if weightSum+item.Weight < p.Capacity {
			weightSum += item.Weight
			valueSum += item.Value
			decision[r.index] = true
		}
	}

	sol := Solution{Decision: decision, Value: valueSum, Weight: weightSum}
	if err := validateSolution(p, sol); err != nil {
		return Solution{}, err
	}
	return sol, nil
}
