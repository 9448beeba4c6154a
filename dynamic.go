package knapsack

// maxDPStates is the default hard ceiling on the number of cells the
// textbook DP table may occupy: (capacity+1) * (items+1). Above this,
// DynamicProgram fails fast with ErrProblemTooLarge rather than allocating.
// Grounded on original_source/src/solver/dynamic.rs's MAX_STATES constant.
const maxDPStates = 1_000_000

// DynamicProgram solves p exactly with the textbook O(n*capacity) dynamic
// program, used as an oracle to cross-check MinKnap's optimality (spec.md
// 8, property 2) and as one of the three SolverKinds selectable from the
// CLI. It enforces maxDPStates unconditionally, independent of any
// MinKnap-specific options. Grounded on original_source/src/solver/dynamic.rs.
func DynamicProgram(p Problem) (Solution, error) {
	return dynamicProgramWithCeiling(p, maxDPStates)
}

func dynamicProgramWithCeiling(p Problem, ceiling uint64) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	width := p.Capacity + 1
	height := uint64(len(p.Items)) + 1
	if width*height > ceiling {
		return Solution{}, errProblemTooLargef("dp table of %d cells exceeds limit %d", width*height, ceiling)
	}

	table := make([][]uint64, height)
	for y := range table {
		table[y] = make([]uint64, width)
	}

	for y := uint64(1); y < height; y++ {
		item := p.Items[y-1]
		for x := uint64(0); x < width; x++ {
			doNotTake := table[y-1][x]
			doTake := uint64(0)
			if item.Weight <= x {
				doTake = table[y-1][x-item.Weight] + item.Value
			}
			if doTake > doNotTake {
				table[y][x] = doTake
			} else {
				table[y][x] = doNotTake
			}
		}
	}

	decision := make([]bool, len(p.Items))
	x := p.Capacity
	for y := height - 1; y >= 1; y-- {
		item := p.Items[y-1]
		if item.Weight <= x && table[y-1][x-item.Weight]+item.Value == table[y][x] {
			decision[y-1] = true
			x -= item.Weight
		}
	}

	sol := Solution{Decision: decision, Value: table[height-1][p.Capacity], Weight: weightOf(p, decision)}
	if err := validateSolution(p, sol); err != nil {
		return Solution{}, err
	}
	return sol, nil
}

func weightOf(p Problem, decision []bool) uint64 {
	var sum uint64
	for i, taken := range decision {
		if taken {
			sum += p.Items[i].Weight
		}
	}
	return sum
}
