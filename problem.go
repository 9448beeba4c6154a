// Package knapsack implements an exact solver for the 0/1 knapsack problem
// using Pisinger's MinKnap core-expansion algorithm, along with greedy and
// textbook dynamic-programming solvers used as cross-check oracles.
package knapsack

import "github.com/pkg/errors"

// ErrInvalidInput is returned when a Problem fails validation: a zero-weight
// item or a capacity of zero.
var ErrInvalidInput = errors.New("knapsack: invalid input")

// Item is a single candidate for inclusion in the knapsack. ID is the
// caller-visible identity of the item and is preserved across any internal
// reordering performed by the solver.
type Item struct {
	ID     uint64
	Value  uint64
	Weight uint64
}

// Problem is an immutable description of a 0/1 knapsack instance.
type Problem struct {
	Items    []Item
	Capacity uint64
}

// Validate checks the structural invariants of a Problem: a positive
// capacity and no zero-weight items. It does not perform variable reduction;
// see newEfficiencyOrder for that.
func (p Problem) Validate() error {
	if p.Capacity == 0 {
		return errors.Wrap(ErrInvalidInput, "capacity must be positive")
	}
	for _, item := range p.Items {
		if item.Weight == 0 {
			return errors.Wrapf(ErrInvalidInput, "item %d has zero weight", item.ID)
		}
	}
	return nil
}

// Solution is the common result shape produced by every solver in this
// package (MinKnap, Greedy, DynamicProgram): which items were taken, and the
// resulting total value and weight.
type Solution struct {
	Decision []bool
	Value    uint64
	Weight   uint64
}

// ErrSolutionInvalid is returned by validateSolution when a computed
// Solution fails to reconcile against the Problem it was computed for.
var ErrSolutionInvalid = errors.New("knapsack: solution failed validation")

// validateSolution recomputes the value and weight of decision against p and
// checks them against the reported Solution. Every solver in this package
// runs its result through this before returning, so an internal bookkeeping
// bug surfaces as ErrSolutionInvalid rather than a silently wrong answer.
func validateSolution(p Problem, s Solution) error {
	if len(s.Decision) != len(p.Items) {
		return errors.Wrapf(ErrSolutionInvalid, "decision length %d does not match item count %d",
			len(s.Decision), len(p.Items))
	}

	var valueSum, weightSum uint64
	for i, taken := range s.Decision {
		if taken {
			valueSum += p.Items[i].Value
			weightSum += p.Items[i].Weight
		}
	}

	if valueSum != s.Value {
		return errors.Wrapf(ErrSolutionInvalid, "reported value %d does not match decision sum %d", s.Value, valueSum)
	}
	if weightSum != s.Weight {
		return errors.Wrapf(ErrSolutionInvalid, "reported weight %d does not match decision sum %d", s.Weight, weightSum)
	}
	if weightSum > p.Capacity {
		return errors.Wrapf(ErrSolutionInvalid, "solution weight %d exceeds capacity %d", weightSum, p.Capacity)
	}

	return nil
}
