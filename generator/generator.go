// Package generator produces random correlated 0/1 knapsack instances for
// testing and benchmarking the solvers in package knapsack. Grounded on
// original_source/src/generate.rs, with its "Weak" correlation mode renamed
// "Some" to match the CLI flag enum in SPEC_FULL.md.
package generator

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sallysoul/knapsack"
)

// Correlation selects how an instance's item weights and values relate.
type Correlation int

const (
	// None samples weight and value independently.
	None Correlation = iota
	// Some weakly ties weight to value via Coeff-scaled noise.
	Some
	// Strong ties value directly to weight plus a fixed offset.
	Strong
)

func (c Correlation) String() string {
	switch c {
	case None:
		return "None"
	case Some:
		return "Some"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// GenerateOptions mirrors the `generate` CLI subcommand's flags one-to-one.
type GenerateOptions struct {
	Correlation Correlation
	Coeff       float64
	ValueOffset uint64
	ItemCount   uint64

	// Capacity is the explicit knapsack capacity. If nil, it is derived as
	// ceil(CapacityRatio * sum of generated weights).
	Capacity      *uint64
	CapacityRatio float64

	WeightLowerBound uint64
	ValueLowerBound  uint64
	WeightUpperBound uint64
	ValueUpperBound  uint64
}

// ErrInvalidOptions is returned when GenerateOptions describes an
// unsatisfiable sampling range (e.g. an empty weight bound).
var ErrInvalidOptions = errors.New("generator: invalid options")

// Generate produces a random Problem of opts.ItemCount items under the
// configured correlation mode, using rng as the entropy source. No
// generated item has zero weight: the weight sampler is resampled until it
// clears the solver's zero-weight rejection, since value/weight bounds with
// a zero lower edge can otherwise legitimately produce one.
func Generate(opts GenerateOptions, rng *rand.Rand) (knapsack.Problem, error) {
	if opts.WeightUpperBound <= opts.WeightLowerBound {
		return knapsack.Problem{}, errors.Wrapf(ErrInvalidOptions,
			"weight upper bound %d must exceed lower bound %d", opts.WeightUpperBound, opts.WeightLowerBound)
	}
	if opts.ValueUpperBound <= opts.ValueLowerBound {
		return knapsack.Problem{}, errors.Wrapf(ErrInvalidOptions,
			"value upper bound %d must exceed lower bound %d", opts.ValueUpperBound, opts.ValueLowerBound)
	}

	items := make([]knapsack.Item, opts.ItemCount)
	var weightSum uint64

	switch opts.Correlation {
	case None:
		sampleNone(opts, rng, items)
	case Some:
		sampleSome(opts, rng, items)
	case Strong:
		sampleStrong(opts, rng, items)
	default:
		return knapsack.Problem{}, errors.Wrapf(ErrInvalidOptions, "unknown correlation mode %d", opts.Correlation)
	}

	for _, item := range items {
		weightSum += item.Weight
	}

	var capacity uint64
	if opts.Capacity != nil {
		capacity = *opts.Capacity
	} else {
		capacity = ceilRatio(weightSum, opts.CapacityRatio)
	}

	return knapsack.Problem{Items: items, Capacity: capacity}, nil
}

// sampleNone fills items with independently uniform value and weight,
// per original_source/src/generate.rs's write_no_correlation.
func sampleNone(opts GenerateOptions, rng *rand.Rand, items []knapsack.Item) {
	valueDist := distuv.Uniform{Min: float64(opts.ValueLowerBound), Max: float64(opts.ValueUpperBound), Src: rng}
	weightDist := distuv.Uniform{Min: float64(opts.WeightLowerBound), Max: float64(opts.WeightUpperBound), Src: rng}

	for id := range items {
		weight := resampleNonZero(weightDist, rng, opts.WeightLowerBound)
		items[id] = knapsack.Item{ID: uint64(id), Value: uint64(valueDist.Rand()), Weight: weight}
	}
}

// sampleSome ties weight to value via a coefficient-scaled uniform offset,
// per original_source/src/generate.rs's write_weak_correlation.
func sampleSome(opts GenerateOptions, rng *rand.Rand, items []knapsack.Item) {
	tDist := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	offsetDist := distuv.Uniform{Min: -1, Max: 1, Src: rng}
	valueSpan := float64(opts.ValueUpperBound - opts.ValueLowerBound)
	weightSpan := float64(opts.WeightUpperBound - opts.WeightLowerBound)

	for id := range items {
		valueT := tDist.Rand()
		offset := offsetDist.Rand()
		weightT := clamp01(valueT * (1 + opts.Coeff*offset))

		value := uint64(valueT*valueSpan) + opts.ValueLowerBound
		weight := uint64(weightT*weightSpan) + opts.WeightLowerBound
		if weight == 0 {
			weight = resampleNonZero(distuv.Uniform{Min: float64(opts.WeightLowerBound), Max: float64(opts.WeightUpperBound), Src: rng}, rng, opts.WeightLowerBound)
		}
		items[id] = knapsack.Item{ID: uint64(id), Value: value, Weight: weight}
	}
}

// sampleStrong samples weight uniformly and derives value directly from it,
// per original_source/src/generate.rs's write_strong_correlation.
func sampleStrong(opts GenerateOptions, rng *rand.Rand, items []knapsack.Item) {
	weightDist := distuv.Uniform{Min: float64(opts.WeightLowerBound), Max: float64(opts.WeightUpperBound), Src: rng}

	for id := range items {
		weight := resampleNonZero(weightDist, rng, opts.WeightLowerBound)
		items[id] = knapsack.Item{ID: uint64(id), Value: weight + opts.ValueOffset, Weight: weight}
	}
}

func resampleNonZero(dist distuv.Uniform, rng *rand.Rand, lowerBound uint64) uint64 {
	const maxAttempts = 64
	for i := 0; i < maxAttempts; i++ {
		w := uint64(dist.Rand())
		if w != 0 {
			return w
		}
	}
	// Every resample landed on zero; fall back to the smallest item that
	// clears the solver's zero-weight rejection.
	if lowerBound == 0 {
		return 1
	}
	return lowerBound
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func ceilRatio(weightSum uint64, ratio float64) uint64 {
	v := float64(weightSum) * ratio
	if v <= 0 {
		return 0
	}
	whole := uint64(v)
	if float64(whole) < v {
		whole++
	}
	return whole
}
