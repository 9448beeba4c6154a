package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseOptions() GenerateOptions {
	return GenerateOptions{
		ItemCount:        50,
		CapacityRatio:    0.5,
		WeightLowerBound: 1,
		WeightUpperBound: 100,
		ValueLowerBound:  1,
		ValueUpperBound:  100,
	}
}

func TestGenerateNoneCorrelationBounds(t *testing.T) {
	opts := baseOptions()
	opts.Correlation = None
	rng := rand.New(rand.NewSource(1))

	p, err := Generate(opts, rng)
	require.NoError(t, err)
	require.Len(t, p.Items, int(opts.ItemCount))

	for _, item := range p.Items {
		assert.Greater(t, item.Weight, uint64(0), "no generated item may have zero weight")
		assert.GreaterOrEqual(t, item.Weight, opts.WeightLowerBound)
		assert.Less(t, item.Weight, opts.WeightUpperBound)
		assert.GreaterOrEqual(t, item.Value, opts.ValueLowerBound)
		assert.Less(t, item.Value, opts.ValueUpperBound)
	}
}

func TestGenerateSomeCorrelationBounds(t *testing.T) {
	opts := baseOptions()
	opts.Correlation = Some
	opts.Coeff = 0.2
	rng := rand.New(rand.NewSource(2))

	p, err := Generate(opts, rng)
	require.NoError(t, err)
	for _, item := range p.Items {
		assert.Greater(t, item.Weight, uint64(0))
	}
}

func TestGenerateStrongCorrelationTiesValueToWeight(t *testing.T) {
	opts := baseOptions()
	opts.Correlation = Strong
	opts.ValueOffset = 10
	rng := rand.New(rand.NewSource(3))

	p, err := Generate(opts, rng)
	require.NoError(t, err)
	for _, item := range p.Items {
		assert.Greater(t, item.Weight, uint64(0))
		assert.Equal(t, item.Weight+opts.ValueOffset, item.Value)
	}
}

func TestGenerateDerivesCapacityFromRatio(t *testing.T) {
	opts := baseOptions()
	opts.Correlation = None
	opts.CapacityRatio = 0.5
	rng := rand.New(rand.NewSource(4))

	p, err := Generate(opts, rng)
	require.NoError(t, err)

	var weightSum uint64
	for _, item := range p.Items {
		weightSum += item.Weight
	}
	assert.Equal(t, ceilRatio(weightSum, 0.5), p.Capacity)
}

func TestGenerateExplicitCapacityOverridesRatio(t *testing.T) {
	opts := baseOptions()
	opts.Correlation = None
	capacity := uint64(12345)
	opts.Capacity = &capacity
	rng := rand.New(rand.NewSource(5))

	p, err := Generate(opts, rng)
	require.NoError(t, err)
	assert.Equal(t, capacity, p.Capacity)
}

func TestGenerateRejectsEmptyBounds(t *testing.T) {
	opts := baseOptions()
	opts.WeightUpperBound = opts.WeightLowerBound

	_, err := Generate(opts, rand.New(rand.NewSource(6)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestGeneratedProblemIsSolvable(t *testing.T) {
	opts := baseOptions()
	opts.Correlation = None
	opts.ItemCount = 15
	rng := rand.New(rand.NewSource(7))

	p, err := Generate(opts, rng)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}
