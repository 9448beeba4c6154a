package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundOracleUpperBound(t *testing.T) {
	p := Problem{
		Items: []Item{
			{ID: 0, Value: 10, Weight: 5}, // efficiency 2.0
			{ID: 1, Value: 6, Weight: 4},  // efficiency 1.5
			{ID: 2, Value: 4, Weight: 3},  // efficiency 1.333
		},
		Capacity: 7,
	}
	reduced, err := newEfficiencyOrder(p)
	require.NoError(t, err)
	b := boundOracle{capacity: p.Capacity, efficiency: reduced.efficiency}

	t.Run("under capacity adds fractional next item", func(t *testing.T) {
		got := b.upperBound(5, 10, 0, 0)
		assert.Equal(t, uint64(13), got)
	})

	t.Run("under capacity at window end returns profit unchanged", func(t *testing.T) {
		got := b.upperBound(5, 10, 0, 2)
		assert.Equal(t, uint64(10), got)
	})

	t.Run("over capacity removes fractional item", func(t *testing.T) {
		got := b.upperBound(9, 16, 1, 2)
		assert.Equal(t, uint64(12), got)
	})

	t.Run("over capacity with no predecessor returns profit unchanged", func(t *testing.T) {
		got := b.upperBound(9, 16, 0, 2)
		assert.Equal(t, uint64(16), got)
	})

	t.Run("over capacity saturates at zero", func(t *testing.T) {
		got := b.upperBound(9, 2, 1, 2)
		assert.Equal(t, uint64(0), got)
	})
}
