package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemValidate(t *testing.T) {
	cases := []struct {
		name    string
		problem Problem
		wantErr bool
	}{
		{
			name:    "zero capacity rejected",
			problem: Problem{Items: []Item{{ID: 0, Value: 1, Weight: 1}}, Capacity: 0},
			wantErr: true,
		},
		{
			name:    "zero weight item rejected",
			problem: Problem{Items: []Item{{ID: 0, Value: 1, Weight: 0}}, Capacity: 5},
			wantErr: true,
		},
		{
			name:    "valid problem accepted",
			problem: Problem{Items: []Item{{ID: 0, Value: 1, Weight: 1}}, Capacity: 5},
			wantErr: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.problem.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateSolution(t *testing.T) {
	p := Problem{
		Items:    []Item{{ID: 0, Value: 10, Weight: 5}, {ID: 1, Value: 6, Weight: 4}},
		Capacity: 7,
	}

	t.Run("consistent solution passes", func(t *testing.T) {
		sol := Solution{Decision: []bool{false, true}, Value: 6, Weight: 4}
		assert.NoError(t, validateSolution(p, sol))
	})

	t.Run("wrong decision length rejected", func(t *testing.T) {
		sol := Solution{Decision: []bool{false}, Value: 0, Weight: 0}
		err := validateSolution(p, sol)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSolutionInvalid)
	})

	t.Run("mismatched value rejected", func(t *testing.T) {
		sol := Solution{Decision: []bool{true, false}, Value: 999, Weight: 5}
		err := validateSolution(p, sol)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSolutionInvalid)
	})

	t.Run("overweight solution rejected", func(t *testing.T) {
		sol := Solution{Decision: []bool{true, true}, Value: 16, Weight: 9}
		err := validateSolution(p, sol)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSolutionInvalid)
	})
}
