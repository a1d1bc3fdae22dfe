package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBands(t *testing.T) {
	ok := []Band{
		{MinScore: 80, MaxScore: 100, Letter: "A+"},
		{MinScore: 70, MaxScore: 79, Letter: "A"},
		{MinScore: 0, MaxScore: 69, Letter: "F"},
	}
	assert.NoError(t, ValidateBands(ok))

	// Adjacent-but-touching ranges overlap on the shared score.
	touching := []Band{
		{MinScore: 70, MaxScore: 80, Letter: "A"},
		{MinScore: 80, MaxScore: 100, Letter: "A+"},
	}
	err := ValidateBands(touching)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")

	inverted := []Band{{MinScore: 90, MaxScore: 80, Letter: "X"}}
	err = ValidateBands(inverted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")

	outOfRange := []Band{{MinScore: 0, MaxScore: 101, Letter: "X"}}
	err = ValidateBands(outOfRange)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0-100")
}
