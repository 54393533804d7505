package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-lmscore/internal/domain"
)

func TestMajorityVoteAggregate(t *testing.T) {
	tests := []struct {
		name     string
		scores   []domain.Score
		expected domain.Score
	}{
		{name: "clear majority", scores: []domain.Score{7, 7, 3}, expected: 7},
		{name: "tie resolves to smallest", scores: []domain.Score{2, 8}, expected: 2},
		{name: "three-way tie resolves to smallest", scores: []domain.Score{1, 5, 9}, expected: 1},
		{name: "single element identity", scores: []domain.Score{4}, expected: 4},
		{name: "order independent", scores: []domain.Score{3, 7, 7}, expected: 7},
		{name: "all identical", scores: []domain.Score{10, 10, 10}, expected: 10},
	}

	agg := NewMajorityVoteAggregator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := agg.Aggregate(tt.scores)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAverageAggregate(t *testing.T) {
	tests := []struct {
		name     string
		scores   []domain.Score
		expected domain.Score
	}{
		{name: "rounds half up", scores: []domain.Score{5, 6}, expected: 6},
		{name: "mean of three", scores: []domain.Score{4, 6, 7}, expected: 6},
		{name: "exact mean", scores: []domain.Score{2, 8}, expected: 5},
		{name: "single element identity", scores: []domain.Score{9}, expected: 9},
		{name: "rounds down below half", scores: []domain.Score{4, 5, 4}, expected: 4},
	}

	agg := NewAverageAggregator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := agg.Aggregate(tt.scores)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	for _, agg := range []domain.Aggregator{NewMajorityVoteAggregator(), NewAverageAggregator()} {
		_, err := agg.Aggregate(nil)
		assert.ErrorIs(t, err, ErrNoScores)
	}
}

func TestAggregateRejectsOutOfRangeScores(t *testing.T) {
	for _, agg := range []domain.Aggregator{NewMajorityVoteAggregator(), NewAverageAggregator()} {
		_, err := agg.Aggregate([]domain.Score{5, 11})
		assert.Error(t, err)
	}
}

func TestNewAggregator(t *testing.T) {
	majority, err := NewAggregator(AggregationMajority)
	require.NoError(t, err)
	assert.IsType(t, &MajorityVoteAggregator{}, majority)

	average, err := NewAggregator(AggregationAverage)
	require.NoError(t, err)
	assert.IsType(t, &AverageAggregator{}, average)

	_, err = NewAggregator("median")
	assert.ErrorIs(t, err, ErrUnknownAggregation)
}
