package scoring

import (
	"fmt"
	"math"

	"github.com/ahrav/go-lmscore/internal/domain"
)

// AverageAggregator combines scores by arithmetic mean, rounded half
// up to the nearest integer. 5.5 rounds to 6, matching the intuition
// that a leaning-positive ensemble should not be rounded down to
// uncertain.
type AverageAggregator struct{}

// Compile-time interface check.
var _ domain.Aggregator = (*AverageAggregator)(nil)

// NewAverageAggregator creates an averaging aggregator.
func NewAverageAggregator() *AverageAggregator {
	return &AverageAggregator{}
}

// Aggregate returns the mean of scores rounded half up. A
// single-element input is returned unchanged.
func (a *AverageAggregator) Aggregate(scores []domain.Score) (domain.Score, error) {
	if len(scores) == 0 {
		return 0, ErrNoScores
	}

	sum := 0
	for i, s := range scores {
		if !s.IsValid() {
			return 0, fmt.Errorf("score %d at index %d is outside [%d, %d]",
				s, i, domain.MinScore, domain.MaxScore)
		}
		sum += int(s)
	}

	mean := float64(sum) / float64(len(scores))
	return domain.ClampScore(int(math.Floor(mean + 0.5))), nil
}

// NewAggregator constructs the aggregator for the given policy.
func NewAggregator(policy AggregationPolicy) (domain.Aggregator, error) {
	switch policy {
	case AggregationMajority:
		return NewMajorityVoteAggregator(), nil
	case AggregationAverage:
		return NewAverageAggregator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAggregation, policy)
	}
}
