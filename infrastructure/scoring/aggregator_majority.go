package scoring

import (
	"fmt"

	"github.com/ahrav/go-lmscore/internal/domain"
)

// MajorityVoteAggregator selects the most frequent score in the input.
// When several scores tie for the highest frequency, the smallest tied
// value wins, which keeps the result independent of input order.
type MajorityVoteAggregator struct{}

// Compile-time interface check.
var _ domain.Aggregator = (*MajorityVoteAggregator)(nil)

// NewMajorityVoteAggregator creates a majority-vote aggregator.
func NewMajorityVoteAggregator() *MajorityVoteAggregator {
	return &MajorityVoteAggregator{}
}

// Aggregate returns the modal score, resolving frequency ties to the
// smallest tied value. A single-element input is returned unchanged.
func (a *MajorityVoteAggregator) Aggregate(scores []domain.Score) (domain.Score, error) {
	if len(scores) == 0 {
		return 0, ErrNoScores
	}

	var counts [int(domain.MaxScore) + 1]int
	for i, s := range scores {
		if !s.IsValid() {
			return 0, fmt.Errorf("score %d at index %d is outside [%d, %d]",
				s, i, domain.MinScore, domain.MaxScore)
		}
		counts[s]++
	}

	// Ascending scan: strict inequality keeps the smallest value among
	// equally frequent scores.
	best := domain.MinScore
	bestCount := 0
	for v := domain.MinScore; v <= domain.MaxScore; v++ {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best, nil
}
