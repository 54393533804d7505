// Package domain contains the core value types and contracts of the
// lm-score engine: the bounded confidence Score, the aggregation
// contract for ensembled scoring, and the error taxonomy shared by the
// scoring pipeline.
package domain

// Score bounds define the closed confidence range produced by every
// scoring operation.
const (
	// MinScore is the lowest confidence value ("strongly no").
	MinScore Score = 0

	// MaxScore is the highest confidence value ("strongly yes").
	MaxScore Score = 10

	// NeutralScore is returned when a model response contains no
	// extractable integer. It represents maximal uncertainty, not a
	// failure; transport failures surface as errors instead.
	NeutralScore Score = 5
)

// Score is an integer confidence value in [0, 10] answering a yes/no
// question against supplied content. It is the only externally
// meaningful output type of the engine.
type Score int

// ClampScore restricts an arbitrary integer into the valid score range.
// Out-of-range model output ("10/10", stray digits, negatives) is
// clamped rather than rejected.
func ClampScore(v int) Score {
	if v < int(MinScore) {
		return MinScore
	}
	if v > int(MaxScore) {
		return MaxScore
	}
	return Score(v)
}

// IsValid reports whether the score lies within [MinScore, MaxScore].
func (s Score) IsValid() bool { return s >= MinScore && s <= MaxScore }
