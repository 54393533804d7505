package domain

// Aggregator combines the scores of an ensemble run into one final
// score. Implementations provide different combination policies such as
// majority voting or arithmetic averaging.
//
// Aggregation must be order-independent: ensemble members are issued
// sequentially, but their sequence carries no meaning, so a future
// concurrent dispatcher must not change results.
type Aggregator interface {
	// Aggregate combines one or more valid scores into a single score.
	// A single-element input returns that element unchanged under any
	// policy. An empty input is an error.
	Aggregate(scores []Score) (Score, error)
}
