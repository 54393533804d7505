// Package scoring implements the LM_SCORE pipeline: deterministic
// prompt construction, response parsing with a neutral fallback, score
// aggregation, and the engine that sequences inference calls.
package scoring

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// AggregationPolicy selects how ensemble scores are combined into one
// final score.
type AggregationPolicy string

// Supported aggregation policies.
const (
	// AggregationMajority picks the most frequent score; ties resolve
	// to the smallest tied value for determinism.
	AggregationMajority AggregationPolicy = "majority"

	// AggregationAverage takes the arithmetic mean rounded half up.
	AggregationAverage AggregationPolicy = "average"
)

// Common errors returned by aggregators and the engine.
var (
	// ErrNoScores is returned when aggregation receives an empty input.
	ErrNoScores = errors.New("no scores provided for aggregation")

	// ErrUnknownAggregation is returned for an unrecognized policy.
	ErrUnknownAggregation = errors.New("unknown aggregation policy")
)

// Package-level validator for configuration structs.
var validate = validator.New()
