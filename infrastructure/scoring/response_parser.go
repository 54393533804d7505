package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/ahrav/go-lmscore/internal/domain"
	"github.com/ahrav/go-lmscore/internal/ports"
)

// integerPattern matches the first signed integer token in a response.
// The sign is honored so out-of-range negatives clamp to MinScore
// instead of being misread as positives.
var integerPattern = regexp.MustCompile(`-?\d+`)

// ResponseParser extracts a Score from raw model output. Parsing never
// fails: responses with no integer content produce NeutralScore so a
// single malformed ensemble member cannot abort an invocation. Fallback
// occurrences are counted and reported as a degraded-quality signal.
type ResponseParser struct {
	fallbacks atomic.Int64
	collector ports.MetricsCollector
}

// NewResponseParser creates a parser. The collector may be nil, in
// which case fallbacks are only tracked in-process.
func NewResponseParser(collector ports.MetricsCollector) *ResponseParser {
	return &ResponseParser{collector: collector}
}

// Parse returns the first integer found in raw, clamped to the valid
// score range, or NeutralScore when raw contains no integer at all.
//
// Leading prose is tolerated: "The score is 7" parses as 7, "8/10" as
// 8, and "-3" clamps to 0. An empty or purely textual response yields
// the neutral fallback.
func (p *ResponseParser) Parse(raw string) domain.Score {
	match := integerPattern.FindString(raw)
	if match == "" {
		p.recordFallback()
		return domain.NeutralScore
	}

	value, err := strconv.Atoi(match)
	if err != nil {
		// Overflow on an absurdly long digit run. Clamp by sign.
		if strings.HasPrefix(match, "-") {
			return domain.MinScore
		}
		return domain.MaxScore
	}

	return domain.ClampScore(value)
}

// FallbackCount reports how many responses contained no parseable
// integer since the parser was created.
func (p *ResponseParser) FallbackCount() int64 { return p.fallbacks.Load() }

func (p *ResponseParser) recordFallback() {
	p.fallbacks.Add(1)
	if p.collector != nil {
		p.collector.RecordCounter("score_parse_fallbacks_total", 1, nil)
	}
}
