// Package middleware provides cross-cutting concerns for the scoring
// engine.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-lmscore/internal/ports"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It tracks inference traffic, token consumption, parse
// fallbacks, and the distribution of final scores.
type PrometheusMetrics struct {
	requestLatency *prometheus.HistogramVec
	requestCounter *prometheus.CounterVec
	tokensUsed     *prometheus.CounterVec
	parseFallbacks prometheus.Counter
	scoreResults   *prometheus.HistogramVec
	genericCounter *prometheus.CounterVec
	systemGauges   *prometheus.GaugeVec
}

// Compile-time verification that PrometheusMetrics implements
// MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates a PrometheusMetrics instance and
// registers all metrics in the given registry. Passing nil registers
// in the global default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		requestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "llm_latency_seconds",
				Help:    "Wall-clock duration of individual inference calls.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "model", "status"},
		),
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_requests_total",
				Help: "Total inference calls by outcome.",
			},
			[]string{"provider", "model", "status"},
		),
		tokensUsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_tokens_total",
				Help: "Total tokens consumed across all inference calls.",
			},
			[]string{"provider", "model", "token_type"},
		),
		parseFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "score_parse_fallbacks_total",
				Help: "Responses containing no parseable integer, scored neutrally.",
			},
		),
		scoreResults: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lm_score_result",
				Help:    "Distribution of final scores returned to callers.",
				Buckets: prometheus.LinearBuckets(0, 1, 11),
			},
			[]string{"model"},
		),
		genericCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoring_operations_total",
				Help: "Miscellaneous scoring operations by name.",
			},
			[]string{"operation"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "scoring_system_state",
				Help: "Current system state values for the scoring engine.",
			},
			[]string{"metric"},
		),
	}
}

// RecordLatency records execution latency under the operation's status
// labels.
func (pm *PrometheusMetrics) RecordLatency(
	operation string, duration time.Duration, labels map[string]string,
) {
	pm.requestLatency.WithLabelValues(
		labels["provider"], labels["model"], operation,
	).Observe(duration.Seconds())
}

// RecordCounter increments the Prometheus counter matching the metric
// name. Unrecognized names land in the generic operations counter so
// no signal is silently dropped.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case "llm_requests_total":
		pm.requestCounter.WithLabelValues(
			labels["provider"], labels["model"], labels["status"],
		).Add(value)
	case "llm_tokens_total":
		pm.tokensUsed.WithLabelValues(
			labels["provider"], labels["model"], labels["token_type"],
		).Add(value)
	case "score_parse_fallbacks_total":
		pm.parseFallbacks.Add(value)
	default:
		pm.genericCounter.WithLabelValues(metric).Add(value)
	}
}

// RecordGauge sets the system state gauge for the metric.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.systemGauges.WithLabelValues(metric).Set(value)
}

// RecordHistogram records the value in the histogram matching the
// metric name.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case "lm_score_result":
		pm.scoreResults.WithLabelValues(labels["model"]).Observe(value)
	default:
		pm.requestLatency.WithLabelValues(
			labels["provider"], labels["model"], labels["status"],
		).Observe(value)
	}
}
