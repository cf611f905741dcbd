package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pipeline_stage_duration_seconds",
			Help: "Duration of pipeline stage processing in seconds",
		},
		[]string{"stage"},
	)

	StageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_stage_failures_total",
			Help: "Total number of pipeline stage failures",
		},
		[]string{"stage", "error_code"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_cache_hits_total",
			Help: "Total number of cache hits per region",
		},
		[]string{"region"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_cache_misses_total",
			Help: "Total number of cache misses per region",
		},
		[]string{"region"},
	)

	FallbackActivations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fallback_activations_total",
			Help: "Total number of fallback activations per tier",
		},
		[]string{"tier"},
	)

	CompletionCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_calls_total",
			Help: "Total number of completion backend calls by outcome",
		},
		[]string{"outcome"},
	)
)
