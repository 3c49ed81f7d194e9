package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Refresh Pipeline Metrics
	RefreshDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "country_refresh_duration_seconds",
			Help:    "Duration of complete refresh operations in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"outcome"}, // "success", "upstream_error", "internal_error"
	)

	RefreshStage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "country_refresh_stage",
			Help: "Current stage of the in-flight refresh (0 = idle)",
		},
	)

	RefreshJoined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "country_refresh_joined_total",
			Help: "Refresh calls whose result was shared with concurrent callers",
		},
	)

	ReconciledRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "country_reconciled_records_total",
			Help: "Records written by refresh reconciliation",
		},
		[]string{"action"}, // "insert", "update"
	)

	DroppedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "country_dropped_records_total",
			Help: "Raw country records dropped before merging (invalid name or population)",
		},
	)

	// Upstream Source Metrics
	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_fetch_duration_seconds",
			Help:    "Duration of upstream source fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "outcome"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "upstream_circuit_breaker_state",
			Help: "Circuit breaker state per source (0 = closed, 1 = half-open, 2 = open)",
		},
		[]string{"source"},
	)

	// Artifact Metrics
	ArtifactGenerationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_artifact_generation_failures_total",
			Help: "Summary image regenerations that failed after a committed refresh",
		},
	)

	ArtifactCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_artifact_cache_hits_total",
			Help: "Summary image reads served from the in-memory cache",
		},
	)

	ArtifactCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_artifact_cache_misses_total",
			Help: "Summary image reads that went to the artifact store",
		},
	)
)
