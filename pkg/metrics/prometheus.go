// Package metrics provides Prometheus metrics for the match engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the match engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Matching metrics
	matchRequests    *prometheus.CounterVec
	rankingLatency   prometheus.Histogram
	emptyBestMatches prometheus.Counter

	// Validation metrics
	validationFailures prometheus.Counter

	// Catalog metrics
	catalogTrainers   prometheus.Gauge
	catalogActivities prometheus.Gauge
	catalogBindings   prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchengine",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_requests_total",
		Help:      "Total number of match/search requests by kind",
	}, []string{"kind"})

	m.rankingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_latency_milliseconds",
		Help:      "Histogram of filter+rank latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.emptyBestMatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "best_match_empty_total",
		Help:      "Total number of best-match requests with no eligible trainer",
	})

	m.validationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selection_validation_failures_total",
		Help:      "Total number of activity selections rejected by validation",
	})

	m.catalogTrainers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_trainers",
		Help:      "Number of trainers in the current catalog snapshot",
	})

	m.catalogActivities = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_activities",
		Help:      "Number of activities in the current catalog snapshot",
	})

	m.catalogBindings = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_bindings",
		Help:      "Number of package-activity bindings in the current catalog snapshot",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of HTTP errors by endpoint and type",
	}, []string{"endpoint", "method", "error_type"})
}

// GetRegistry returns the custom Prometheus registry for exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordMatchRequest increments the match request counter for a kind.
func RecordMatchRequest(kind string) {
	if globalManager.enabled {
		globalManager.matchRequests.WithLabelValues(kind).Inc()
	}
}

// RecordRankingLatency observes a filter+rank latency in milliseconds.
func RecordRankingLatency(ms float64) {
	if globalManager.enabled {
		globalManager.rankingLatency.Observe(ms)
	}
}

// RecordEmptyBestMatch increments the empty best-match counter.
func RecordEmptyBestMatch() {
	if globalManager.enabled {
		globalManager.emptyBestMatches.Inc()
	}
}

// RecordValidationFailure increments the rejected-selection counter.
func RecordValidationFailure() {
	if globalManager.enabled {
		globalManager.validationFailures.Inc()
	}
}

// SetCatalogSizes records the collection sizes of the current snapshot.
func SetCatalogSizes(trainerCount, activityCount, bindingCount int) {
	if globalManager.enabled {
		globalManager.catalogTrainers.Set(float64(trainerCount))
		globalManager.catalogActivities.Set(float64(activityCount))
		globalManager.catalogBindings.Set(float64(bindingCount))
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}

// RecordErrorByEndpoint increments the per-endpoint error counter.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}
