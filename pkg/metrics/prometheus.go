// Package metrics provides Prometheus metrics for the SAW ranking dashboard.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Evaluation outcomes used as label values.
const (
	OutcomeScored   = "scored"
	OutcomeUnscored = "unscored"
	OutcomeError    = "error"
)

// Manager manages all Prometheus metrics for the dashboard.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Scoring
	evaluations       *prometheus.CounterVec
	evaluationLatency prometheus.Histogram
	scoredRecords     prometheus.Histogram
	degenerateColumns *prometheus.CounterVec
	exports           prometheus.Counter

	// Dataset
	datasetRecords     prometheus.Gauge
	datasetDepartments prometheus.Gauge
	datasetDropped     prometheus.Gauge
	datasetLoadLatency prometheus.Histogram

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sawboard",
		subsystem:        "ranking",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// RefreshInterval reports how often gauge updaters should run.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

func (m *Manager) initializeMetrics() { //nolint:funlen // flat list of metric definitions
	auto := promauto.With(m.registry)

	m.evaluations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_total",
		Help:      "Total number of ranking evaluations by outcome",
	}, []string{"outcome"})

	m.evaluationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluation_latency_milliseconds",
		Help:      "Time spent filtering, scoring and ranking one request",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50},
	})

	m.scoredRecords = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scored_records",
		Help:      "Number of records scored per evaluation",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	m.degenerateColumns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "degenerate_columns_total",
		Help:      "Criteria that were constant across the scored set",
	}, []string{"criterion"})

	m.exports = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exports_total",
		Help:      "Total number of CSV exports served",
	})

	m.datasetRecords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "dataset",
		Name:      "records",
		Help:      "Records kept after load-time cleaning",
	})

	m.datasetDepartments = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "dataset",
		Name:      "departments",
		Help:      "Distinct departments in the dataset",
	})

	m.datasetDropped = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "dataset",
		Name:      "dropped_rows",
		Help:      "Rows dropped at load time because of missing or invalid values",
	})

	m.datasetLoadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "dataset",
		Name:      "load_latency_milliseconds",
		Help:      "Time spent reading and cleaning the dataset",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "HTTP errors by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordEvaluation counts one evaluation and its latency.
func RecordEvaluation(outcome string, records int, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.evaluations.WithLabelValues(outcome).Inc()
	globalManager.evaluationLatency.Observe(latencyMs)
	if outcome == OutcomeScored {
		globalManager.scoredRecords.Observe(float64(records))
	}
}

// RecordDegenerateColumn counts a criterion that was constant across the scored set.
func RecordDegenerateColumn(criterion string) {
	if !globalManager.enabled {
		return
	}
	globalManager.degenerateColumns.WithLabelValues(criterion).Inc()
}

// RecordExport counts a CSV export.
func RecordExport() {
	if !globalManager.enabled {
		return
	}
	globalManager.exports.Inc()
}

// UpdateDataset publishes the dataset gauges.
func UpdateDataset(records, departments, dropped int) {
	globalManager.datasetRecords.Set(float64(records))
	globalManager.datasetDepartments.Set(float64(departments))
	globalManager.datasetDropped.Set(float64(dropped))
}

// RecordDatasetLoad records the time spent loading the dataset.
func RecordDatasetLoad(latencyMs float64) {
	globalManager.datasetLoadLatency.Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error for a specific endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage updates the system memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RefreshInterval reports how often the global gauge updaters should run.
func RefreshInterval() time.Duration {
	return globalManager.RefreshInterval()
}
