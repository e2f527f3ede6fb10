// Package metrics provides Prometheus metrics for the gamenight scoreboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the scoreboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Sheet ingestion metrics
	sheetFetches      *prometheus.CounterVec
	sheetFetchLatency prometheus.Histogram
	rowsParsed        prometheus.Counter
	rowsDropped       prometheus.Counter

	// Build metrics
	standingsBuildLatency prometheus.Histogram
	hallBuildLatency      prometheus.Histogram
	hallSplitsByStatus    *prometheus.GaugeVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gamenight",
		subsystem:        "scoreboard",
		histogramBuckets: prometheus.DefBuckets,
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

	m.sheetFetches = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "sheet_fetches_total",
			Help:      "Total number of score sheet fetches by outcome",
		},
		[]string{"outcome"},
	)

	m.sheetFetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sheet_fetch_latency_milliseconds",
		Help:      "Histogram of score sheet fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rowsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_parsed_total",
		Help:      "Total number of sheet rows parsed into score records",
	})

	m.rowsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_dropped_total",
		Help:      "Total number of malformed sheet rows dropped during parsing",
	})

	m.standingsBuildLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "standings_build_latency_milliseconds",
		Help:      "Time to build the current split standings in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.hallBuildLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hall_build_latency_milliseconds",
		Help:      "Time to build the full hall of fame in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.hallSplitsByStatus = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "hall_splits",
			Help:      "Number of splits in the last hall of fame build by status",
		},
		[]string{"status"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint, method, and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)
}

// Package-level helpers operating on the global manager.

// RecordSheetFetch counts one sheet fetch with its outcome
// ("ok", "not_found", or "error").
func RecordSheetFetch(outcome string) {
	globalManager.sheetFetches.WithLabelValues(outcome).Inc()
}

// RecordSheetFetchLatency records a sheet fetch round trip in milliseconds.
func RecordSheetFetchLatency(latencyMs float64) {
	globalManager.sheetFetchLatency.Observe(latencyMs)
}

// RecordRowsParsed counts rows that survived parsing.
func RecordRowsParsed(n int) {
	globalManager.rowsParsed.Add(float64(n))
}

// RecordRowsDropped counts malformed rows dropped during parsing.
func RecordRowsDropped(n int) {
	globalManager.rowsDropped.Add(float64(n))
}

// RecordStandingsBuildLatency records a standings build in milliseconds.
func RecordStandingsBuildLatency(latencyMs float64) {
	globalManager.standingsBuildLatency.Observe(latencyMs)
}

// RecordHallBuildLatency records a hall of fame build in milliseconds.
func RecordHallBuildLatency(latencyMs float64) {
	globalManager.hallBuildLatency.Observe(latencyMs)
}

// UpdateHallSplits sets the number of splits with a given status from the
// most recent hall of fame build.
func UpdateHallSplits(status string, count int) {
	globalManager.hallSplitsByStatus.WithLabelValues(status).Set(float64(count))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint counts one error with endpoint, method, and type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
