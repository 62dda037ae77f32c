// Package metrics exposes Prometheus instrumentation for the API.
package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can build independent
// collectors without double-registration panics.
type Collector struct {
	registry         *prometheus.Registry
	requestsTotal    *prometheus.CounterVec
	requestDuration  prometheus.Histogram
	snapshotsCreated prometheus.Counter
	rowsImported     prometheus.Counter
	logger           *slog.Logger
}

// NewCollector builds a collector with its own registry.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		requestsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests",
		}, []string{"method", "status"}),
		requestDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken to handle an HTTP request",
			Buckets: prometheus.DefBuckets,
		}),
		snapshotsCreated: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "balance_snapshots_created_total",
			Help: "Total number of balance snapshots written",
		}),
		rowsImported: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "statement_rows_imported_total",
			Help: "Total number of CSV statement rows imported",
		}),
		logger: logger,
	}
}

// RecordRequest counts one handled request and observes its duration.
func (c *Collector) RecordRequest(method string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// RecordSnapshotCreated counts one written balance snapshot.
func (c *Collector) RecordSnapshotCreated() {
	c.snapshotsCreated.Inc()
}

// RecordRowsImported counts CSV rows accepted by an import.
func (c *Collector) RecordRowsImported(n int) {
	c.rowsImported.Add(float64(n))
}

// Handler serves the collector's registry in Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
