package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the manufacturing backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	PermissionCacheHitsTotal   prometheus.Counter
	PermissionCacheMissesTotal prometheus.Counter

	// Business Metrics
	PartsProducedTotal     prometheus.CounterVec
	PartsRecycledTotal     prometheus.Counter
	AircraftAssembledTotal prometheus.CounterVec
	AssemblyConflictsTotal prometheus.Counter
}

var (
	defaultOnce     sync.Once
	defaultRegistry *MetricsRegistry
)

// Default returns the process-wide registry. promauto registers against the
// global Prometheus registerer, so the metrics may only be created once per
// process.
func Default() *MetricsRegistry {
	defaultOnce.Do(func() {
		defaultRegistry = newMetricsRegistry()
	})
	return defaultRegistry
}

// newMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func newMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "manufacturing_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "manufacturing_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "manufacturing_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		PermissionCacheHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "manufacturing_permission_cache_hits_total",
				Help: "Total permission matrix lookups served from cache",
			},
		),
		PermissionCacheMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "manufacturing_permission_cache_misses_total",
				Help: "Total permission matrix lookups that went to the database",
			},
		),

		PartsProducedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "manufacturing_parts_produced_total",
				Help: "Total parts produced by part type",
			},
			[]string{"part_type"},
		),
		PartsRecycledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "manufacturing_parts_recycled_total",
				Help: "Total parts recycled before use",
			},
		),
		AircraftAssembledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "manufacturing_aircraft_assembled_total",
				Help: "Total aircraft assembled by aircraft type",
			},
			[]string{"aircraft_type"},
		),
		AssemblyConflictsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "manufacturing_assembly_conflicts_total",
				Help: "Total assemblies aborted because a part was consumed concurrently",
			},
		),
	}
}
