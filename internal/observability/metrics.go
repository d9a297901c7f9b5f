// Package observability provides prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and resource.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adboard_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "resource"})

	// EntitiesCreated counts successfully created entities by resource.
	EntitiesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adboard_entities_created_total",
		Help: "Total number of entities created by resource",
	}, []string{"resource"})

	// EntitiesDeleted counts deleted entities by resource.
	EntitiesDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adboard_entities_deleted_total",
		Help: "Total number of entities deleted by resource",
	}, []string{"resource"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, resource string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, resource).Observe(time.Since(start).Seconds())
	}
}
