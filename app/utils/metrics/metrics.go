// Package metrics provides Prometheus metrics for the provisioning service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProvisionTotal counts provisioning attempts by operation and outcome.
	ProvisionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "school_admin",
			Name:      "provision_total",
			Help:      "Total number of provisioning attempts",
		},
		[]string{"operation", "outcome"},
	)

	// ProvisionDuration measures provisioning saga duration.
	ProvisionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "school_admin",
			Name:      "provision_duration_seconds",
			Help:      "Duration of provisioning sagas in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// CompensationTotal counts compensating actions by step and result.
	CompensationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "school_admin",
			Name:      "compensation_total",
			Help:      "Total number of compensating actions run after a failed saga step",
		},
		[]string{"step", "result"},
	)

	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "school_admin",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// RecordProvision records a completed provisioning attempt.
func RecordProvision(operation, outcome string, start time.Time) {
	ProvisionTotal.WithLabelValues(operation, outcome).Inc()
	ProvisionDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordCompensation records one compensating action.
func RecordCompensation(step, result string) {
	CompensationTotal.WithLabelValues(step, result).Inc()
}
