// Package metrics exposes Prometheus metrics for the share service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Share operation outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	shareOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_share_operations_total",
			Help: "Total share operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	sharePayloadBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_share_payload_bytes",
			Help:    "Aggregate payload size of created shares in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)

	registerOnce sync.Once
)

// Register registers the share metrics with the default registry.
// Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(shareOps, sharePayloadBytes)
	})
}

// RecordShareOp counts one share operation with its outcome.
func RecordShareOp(operation, outcome string) {
	shareOps.WithLabelValues(operation, outcome).Inc()
}

// RecordSharePayload observes the aggregate payload size of a created share.
func RecordSharePayload(bytes int64) {
	sharePayloadBytes.Observe(float64(bytes))
}
