// Package metrics exposes Prometheus counters for the matching engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records match outcomes. It satisfies the use case layer's
// MatchRecorder interface.
type Collector struct {
	matchesTotal  *prometheus.CounterVec
	reconcileRuns prometheus.Counter
	reconcileTime prometheus.Histogram
}

// New creates a Collector registered on the default registry.
func New() *Collector {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates a Collector registered on the given registerer.
// Tests pass a private registry to avoid duplicate registration panics.
func NewWithRegisterer(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		matchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankmatch_matches_total",
				Help: "Match decisions by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
		reconcileRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "bankmatch_reconcile_runs_total",
			Help: "Total number of reconciliation runs",
		}),
		reconcileTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankmatch_reconcile_duration_seconds",
			Help:    "Duration of reconciliation runs",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordMatch counts one match decision.
func (c *Collector) RecordMatch(direction, outcome string) {
	c.matchesTotal.WithLabelValues(direction, outcome).Inc()
}

// RecordReconcileRun counts one reconciliation run and its duration.
func (c *Collector) RecordReconcileRun(seconds float64) {
	c.reconcileRuns.Inc()
	c.reconcileTime.Observe(seconds)
}
