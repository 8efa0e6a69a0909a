// Package metrics provides Prometheus metrics for client record intake.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// Metrics contains the intake counters.
type Metrics struct {
	ConstructionsTotal *prometheus.CounterVec // Constructions by kind, input shape and outcome
	RejectionsTotal    *prometheus.CounterVec // Rejections by kind and error code
	MergesTotal        *prometheus.CounterVec // Merge attempts by outcome
}

// New creates the intake metrics and registers them with reg.
// A nil reg registers with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ConstructionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clientrec_constructions_total",
			Help: "Total number of record constructions by kind, input shape and outcome",
		}, []string{"kind", "shape", "outcome"}),

		RejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clientrec_rejections_total",
			Help: "Total number of rejected constructions by kind and error code",
		}, []string{"kind", "code"}),

		MergesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clientrec_merges_total",
			Help: "Total number of record merges by outcome",
		}, []string{"outcome"}),
	}
}

// RecordConstructed counts a successful construction.
func (m *Metrics) RecordConstructed(kind, shape string) {
	m.ConstructionsTotal.WithLabelValues(kind, shape, OutcomeOK).Inc()
}

// RecordRejected counts a failed construction and its error code.
func (m *Metrics) RecordRejected(kind, shape, code string) {
	m.ConstructionsTotal.WithLabelValues(kind, shape, OutcomeRejected).Inc()
	m.RejectionsTotal.WithLabelValues(kind, code).Inc()
}

// RecordMerge counts a merge attempt.
func (m *Metrics) RecordMerge(ok bool) {
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeRejected
	}
	m.MergesTotal.WithLabelValues(outcome).Inc()
}
