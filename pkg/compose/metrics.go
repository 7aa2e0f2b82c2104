package compose

import (
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by an Engine.
type Metrics struct {
	compositions *prometheus.CounterVec
	resultStates *prometheus.HistogramVec
	renamed      prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		compositions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nfa_compositions_total",
				Help: "Total number of automaton compositions",
			},
			[]string{"operation"},
		),
		resultStates: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nfa_composition_result_states",
				Help:    "Number of states in composed automata",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		renamed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nfa_renamed_states_total",
				Help: "Total number of operand states renamed to keep compositions disjoint",
			},
		),
	}
	reg.MustRegister(m.compositions, m.resultStates, m.renamed)
	return m
}

func (m *Metrics) observe(op Operation, res *domain.Automaton, renamed int) {
	m.compositions.WithLabelValues(string(op)).Inc()
	m.resultStates.WithLabelValues(string(op)).Observe(float64(res.StateCount()))
	m.renamed.Add(float64(renamed))
}
