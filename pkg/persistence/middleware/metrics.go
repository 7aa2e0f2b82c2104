package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

type metricsMiddleware struct {
	next       ports.AutomatonStore
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetricsMiddleware counts store operations by outcome and times them.
// The collectors are registered with reg.
func NewMetricsMiddleware(reg prometheus.Registerer) Middleware {
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nfa_store_operations_total",
			Help: "Total number of automaton store operations",
		},
		[]string{"op", "result"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nfa_store_operation_duration_seconds",
			Help:    "Duration of automaton store operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	reg.MustRegister(operations, duration)

	return func(next ports.AutomatonStore) ports.AutomatonStore {
		return &metricsMiddleware{next: next, operations: operations, duration: duration}
	}
}

func (m *metricsMiddleware) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ports.ErrAutomatonNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	m.operations.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *metricsMiddleware) Save(ctx context.Context, name string, a *domain.Automaton) error {
	start := time.Now()
	err := m.next.Save(ctx, name, a)
	m.observe("save", start, err)
	return err
}

func (m *metricsMiddleware) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	start := time.Now()
	a, err := m.next.Load(ctx, name)
	m.observe("load", start, err)
	return a, err
}

func (m *metricsMiddleware) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := m.next.Delete(ctx, name)
	m.observe("delete", start, err)
	return err
}

func (m *metricsMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := m.next.List(ctx)
	m.observe("list", start, err)
	return names, err
}
