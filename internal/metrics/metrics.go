// Package metrics exposes Prometheus collectors for determinant computations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeUnknownMethod = "unknown_method"
)

// Metrics owns a private registry so several servers (and tests) can coexist
// in one process.
type Metrics struct {
	registry     *prometheus.Registry
	computations *prometheus.CounterVec
	orders       *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detrace_computations_total",
				Help: "Total number of determinant computations by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		orders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detrace_matrix_order_total",
				Help: "Successful computations by matrix order",
			},
			[]string{"order"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "detrace_computation_duration_seconds",
				Help:    "Duration of determinant computations",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"method"},
		),
	}
	m.registry.MustRegister(m.computations, m.orders, m.duration)

	return m
}

// Observe records one computation. order and elapsed are ignored unless
// outcome is OutcomeOK and order is positive.
func (m *Metrics) Observe(method, outcome string, order int, elapsed time.Duration) {
	m.computations.WithLabelValues(method, outcome).Inc()
	if outcome == OutcomeOK && order > 0 {
		m.orders.WithLabelValues(strconv.Itoa(order)).Inc()
		m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
