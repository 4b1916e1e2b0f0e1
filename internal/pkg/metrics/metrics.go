// Package metrics holds the Prometheus collectors of the catalog service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// Metrics tracks request and degradation counters.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	// RequestsTotal counts requests by transport, operation and outcome
	RequestsTotal *prometheus.CounterVec

	// RequestDuration tracks request latency by transport and operation
	RequestDuration *prometheus.HistogramVec

	// DegradedTotal counts recovered failures by stage
	DegradedTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_requests_total",
				Help: "Total number of catalog requests by transport, operation and outcome",
			},
			[]string{"transport", "operation", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_request_duration_seconds",
				Help:    "Time spent processing catalog requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"transport", "operation"},
		),
		DegradedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_degraded_total",
				Help: "Total number of failures recovered by degrading the response, by stage",
			},
			[]string{"stage"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.DegradedTotal)
	return m
}

// NewDefault creates collectors on a fresh registry that also exposes Go and process metrics.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(transport, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(transport, operation, outcome).Inc()
	m.RequestDuration.WithLabelValues(transport, operation).Observe(elapsed.Seconds())
}

// Degraded records a failure that was recovered by degrading the response.
func (m *Metrics) Degraded(stage string) {
	if m == nil {
		return
	}
	m.DegradedTotal.WithLabelValues(stage).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
