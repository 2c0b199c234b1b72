package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var durationBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5}

// Metrics tracks expansion outcomes and request latency. It registers on
// its own registry so several servers can coexist in one process.
type Metrics struct {
	Registry        *prometheus.Registry
	Expansions      *prometheus.CounterVec
	ExpandDuration  prometheus.Histogram
	BatchSize       prometheus.Histogram
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates a registry with every goseries metric registered.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		Expansions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "goseries_expansions_total",
			Help: "Series expansions by outcome (ok, invalid, unsupported, undefined)",
		}, []string{"outcome"}),
		ExpandDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goseries_expand_duration_seconds",
			Help:    "Duration of single series expansions",
			Buckets: durationBuckets,
		}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goseries_batch_jobs",
			Help:    "Number of jobs per batch request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "goseries_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: durationBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveExpand records one expansion. Call with time.Now() at the start.
func (m *Metrics) ObserveExpand(start time.Time, outcome string) {
	m.Expansions.WithLabelValues(outcome).Inc()
	m.ExpandDuration.Observe(time.Since(start).Seconds())
}
