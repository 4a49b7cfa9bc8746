package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hindispell/internal/corrector"
)

// Metrics holds the collectors exported at /metrics.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	corrections prometheus.Counter
	tiers       *prometheus.CounterVec
	customWords prometheus.Gauge
}

// NewMetrics registers the collectors on a fresh registry together with the
// Go and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hindispell_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hindispell_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		corrections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hindispell_corrections_total",
				Help: "Tokens replaced by the corrector",
			},
		),
		tiers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hindispell_candidate_lookups_total",
				Help: "Candidate lookups by the tier that produced the result",
			},
			[]string{"tier"},
		),
		customWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hindispell_custom_words",
				Help: "Number of user-added dictionary words",
			},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.corrections, m.tiers, m.customWords,
	)
	return m
}

// ObserveTier counts one candidate lookup. Pass it as the service's tier hook.
func (m *Metrics) ObserveTier(t corrector.Tier) {
	m.tiers.WithLabelValues(t.String()).Inc()
}

func (m *Metrics) SetCustomWords(n int) {
	m.customWords.Set(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
