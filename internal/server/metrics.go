package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes the Prometheus surface for the HTTP server: an HTTP-level
// request counter, a per-operator/base compute counter, a compute-latency
// histogram, and an in-flight gauge. Each instance owns its own registry
// (rather than registering into the global DefaultRegisterer) so that
// multiple Metrics values can coexist in the same process, e.g. one per
// test, without a duplicate-registration panic.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	computesTotal   *prometheus.CounterVec
	computeDuration *prometheus.HistogramVec
	activeRequests  prometheus.Gauge
}

// NewMetrics builds a Metrics with a fresh registry, pre-populated with the
// standard Go and process collectors alongside the application's own
// metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bigradix_requests_total",
		Help: "Total number of HTTP requests, by method and path.",
	}, []string{"method", "path"})
	computesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bigradix_computes_total",
		Help: "Total number of compute operations, by operator and base.",
	}, []string{"op", "base"})
	computeDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bigradix_compute_duration_seconds",
		Help:    "Compute operation latency in seconds, by operator.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	activeRequests := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bigradix_active_requests",
		Help: "Number of HTTP requests currently being handled.",
	})

	registry.MustRegister(requestsTotal, computesTotal, computeDuration, activeRequests)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requestsTotal,
		computesTotal:   computesTotal,
		computeDuration: computeDuration,
		activeRequests:  activeRequests,
	}
}

// IncrementActiveRequests bumps the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests drops the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveCompute records one compute operation's operator, base, and
// latency.
func (m *Metrics) ObserveCompute(op byte, base int, d time.Duration) {
	opLabel := string(op)
	baseLabel := strconv.Itoa(base)
	m.computesTotal.WithLabelValues(opLabel, baseLabel).Inc()
	m.computeDuration.WithLabelValues(opLabel).Observe(d.Seconds())
}

// WritePrometheus serves the registry's metrics in the Prometheus exposition
// format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
