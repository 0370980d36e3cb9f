package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder exports request events as Prometheus series.
type PrometheusRecorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	size     *prometheus.HistogramVec
}

// NewPrometheus registers the load-test series on a dedicated registry.
func NewPrometheus() *PrometheusRecorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusRecorder{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gatewayperf",
				Subsystem: "load",
				Name:      "requests_total",
				Help:      "Gateway requests issued by virtual users",
			},
			[]string{"method", "name", "outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gatewayperf",
				Subsystem: "load",
				Name:      "request_duration_seconds",
				Help:      "Gateway response time",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"method", "name", "outcome"},
		),
		size: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gatewayperf",
				Subsystem: "load",
				Name:      "response_size_bytes",
				Help:      "Gateway response size",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
			},
			[]string{"method", "name"},
		),
	}
}

// RecordRequest updates the counters and histograms for r.
func (p *PrometheusRecorder) RecordRequest(r Request) {
	outcome := "success"
	if r.Failed() {
		outcome = "failure"
	}
	p.requests.WithLabelValues(r.Type, r.Name, outcome).Inc()
	p.latency.WithLabelValues(r.Type, r.Name, outcome).Observe(r.ResponseTime.Seconds())
	if r.ResponseLength > 0 {
		p.size.WithLabelValues(r.Type, r.Name).Observe(float64(r.ResponseLength))
	}
}

// Registry exposes the underlying registry for tests and extra collectors.
func (p *PrometheusRecorder) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus text format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
