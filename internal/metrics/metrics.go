// Package metrics exposes Prometheus instrumentation for the HTTP layer and the analysis pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns all application metrics.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	analyses        *prometheus.CounterVec
	upstreamErrors  *prometheus.CounterVec
	upstreamLatency prometheus.Histogram
	rateLimited     prometheus.Counter
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calorie_tracker_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "calorie_tracker_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calorie_tracker_analyses_total",
			Help: "Food analyses by outcome",
		}, []string{"outcome"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calorie_tracker_upstream_errors_total",
			Help: "Failed completion calls by error kind",
		}, []string{"kind"}),
		upstreamLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "calorie_tracker_upstream_latency_seconds",
			Help:    "Latency of completion calls",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calorie_tracker_rate_limited_total",
			Help: "Requests rejected by the analyze rate limiter",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.analyses,
		c.upstreamErrors,
		c.upstreamLatency,
		c.rateLimited,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordAnalysis counts one analysis; outcome is "ok", "degraded" or "failed".
func (c *Collector) RecordAnalysis(outcome string) {
	c.analyses.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordUpstreamError(kind string) {
	c.upstreamErrors.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordUpstreamLatency(duration time.Duration) {
	c.upstreamLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// Handler serves the exposition format for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
