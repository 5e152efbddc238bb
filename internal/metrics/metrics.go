// Package metrics exposes request counters and latencies in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the collectors of one server instance.
type Registry struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "household",
			Name:      "http_requests_total",
			Help:      "Handled API requests by operation and status code.",
		}, []string{"operation", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "household",
			Name:      "http_request_duration_seconds",
			Help:      "API request latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	r.registry.MustRegister(
		r.requests,
		r.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Middleware records every huma operation call.
func (r *Registry) Middleware(ctx huma.Context, next func(huma.Context)) {
	operation := "unknown"
	if op := ctx.Operation(); op != nil {
		operation = op.OperationID
	}

	start := time.Now()
	next(ctx)

	r.latency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	r.requests.WithLabelValues(operation, strconv.Itoa(ctx.Status())).Inc()
}

// Handler serves the exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
