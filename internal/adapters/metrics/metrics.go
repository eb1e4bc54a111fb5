// Package metrics publishes HTTP and record counters on a private
// Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zoo"

// Recorder owns the registry and every collector exposed by the service.
type Recorder struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	recordsCreated  *prometheus.CounterVec
}

// NewRecorder registers the service collectors together with the Go runtime
// and process collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests handled, by method, route and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		recordsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Records appended to a backing file, by kind.",
		}, []string{"kind"}),
	}

	registry.MustRegister(
		r.requests,
		r.requestDuration,
		r.recordsCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Recorder) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Recorder) RecordCreated(kind string) {
	r.recordsCreated.WithLabelValues(kind).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
