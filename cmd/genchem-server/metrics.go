package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's Prometheus collectors. Each Server owns its
// registry so tests can build several servers in one process.
type metrics struct {
	registry *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	throttled   prometheus.Counter
	stored      prometheus.Gauge
	reactions   prometheus.Histogram
	buildTiming prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "genchem_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "genchem_http_request_duration_seconds",
			Help:    "HTTP request duration by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		throttled: factory.NewCounter(prometheus.CounterOpts{
			Name: "genchem_throttled_requests_total",
			Help: "Generation requests rejected by the rate limiter",
		}),
		stored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "genchem_chemistries",
			Help: "Chemistries currently held in memory",
		}),
		reactions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "genchem_reactions_per_chemistry",
			Help:    "Size of built reaction sets",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		buildTiming: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "genchem_build_duration_seconds",
			Help:    "Time spent building a chemistry's reaction set",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request count and latency for route.
func (m *metrics) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		m.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
