// Package observability exposes the Prometheus metrics surface.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the application's Prometheus metrics.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	documentsTotal *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	rendererUp     prometheus.Gauge
}

// NewMetrics initializes the registry and the base metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "uptowndocs_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "uptowndocs_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	documents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "uptowndocs_documents_generated_total",
		Help: "Generated documents by kind and language.",
	}, []string{"kind", "language"})
	render := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "uptowndocs_render_duration_seconds",
		Help:    "End-to-end document generation duration per kind.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16},
	}, []string{"kind"})
	rendererUp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "uptowndocs_renderer_up",
		Help: "Whether the last renderer health probe succeeded.",
	})
	registry.MustRegister(requests, duration, documents, render, rendererUp)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		documentsTotal:  documents,
		renderDuration:  render,
		rendererUp:      rendererUp,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records request metrics for every HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveDocument records one successfully generated document.
func (m *Metrics) ObserveDocument(kind, language string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.documentsTotal.WithLabelValues(kind, language).Inc()
	m.renderDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// SetRendererUp publishes the renderer health probe result.
func (m *Metrics) SetRendererUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.rendererUp.Set(1)
	} else {
		m.rendererUp.Set(0)
	}
}

// Registerer exposes the registry for custom metric registration.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
