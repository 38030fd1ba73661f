package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

// Metrics tracks HTTP traffic and the outcome of every scoring operation.
// It owns its registry so the /metrics endpoint exposes only these series.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	operations   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scoreboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scoreboard",
			Name:      "operations_total",
			Help:      "Scoring operations by name and outcome.",
		}, []string{"operation", "outcome"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Operation records one scoring-engine call and whether it changed state.
func (m *Metrics) Operation(name string, outcome scoreboard.Outcome) {
	label := "applied"
	if outcome == scoreboard.Ignored {
		label = "ignored"
	}
	m.operations.WithLabelValues(name, label).Inc()
}

func (m *Metrics) collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		m.httpRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.Status())).Inc()
	})
}
