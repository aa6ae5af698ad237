package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/dentsim/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the simulator's collectors.
type Metrics struct {
	reg prometheus.Gatherer

	dispatches  *prometheus.CounterVec
	duration    prometheus.Histogram
	steps       *prometheus.CounterVec
	diagnostics *prometheus.CounterVec

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. Passing a fresh
// prometheus.NewRegistry keeps tests isolated from the global registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		reg: reg,
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dentsim_dispatches_total",
			Help: "Actions dispatched, by kind and whether they changed state.",
		}, []string{"kind", "applied"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dentsim_dispatch_duration_seconds",
			Help:    "Time spent applying one action, including store round trips.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dentsim_steps_verified_total",
			Help: "Assessment steps completed, by module.",
		}, []string{"module"}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dentsim_diagnostics_total",
			Help: "Skipped transitions, by kind and code.",
		}, []string{"kind", "code"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dentsim_http_requests_total",
			Help: "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dentsim_http_request_duration_seconds",
			Help:    "HTTP request duration.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.dispatches, m.duration, m.steps, m.diagnostics, m.requests, m.requestDuration)
	return m
}

// Hooks records lifecycle events.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) {
			m.dispatches.WithLabelValues(string(e.Outcome.Kind), strconv.FormatBool(e.Outcome.Applied)).Inc()
			m.duration.Observe(e.Duration.Seconds())
		},
		OnStepVerified: func(_ context.Context, e *domain.StepEvent) {
			m.steps.WithLabelValues(strconv.Itoa(e.Cell.Module)).Inc()
		},
		OnDiagnostic: func(_ context.Context, e *domain.DiagnosticEvent) {
			m.diagnostics.WithLabelValues(string(e.Kind), string(e.Diagnostic.Code)).Inc()
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Middleware counts requests by chi route pattern, which keeps session ids
// out of the label values.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
