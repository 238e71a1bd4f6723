package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "athlete_dashboard"

// Metrics owns a registry and the collectors recorded by the dashboard.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	events       *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	initDuration *prometheus.HistogramVec
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	sessions     prometheus.Gauge
}

// New creates a registry with process and Go runtime collectors plus the
// dashboard collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry: reg,
		events: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_emitted_total",
				Help:      "Events published on the dashboard bus",
			},
			[]string{"event"},
		),
		transitions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feature_transitions_total",
				Help:      "Feature router state transitions by feature and resulting state",
			},
			[]string{"feature", "state"},
		),
		initDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "feature_init_duration_seconds",
				Help:      "Time spent in feature initialization",
				Buckets:   []float64{0.005, 0.025, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"feature"},
		),
		requests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		latency: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		sessions: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_sessions",
				Help:      "Users with a live feature router",
			},
		),
	}
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// EventEmitted counts a bus emission. Its signature matches events.Observer.
func (m *Metrics) EventEmitted(event string, _ int) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(event).Inc()
}

// FeatureTransition counts a router transition into state.
func (m *Metrics) FeatureTransition(feature, state string) {
	if m == nil {
		return
	}
	if feature == "" {
		feature = "none"
	}
	m.transitions.WithLabelValues(feature, state).Inc()
}

// ObserveInit records how long a feature took to initialize.
func (m *Metrics) ObserveInit(feature string, d time.Duration) {
	if m == nil {
		return
	}
	m.initDuration.WithLabelValues(feature).Observe(d.Seconds())
}

// SetSessions records the number of live sessions.
func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}

// Middleware records request counts and latency. Routes are labelled by their
// registered pattern so path parameters do not explode cardinality.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if status < fiber.StatusBadRequest {
				status = fiber.StatusInternalServerError
			}
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		method := c.Method()
		m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
