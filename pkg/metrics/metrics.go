package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	CallsForwarded   *prometheus.CounterVec
	LeadsRecorded    prometheus.Counter
	NumberSearches   *prometheus.CounterVec
	NumbersPurchased *prometheus.CounterVec

	// Provider metrics
	ProviderRequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		CallsForwarded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calls_forwarded_total",
				Help: "Inbound call webhooks by outcome",
			},
			[]string{"result"}, // dialed, no_forwarding_number, unknown_number, error
		),
		LeadsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "leads_recorded_total",
			Help: "Total number of leads recorded from inbound calls",
		}),
		NumberSearches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "number_searches_total",
				Help: "Available number searches by outcome",
			},
			[]string{"result"}, // found, empty, invalid, error
		),
		NumbersPurchased: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numbers_purchased_total",
				Help: "Number purchases by outcome",
			},
			[]string{"result"}, // success, invalid, failed
		),

		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "provider_request_duration_seconds",
				Help:    "Telephony provider API latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"operation"}, // search, purchase, application
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, e.g. /lead-sources/:id/edit

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordCallForwarded increments the webhook outcome counter
func (m *Metrics) RecordCallForwarded(result string) {
	m.CallsForwarded.WithLabelValues(result).Inc()
}

// RecordLeadRecorded increments leads recorded counter
func (m *Metrics) RecordLeadRecorded() {
	m.LeadsRecorded.Inc()
}

// RecordNumberSearch increments the search outcome counter
func (m *Metrics) RecordNumberSearch(result string) {
	m.NumberSearches.WithLabelValues(result).Inc()
}

// RecordNumberPurchase increments the purchase outcome counter
func (m *Metrics) RecordNumberPurchase(result string) {
	m.NumbersPurchased.WithLabelValues(result).Inc()
}

// ObserveProvider records how long a provider call took
func (m *Metrics) ObserveProvider(operation string, duration time.Duration) {
	m.ProviderRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
