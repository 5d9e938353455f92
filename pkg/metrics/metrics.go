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

	// Enrichment business metrics
	ContactsEnriched prometheus.Counter
	ContactsFailed   prometheus.Counter
	SourceFailures   *prometheus.CounterVec
	BatchesStarted   prometheus.Counter
	BatchesCompleted prometheus.Counter
	EnrichDuration   prometheus.Histogram
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ContactsEnriched: promauto.NewCounter(prometheus.CounterOpts{
			Name: "enrichment_contacts_enriched_total",
			Help: "Contacts enriched successfully",
		}),
		ContactsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "enrichment_contacts_failed_total",
			Help: "Contacts that failed enrichment",
		}),
		SourceFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrichment_source_failures_total",
				Help: "Per-source enrichment call failures",
			},
			[]string{"source"},
		),
		BatchesStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "enrichment_batches_started_total",
			Help: "Enrichment batches started",
		}),
		BatchesCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "enrichment_batches_completed_total",
			Help: "Enrichment batches that reached a terminal status",
		}),
		EnrichDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "enrichment_contact_duration_seconds",
			Help:    "Wall-clock time spent enriching one contact",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		}),
	}
}

// Middleware returns an echo middleware that records request metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
