// Package metrics collects and exposes Prometheus metrics for the
// scheduling API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the service-level counters.
type Collector struct {
	sessionsCreated    prometheus.Counter
	authFailures       *prometheus.CounterVec
	appointmentsBooked prometheus.Counter
	appointmentsActive prometheus.Counter
	verifyLatency      prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemed_sessions_created_total",
			Help: "Local sessions created after identity verification.",
		}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "telemed_auth_failures_total",
			Help: "Rejected authentication attempts by reason.",
		}, []string{"reason"}),
		appointmentsBooked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemed_appointments_booked_total",
			Help: "Appointments created.",
		}),
		appointmentsActive: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemed_appointments_started_total",
			Help: "Appointments moved to active status.",
		}),
		verifyLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "telemed_identity_verify_seconds",
			Help:    "Latency of identity provider verification calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.sessionsCreated,
		c.authFailures,
		c.appointmentsBooked,
		c.appointmentsActive,
		c.verifyLatency,
	)

	return c
}

func (c *Collector) RecordSessionCreated() {
	c.sessionsCreated.Inc()
}

func (c *Collector) RecordAuthFailure(reason string) {
	c.authFailures.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordAppointmentBooked() {
	c.appointmentsBooked.Inc()
}

func (c *Collector) RecordAppointmentStarted() {
	c.appointmentsActive.Inc()
}

func (c *Collector) RecordVerifyLatency(d time.Duration) {
	c.verifyLatency.Observe(d.Seconds())
}

// Handler returns the Prometheus scrape handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
