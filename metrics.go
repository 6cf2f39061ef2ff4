package sixpack

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes recorded by Metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeForced  = "forced"
)

// Metrics exports per-endpoint call counters and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered. Like promauto, it panics when the collectors
// are already registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sixpack",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Calls by endpoint and outcome (success, failure, forced).",
		}, []string{"endpoint", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sixpack",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls that reached the transport.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) observe(endpoint string, success bool, d time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if !success {
		outcome = OutcomeFailure
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *Metrics) observeForced() {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(EndpointParticipate, OutcomeForced).Inc()
}
