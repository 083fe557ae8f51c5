package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clearance_web"

// Metrics holds the web service's Prometheus collectors.
type Metrics struct {
	// LayoutRenders counts composed layouts by variant.
	LayoutRenders *prometheus.CounterVec
	// SessionResolutions counts resolved session states.
	SessionResolutions *prometheus.CounterVec
	// LogoutOutcomes counts logout results by outcome.
	LogoutOutcomes *prometheus.CounterVec
	// RequestDuration observes request latency by method and status.
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LayoutRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_renders_total",
			Help:      "Dashboard layouts composed, by variant.",
		}, []string{"variant"}),
		SessionResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_resolutions_total",
			Help:      "Session resolutions, by resulting state.",
		}, []string{"state"}),
		LogoutOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logout_outcomes_total",
			Help:      "Logout attempts, by outcome.",
		}, []string{"outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

// NewRegistry returns a fresh registry with the web collectors registered.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	return reg, NewMetrics(reg)
}

// ObserveLayout counts one composed layout. Safe on a nil receiver.
func (m *Metrics) ObserveLayout(variant string) {
	if m == nil {
		return
	}
	m.LayoutRenders.WithLabelValues(variant).Inc()
}

// ObserveSession counts one session resolution. Safe on a nil receiver.
func (m *Metrics) ObserveSession(state string) {
	if m == nil {
		return
	}
	m.SessionResolutions.WithLabelValues(state).Inc()
}

// ObserveLogout counts one logout outcome. Safe on a nil receiver.
func (m *Metrics) ObserveLogout(outcome string) {
	if m == nil {
		return
	}
	m.LogoutOutcomes.WithLabelValues(outcome).Inc()
}

// Handler exposes gatherer in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
