package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes recorded by the content client.
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status"
	OutcomeTransport = "transport"
	OutcomeDecode    = "decode"
)

// Widget render outcomes.
const (
	OutcomeRendered = "rendered"
	OutcomeFallback = "fallback"
)

// Metrics groups the collectors used across the site.
type Metrics struct {
	ContentFetches *prometheus.CounterVec
	WidgetRenders  *prometheus.CounterVec
	ContentServed  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg when reg is
// non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ContentFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studioweb",
			Name:      "content_fetches_total",
			Help:      "Content document fetches by outcome.",
		}, []string{"outcome"}),
		WidgetRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studioweb",
			Name:      "widget_renders_total",
			Help:      "Rendered widgets by declared type and outcome.",
		}, []string{"widget_type", "outcome"}),
		ContentServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studioweb",
			Name:      "content_server_requests_total",
			Help:      "Content server lookups by HTTP status.",
		}, []string{"status"}),
	}
	if reg != nil {
		reg.MustRegister(m.ContentFetches, m.WidgetRenders, m.ContentServed)
	}
	return m
}
