package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "contratia"

// API holds the operation counters exposed on /metrics: contract
// submissions, document exports, and suggestion calls.
type API struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	exports     *prometheus.CounterVec
	suggestions *prometheus.CounterVec
}

// NewAPI builds the counters on a private registry so tests can create
// as many instances as they need without duplicate registration panics.
func NewAPI() *API {
	m := &API{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Contract submissions by service kind and outcome.",
		}, []string{"kind", "outcome"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_exports_total",
			Help:      "Rendered documents by output format.",
		}, []string{"format"}),
		suggestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_total",
			Help:      "Suggestion proxy calls by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.submissions, m.exports, m.suggestions)
	return m
}

func (m *API) ObserveSubmission(kind, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(kind, outcome).Inc()
}

func (m *API) ObserveExport(format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format).Inc()
}

func (m *API) ObserveSuggestion(outcome string) {
	if m == nil {
		return
	}
	m.suggestions.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *API) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
