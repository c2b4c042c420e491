// Package metrics exports widget activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

const namespace = "quickfind"

// Metrics implements widget.Observer. One instance can be shared by many
// widgets.
type Metrics struct {
	registry *prometheus.Registry

	queries      prometheus.Counter
	matches      prometheus.Histogram
	facetMatches *prometheus.GaugeVec
	phases       *prometheus.CounterVec
	visibility   *prometheus.CounterVec
	tabs         *prometheus.CounterVec
	toggles      *prometheus.CounterVec
	sessions     prometheus.Gauge
	reloads      *prometheus.CounterVec
}

// New creates the metrics on a private registry. Go and process collectors
// are included when withRuntime is set.
func New(withRuntime bool) *Metrics {
	registry := prometheus.NewRegistry()
	if withRuntime {
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		queries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Query texts submitted to the widget",
		}),
		matches: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "matched_items",
			Help:      "Items matched per computed view",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		facetMatches: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_matches",
			Help:      "Matches per tab in the most recent view",
		}, []string{"tab"}),
		phases: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_phase_transitions_total",
			Help:      "Search phase transitions",
		}, []string{"from", "to"}),
		visibility: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "visibility_transitions_total",
			Help:      "Results surface visibility transitions",
		}, []string{"from", "to"}),
		tabs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tab_selections_total",
			Help:      "Tab selections, split by whether the tab was valid",
		}, []string{"tab", "valid"}),
		toggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "facet_toggles_total",
			Help:      "Facet toggles by resulting state",
		}, []string{"facet", "enabled"}),
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Open WebSocket widget sessions",
		}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog reloads by outcome",
		}, []string{"outcome"}),
	}
}

// Registry returns the registry holding every metric
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) QuerySubmitted(string) {
	m.queries.Inc()
}

func (m *Metrics) ResultsComputed(counts models.Counts) {
	m.matches.Observe(float64(counts.All))
	for _, tab := range models.Tabs {
		m.facetMatches.WithLabelValues(string(tab)).Set(float64(counts.Get(tab)))
	}
}

func (m *Metrics) SearchPhaseChanged(from, to models.SearchPhase) {
	m.phases.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) VisibilityChanged(from, to models.VisibilityPhase) {
	m.visibility.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) TabSelected(tab models.Tab, valid bool) {
	label := string(tab)
	if !valid {
		// keep label cardinality bounded
		label = "invalid"
	}
	m.tabs.WithLabelValues(label, boolLabel(valid)).Inc()
}

func (m *Metrics) FacetToggled(facet models.FacetKey, enabled bool) {
	m.toggles.WithLabelValues(string(facet), boolLabel(enabled)).Inc()
}

// SessionOpened and SessionClosed track live WebSocket sessions
func (m *Metrics) SessionOpened() { m.sessions.Inc() }
func (m *Metrics) SessionClosed() { m.sessions.Dec() }

// CatalogReloaded records a catalog hot reload
func (m *Metrics) CatalogReloaded(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.reloads.WithLabelValues(outcome).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
