package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the lineage collectors.
type Metrics struct {
	buildDuration prometheus.Histogram
	nodes         prometheus.Gauge
	queries       *prometheus.CounterVec
	renders       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lineage_build_duration_seconds",
			Help:    "Duration of hierarchy builds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lineage_nodes",
			Help: "Number of nodes in the most recently built hierarchy",
		}),
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lineage_queries_total",
				Help: "Total number of hierarchy queries",
			},
			[]string{"op", "outcome"},
		),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lineage_renders_total",
				Help: "Total number of renders",
			},
			[]string{"format", "cache"},
		),
	}
	reg.MustRegister(m.buildDuration, m.nodes, m.queries, m.renders)
	return m
}

// ObserveBuild records one successful build.
func (m *Metrics) ObserveBuild(d time.Duration, nodes int) {
	if m == nil {
		return
	}
	m.buildDuration.Observe(d.Seconds())
	m.nodes.Set(float64(nodes))
}

// ObserveQuery counts one query by operation and outcome.
func (m *Metrics) ObserveQuery(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.queries.WithLabelValues(op, outcome).Inc()
}

// ObserveRender counts one render by format and whether it was served from cache.
func (m *Metrics) ObserveRender(format string, cached bool) {
	if m == nil {
		return
	}
	cache := "miss"
	if cached {
		cache = "hit"
	}
	m.renders.WithLabelValues(format, cache).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
