package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// weather service.
type Metrics struct {
	FetchAttempts    *prometheus.CounterVec // labels: phase={cached,fresh}, outcome={success,error}
	FetchDuration    prometheus.Histogram
	StateTransitions *prometheus.CounterVec // labels: kind={loading,success,error}
	Refreshing       prometheus.Gauge
	StaleRefreshes   prometheus.Counter

	// Reverse geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}

	// Snapshot publishing metrics.
	SnapshotsPublished prometheus.Counter
	PublishErrors      prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdeck",
			Name:      "fetch_attempts_total",
			Help:      "Weather fetch-and-map attempts by phase and outcome.",
		}, []string{"phase", "outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weatherdeck",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a complete weather acquisition cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdeck",
			Name:      "state_transitions_total",
			Help:      "Weather state transitions by resulting state kind.",
		}, []string{"kind"}),
		Refreshing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weatherdeck",
			Name:      "refreshing",
			Help:      "1 while a background refresh is in flight, 0 otherwise.",
		}),
		StaleRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weatherdeck",
			Name:      "stale_refreshes_total",
			Help:      "Refreshes triggered because displayed data went stale.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdeck",
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdeck",
			Name:      "geocode_cache_total",
			Help:      "Reverse geocoding cache lookups by result.",
		}, []string{"result"}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weatherdeck",
			Name:      "snapshots_published_total",
			Help:      "Weather snapshots published to the broker.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weatherdeck",
			Name:      "publish_errors_total",
			Help:      "Failed snapshot publish attempts.",
		}),
	}

	prometheus.MustRegister(
		m.FetchAttempts,
		m.FetchDuration,
		m.StateTransitions,
		m.Refreshing,
		m.StaleRefreshes,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.SnapshotsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchAttempts:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherdeck", Name: "fetch_attempts_total"}, []string{"phase", "outcome"}),
		FetchDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weatherdeck", Name: "fetch_duration_seconds"}),
		StateTransitions:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherdeck", Name: "state_transitions_total"}, []string{"kind"}),
		Refreshing:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weatherdeck", Name: "refreshing"}),
		StaleRefreshes:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weatherdeck", Name: "stale_refreshes_total"}),
		GeocodeRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherdeck", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherdeck", Name: "geocode_cache_total"}, []string{"result"}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weatherdeck", Name: "snapshots_published_total"}),
		PublishErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weatherdeck", Name: "publish_errors_total"}),
	}
}
