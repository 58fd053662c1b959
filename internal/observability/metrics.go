package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// resilience pipeline.
type Metrics struct {
	TicksTotal      prometheus.Counter
	TickErrors      prometheus.Counter
	TickDuration    prometheus.Histogram
	PipelineRunning prometheus.Gauge

	// Signal intake metrics.
	TextsClassified *prometheus.CounterVec   // labels: issue={digital,non_digital,power_outage,unknown}
	BulletinsSeen   *prometheus.CounterVec   // labels: type={quake,weather}
	ProbesRun       *prometheus.CounterVec   // labels: outcome={healthy,degraded,unreachable}
	SourceDuration  *prometheus.HistogramVec // labels: source={texts,bulletins,probes}

	// Output metrics.
	DistrictStatus   *prometheus.GaugeVec // labels: district, status; 1 for the current status
	StatusesComputed prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.TicksTotal,
		m.TickErrors,
		m.TickDuration,
		m.PipelineRunning,
		m.TextsClassified,
		m.BulletinsSeen,
		m.ProbesRun,
		m.SourceDuration,
		m.DistrictStatus,
		m.StatusesComputed,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resilience",
			Name:      "ticks_total",
			Help:      "Total completed refresh ticks.",
		}),
		TickErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resilience",
			Name:      "tick_errors_total",
			Help:      "Total ticks in which at least one upstream fetch failed.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "resilience",
			Name:      "tick_duration_seconds",
			Help:      "Duration of a complete fetch-score-publish cycle.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "resilience",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		TextsClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resilience",
			Name:      "texts_classified_total",
			Help:      "Text signals classified, by issue label.",
		}, []string{"issue"}),
		BulletinsSeen: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resilience",
			Name:      "bulletins_total",
			Help:      "Disaster bulletins processed, by type.",
		}, []string{"type"}),
		ProbesRun: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resilience",
			Name:      "probes_total",
			Help:      "Anchor probes completed, by outcome.",
		}, []string{"outcome"}),
		SourceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "resilience",
			Name:      "source_duration_seconds",
			Help:      "Upstream fetch duration per tick, by source.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"source"}),
		DistrictStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "resilience",
			Name:      "district_status",
			Help:      "1 for each district's current status label, 0 otherwise.",
		}, []string{"district", "status"}),
		StatusesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resilience",
			Name:      "statuses_computed_total",
			Help:      "Total per-district status records produced.",
		}),
	}
}
