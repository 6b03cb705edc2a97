package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sealevel"

// Metrics holds the Prometheus collectors for one pipeline run.
type Metrics struct {
	RecordsLoaded   prometheus.Counter
	YearsAggregated prometheus.Gauge
	ProjectedYears  *prometheus.CounterVec   // labels: era
	CombinedYears   prometheus.Gauge
	StageDuration   *prometheus.HistogramVec // labels: stage={load,aggregate,project,combine,decompose}
	RunFailures     *prometheus.CounterVec   // labels: kind={parse,format,domain,invariant,canceled,io}
	LastRunSuccess  prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewMetrics creates the pipeline metrics and registers them with reg.
// Commands pass a fresh registry so the textfile carries only run metrics.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.RecordsLoaded,
		m.YearsAggregated,
		m.ProjectedYears,
		m.CombinedYears,
		m.StageDuration,
		m.RunFailures,
		m.LastRunSuccess,
	)
	m.gatherer = reg
	return m
}

// NewMetricsForTesting creates Metrics with its own registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "Measurement rows read from the source file.",
		}),
		YearsAggregated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "historical_years",
			Help:      "Distinct years in the historical aggregate.",
		}),
		ProjectedYears: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projected_years_total",
			Help:      "Years produced by each projection era.",
		}, []string{"era"}),
		CombinedYears: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "combined_years",
			Help:      "Years in the combined historical and projected series.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"stage"}),
		RunFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "run_failures_total",
			Help:      "Failed runs by error kind.",
		}, []string{"kind"}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 when the last run produced a report, 0 otherwise.",
		}),
	}
}

// WriteTextfile writes the registered metrics in the text exposition format,
// for pickup by the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
