package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hazard_hotspots"

// Metrics - коллекторы Prometheus для приема сигналов, агрегации и оповещений
type Metrics struct {
	SignalsIngested *prometheus.CounterVec // метки: source
	SignalsRejected *prometheus.CounterVec // метки: reason

	AggregationRuns     *prometheus.CounterVec // метки: outcome={success,failed,skipped}
	AggregationDuration prometheus.Histogram
	ActiveHotspots      *prometheus.GaugeVec // метки: severity
	LastAggregation     prometheus.Gauge

	Notifications *prometheus.CounterVec // метки: channel, outcome={sent,failed}
}

// NewMetrics создает метрики и регистрирует их в стандартном реестре Prometheus
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.SignalsIngested,
		m.SignalsRejected,
		m.AggregationRuns,
		m.AggregationDuration,
		m.ActiveHotspots,
		m.LastAggregation,
		m.Notifications,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации. Повторная регистрация
// в нескольких тестах паниковала бы с "already registered".
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SignalsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_ingested_total",
			Help:      "Hazard signals stored, by source.",
		}, []string{"source"}),
		SignalsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_rejected_total",
			Help:      "Hazard signals rejected at ingestion, by reason.",
		}, []string{"reason"}),
		AggregationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregation_runs_total",
			Help:      "Hotspot aggregation runs by outcome.",
		}, []string{"outcome"}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of a complete hotspot aggregation run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ActiveHotspots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_hotspots",
			Help:      "Hotspots in the current snapshot, by severity.",
		}, []string{"severity"}),
		LastAggregation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_successful_aggregation_timestamp_seconds",
			Help:      "Unix time of the last successful aggregation run.",
		}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Critical hotspot notifications by channel and outcome.",
		}, []string{"channel", "outcome"}),
	}
}
