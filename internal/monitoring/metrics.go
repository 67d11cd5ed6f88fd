package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the harness.
type Metrics struct {
	// Pipeline throughput
	ItemsProduced     prometheus.Counter
	ItemsConsumed     prometheus.Counter
	SentinelsInjected prometheus.Counter
	SentinelsConsumed prometheus.Counter

	// Anomalies
	IntegrityErrors prometheus.Counter
	ConsumerBored   prometheus.Counter

	// Live population
	ProducersActive prometheus.Gauge
	ConsumersActive prometheus.Gauge

	// Run timing
	RunDuration prometheus.Histogram
}

// NewMetrics creates a metrics collector registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ItemsProduced: factory.NewCounter(prometheus.CounterOpts{
			Name: "harness_items_produced_total",
			Help: "Total real data items handed to the core",
		}),
		ItemsConsumed: factory.NewCounter(prometheus.CounterOpts{
			Name: "harness_items_consumed_total",
			Help: "Total real data items received by consumers",
		}),
		SentinelsInjected: factory.NewCounter(prometheus.CounterOpts{
			Name: "harness_sentinels_injected_total",
			Help: "Total stop items injected by the orchestrator",
		}),
		SentinelsConsumed: factory.NewCounter(prometheus.CounterOpts{
			Name: "harness_sentinels_consumed_total",
			Help: "Total stop items received by consumers",
		}),
		IntegrityErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "harness_integrity_errors_total",
			Help: "Total items failing the pair consistency check",
		}),
		ConsumerBored: factory.NewCounter(prometheus.CounterOpts{
			Name: "harness_consumer_bored_total",
			Help: "Total consumers that exited via the bored bound",
		}),
		ProducersActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "harness_producers_active",
			Help: "Number of producer workers currently running",
		}),
		ConsumersActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "harness_consumers_active",
			Help: "Number of consumer workers currently running",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "harness_run_duration_seconds",
			Help:    "Wall time of a complete orchestrated run",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30},
		}),
	}
}
