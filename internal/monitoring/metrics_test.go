package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsRegistersOnSuppliedRegistry(t *testing.T) {
	// Two collectors on independent registries must not collide.
	m1 := NewMetrics(prometheus.NewRegistry())
	m2 := NewMetrics(prometheus.NewRegistry())

	m1.ItemsProduced.Inc()
	m1.ItemsProduced.Inc()
	m2.ItemsProduced.Inc()

	if got := testutil.ToFloat64(m1.ItemsProduced); got != 2 {
		t.Errorf("m1 items produced: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m2.ItemsProduced); got != 1 {
		t.Errorf("m2 items produced: got %v, want 1", got)
	}
}

func TestGaugeTracksPopulation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ProducersActive.Inc()
	m.ProducersActive.Inc()
	m.ProducersActive.Dec()

	if got := testutil.ToFloat64(m.ProducersActive); got != 1 {
		t.Errorf("producers active: got %v, want 1", got)
	}
}
