package pipeline

import (
	"go.uber.org/zap"

	"github.com/synclab/pcharness/internal/logging"
	"github.com/synclab/pcharness/internal/monitoring"
)

// provenanceStride spaces the A values of different producers apart so a
// consumed item can be traced back to the worker that generated it.
const provenanceStride = 1000

// Producer generates a fixed quota of paired integers and hands each one to
// the core. A quota of N emits N-1 items, with A descending from N-1 to 1
// offset by the worker id; this convention is uniform across all producers.
type Producer struct {
	id      int
	quota   int
	core    Core
	tracker *Tracker
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// NewProducer creates a producer worker. The id is the per-role sequential
// index assigned at spawn time.
func NewProducer(id, quota int, core Core, tracker *Tracker, log *logging.Logger, metrics *monitoring.Metrics) *Producer {
	return &Producer{
		id:      id,
		quota:   quota,
		core:    core,
		tracker: tracker,
		log:     log.With(zap.Int("producer", id)),
		metrics: metrics,
	}
}

// Run produces the full quota and then signals completion exactly once.
// The completion signal never precedes the last Produce call.
func (p *Producer) Run() {
	p.log.Info("producer started")
	p.metrics.ProducersActive.Inc()

	for remaining := p.quota - 1; remaining >= 1; remaining-- {
		a := remaining + provenanceStride*p.id
		p.core.Produce(DataItem(a, a+1))
		p.metrics.ItemsProduced.Inc()
	}

	p.metrics.ProducersActive.Dec()
	p.log.Info("producer finished", zap.Int("items", p.quota-1))
	p.tracker.ProducerDone()
}
