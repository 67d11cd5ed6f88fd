package pipeline

import (
	"go.uber.org/zap"

	"github.com/synclab/pcharness/internal/logging"
	"github.com/synclab/pcharness/internal/monitoring"
)

// Consumer drains the core until it receives a stop item. Data items are
// checked for the B == A+1 relation; a mismatch is logged and consumption
// continues. The boredBound safeguard caps how many data items a consumer
// accepts without ever seeing a stop, so a broken stop protocol degrades
// into a logged anomaly instead of a hang. It is a safety net, not the
// termination mechanism.
type Consumer struct {
	id         int
	boredBound int
	core       Core
	tracker    *Tracker
	log        *logging.Logger
	metrics    *monitoring.Metrics
}

// NewConsumer creates a consumer worker.
func NewConsumer(id, boredBound int, core Core, tracker *Tracker, log *logging.Logger, metrics *monitoring.Metrics) *Consumer {
	return &Consumer{
		id:         id,
		boredBound: boredBound,
		core:       core,
		tracker:    tracker,
		log:        log.With(zap.Int("consumer", id)),
		metrics:    metrics,
	}
}

// Run consumes until a stop item or the bored bound, then signals completion
// exactly once regardless of exit path.
func (c *Consumer) Run() {
	defer c.tracker.ConsumerDone()

	c.log.Info("consumer started")
	c.metrics.ConsumersActive.Inc()
	defer c.metrics.ConsumersActive.Dec()

	received := 0
	for {
		item := c.core.Consume()
		if item.Kind == KindStop {
			c.metrics.SentinelsConsumed.Inc()
			c.log.Info("consumer finished normally", zap.Int("items", received))
			return
		}

		received++
		c.metrics.ItemsConsumed.Inc()

		// The item that trips the bound is not validated.
		if received == c.boredBound {
			c.metrics.ConsumerBored.Inc()
			c.log.Error("consumer bored, exiting", zap.Int("items", received))
			return
		}

		if !item.Consistent() {
			c.metrics.IntegrityErrors.Inc()
			c.log.Error("unexpected data",
				zap.Int("a", item.A),
				zap.Int("b", item.B),
			)
		}
	}
}
