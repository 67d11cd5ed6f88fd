package pipeline

import (
	"context"
	"fmt"
)

// Tracker carries the two completion counters the orchestrator waits on.
// Each counter has counting-semaphore semantics: every Done call banks one
// unit, every Await consumes one, and an Await never returns without a
// matching Done. Raw counts are deliberately not exposed.
//
// The orchestrator owns exactly one Tracker per run and hands it to workers
// at spawn time; there is no process-wide instance.
type Tracker struct {
	producers chan struct{}
	consumers chan struct{}
}

// NewTracker creates a tracker sized to the worker population. The channel
// capacities match the population so a correctly behaved worker never blocks
// on its single Done call, whatever order workers finish in.
func NewTracker(producers, consumers int) (*Tracker, error) {
	if producers < 1 || consumers < 1 {
		return nil, fmt.Errorf("tracker requires at least one producer and one consumer, got %d/%d", producers, consumers)
	}
	return &Tracker{
		producers: make(chan struct{}, producers),
		consumers: make(chan struct{}, consumers),
	}, nil
}

// ProducerDone banks one producer completion. Each producer calls this
// exactly once, after its last item is produced.
func (t *Tracker) ProducerDone() {
	t.producers <- struct{}{}
}

// ConsumerDone banks one consumer completion. Each consumer calls this
// exactly once, on any exit path.
func (t *Tracker) ConsumerDone() {
	t.consumers <- struct{}{}
}

// AwaitProducer blocks until a producer completion is available and consumes
// it. Returns the context error if ctx ends first.
func (t *Tracker) AwaitProducer(ctx context.Context) error {
	select {
	case <-t.producers:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AwaitConsumer blocks until a consumer completion is available and consumes
// it. Returns the context error if ctx ends first.
func (t *Tracker) AwaitConsumer(ctx context.Context) error {
	select {
	case <-t.consumers:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
