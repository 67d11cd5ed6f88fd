package pcore

import (
	"errors"

	"github.com/synclab/pcharness/internal/pipeline"
)

var (
	// ErrNotStarted is returned by Shutdown before Startup has run.
	ErrNotStarted = errors.New("core has not been started")
	// ErrAlreadyStarted is returned by a second Startup call.
	ErrAlreadyStarted = errors.New("core is already started")
)

// Buffered is a channel-backed hand-off core. Produce blocks while the
// buffer is full, Consume blocks while it is empty, and items move first-in
// first-out. A capacity of zero gives rendezvous hand-off.
type Buffered struct {
	capacity int
	items    chan pipeline.Item
}

// NewBuffered creates a core with the given buffer capacity. Negative
// capacities are treated as zero.
func NewBuffered(capacity int) *Buffered {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffered{capacity: capacity}
}

// Startup allocates the internal channel. Must be called once before any
// worker runs.
func (b *Buffered) Startup() error {
	if b.items != nil {
		return ErrAlreadyStarted
	}
	b.items = make(chan pipeline.Item, b.capacity)
	return nil
}

// Produce hands an item to the core, blocking until the buffer accepts it.
func (b *Buffered) Produce(item pipeline.Item) {
	b.items <- item
}

// Consume returns the next item in FIFO order, blocking while the buffer is
// empty.
func (b *Buffered) Consume() pipeline.Item {
	return <-b.items
}

// Shutdown releases the channel. Only safe once no worker is calling
// Produce or Consume.
func (b *Buffered) Shutdown() error {
	if b.items == nil {
		return ErrNotStarted
	}
	close(b.items)
	b.items = nil
	return nil
}
