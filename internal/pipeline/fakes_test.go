package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/synclab/pcharness/internal/monitoring"
)

func newTestMetrics() *monitoring.Metrics {
	return monitoring.NewMetrics(prometheus.NewRegistry())
}

// recordingCore accepts every produced item immediately and records the
// sequence. It never serves consumers.
type recordingCore struct {
	mu    sync.Mutex
	items []Item
}

func (r *recordingCore) Startup() error { return nil }

func (r *recordingCore) Produce(item Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

func (r *recordingCore) Consume() Item { panic("recordingCore does not serve consumers") }

func (r *recordingCore) Shutdown() error { return nil }

func (r *recordingCore) produced() []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Item(nil), r.items...)
}

// chanCore is a channel-backed core instrumented with hand-off accounting.
type chanCore struct {
	items chan Item

	startups  atomic.Int32
	shutdowns atomic.Int32

	dataProduced  atomic.Int64
	stopsProduced atomic.Int64
	dataConsumed  atomic.Int64
	stopsConsumed atomic.Int64

	// dataAfterStop records a real item produced after the first stop
	// item, which would break the injection ordering.
	dataAfterStop atomic.Bool
}

func newChanCore(capacity int) *chanCore {
	return &chanCore{items: make(chan Item, capacity)}
}

func (c *chanCore) Startup() error {
	c.startups.Add(1)
	return nil
}

func (c *chanCore) Produce(item Item) {
	if item.Kind == KindStop {
		c.stopsProduced.Add(1)
	} else {
		if c.stopsProduced.Load() > 0 {
			c.dataAfterStop.Store(true)
		}
		c.dataProduced.Add(1)
	}
	c.items <- item
}

func (c *chanCore) Consume() Item {
	item := <-c.items
	if item.Kind == KindStop {
		c.stopsConsumed.Add(1)
	} else {
		c.dataConsumed.Add(1)
	}
	return item
}

func (c *chanCore) Shutdown() error {
	c.shutdowns.Add(1)
	return nil
}

// stuckCore blocks every hand-off until released. Used to drive the
// orchestrator's context path.
type stuckCore struct {
	release chan struct{}
}

func newStuckCore() *stuckCore {
	return &stuckCore{release: make(chan struct{})}
}

func (s *stuckCore) Startup() error { return nil }

func (s *stuckCore) Produce(item Item) { <-s.release }

func (s *stuckCore) Consume() Item {
	<-s.release
	return Item{}
}

func (s *stuckCore) Shutdown() error { return nil }
