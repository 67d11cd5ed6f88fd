package pipeline

// Core is the hand-off channel the workers exchange items through. Its
// buffering, locking, and wait/wake discipline belong to the implementation;
// this package only relies on the blocking contract below.
type Core interface {
	// Startup establishes internal state. Called once before any worker
	// runs.
	Startup() error

	// Produce hands an item to the core. It blocks until the core accepts
	// the item and never drops it.
	Produce(item Item)

	// Consume returns the next item, blocking while the core is empty.
	// Delivery order is the core's choice; each item is delivered to
	// exactly one caller.
	Consume() Item

	// Shutdown releases internal state. Only safe once no worker is
	// calling Produce or Consume; calling either afterwards is undefined.
	Shutdown() error
}
