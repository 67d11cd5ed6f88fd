// Package pipeline implements the producer/consumer termination harness.
//
// A run spawns a bounded population of producer and consumer workers that
// exchange items through a hand-off core (see Core). Producers each emit a
// fixed quota of paired integers and signal completion; consumers loop on
// the core until they receive a stop item. The orchestrator coordinates
// shutdown with a strict phase order:
//
//  1. Spawn consumers, then producers
//  2. Await one completion signal per producer
//  3. Inject one stop item per consumer
//  4. Await one completion signal per consumer
//  5. Shut the core down
//
// The phase-2/phase-3 ordering is the load-bearing invariant: stop items are
// only injected once no producer can emit more real data, so no consumer can
// exit while data it should have seen is still on the way.
//
// Completion is counted, not ordered. Consumers may finish before producers
// (the bored safeguard allows this) and the orchestrator still terminates,
// because phase 4 only requires the consumer signal count to reach the
// population size.
package pipeline
