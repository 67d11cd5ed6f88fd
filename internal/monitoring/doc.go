// Package monitoring provides Prometheus metrics for the harness.
//
// Metrics are registered on a caller-supplied registry so concurrent test
// runs never collide on the global default registry.
//
// Counters:
//   - harness_items_produced_total: real data items handed to the core
//   - harness_items_consumed_total: real data items received by consumers
//   - harness_sentinels_injected_total: stop items pushed by the orchestrator
//   - harness_sentinels_consumed_total: stop items received by consumers
//   - harness_integrity_errors_total: items failing the pair check
//   - harness_consumer_bored_total: consumers that gave up waiting for a stop
//
// Gauges track the live producer and consumer population; a histogram tracks
// whole-run wall time.
//
// The endpoint is optional. When an address is configured, a small gin
// router serves the standard exposition format:
//
//	srv := monitoring.NewServer(":9090", registry)
//	go srv.ListenAndServe()
package monitoring
