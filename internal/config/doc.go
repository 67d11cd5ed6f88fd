// Package config provides 12-factor configuration for the harness.
//
// Configuration is loaded from environment variables with defaults matching
// the original kernel test driver; CLI flags can override individual values.
//
// Environment Variables:
//   - HARNESS_PRODUCERS, HARNESS_CONSUMERS, HARNESS_ITEMS
//   - HARNESS_BORED_COUNT, HARNESS_BUFFER
//   - HARNESS_METRICS_ADDR
//   - LOG_LEVEL, LOG_DEV
package config
