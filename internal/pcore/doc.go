// Package pcore provides the reference hand-off core for the harness.
//
// The harness treats the core as a replaceable collaborator: any type
// satisfying pipeline.Core can stand in. Buffered is the in-tree
// implementation, a FIFO backed by a Go channel. Its buffering policy is an
// implementation detail and nothing in the harness depends on it beyond the
// blocking, lossless contract.
package pcore
