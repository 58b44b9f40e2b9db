// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events of the RPC client layer.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// ObserveRPC records one finished unary call. code is the gRPC status
	// code name ("OK", "NotFound", ...) or "Network" for uncoded failures.
	ObserveRPC(method, code string, duration time.Duration)

	// IncSessionExpired counts session teardowns caused by Unauthenticated.
	IncSessionExpired()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
