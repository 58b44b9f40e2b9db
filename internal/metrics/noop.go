package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// ObserveRPC is a no-op.
func (n *NoopRecorder) ObserveRPC(method, code string, duration time.Duration) {}

// IncSessionExpired is a no-op.
func (n *NoopRecorder) IncSessionExpired() {}
