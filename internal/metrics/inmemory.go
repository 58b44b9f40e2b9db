package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// CallKey identifies a method/code pair.
type CallKey struct {
	Method string
	Code   string
}

// CallStats aggregates calls sharing a CallKey.
type CallStats struct {
	Count           uint64
	DurationTotalNs int64
}

// CallSample is one row of a snapshot.
type CallSample struct {
	CallKey
	CallStats
}

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Calls           []CallSample
	SessionsExpired uint64
}

// Count returns the number of calls for method with code.
func (s Snapshot) Count(method, code string) uint64 {
	for _, c := range s.Calls {
		if c.Method == method && c.Code == code {
			return c.Count
		}
	}
	return 0
}

// InMemoryRecorder stores metrics in memory. It backs the gateway's
// /metrics endpoint and tests.
type InMemoryRecorder struct {
	mu              sync.Mutex
	calls           map[CallKey]*CallStats
	sessionsExpired uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{calls: make(map[CallKey]*CallStats)}
}

// Snapshot returns a copy of the counters sorted by method then code.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	calls := make([]CallSample, 0, len(m.calls))
	for k, v := range m.calls {
		calls = append(calls, CallSample{CallKey: k, CallStats: *v})
	}
	m.mu.Unlock()

	sort.Slice(calls, func(i, j int) bool {
		if calls[i].Method != calls[j].Method {
			return calls[i].Method < calls[j].Method
		}
		return calls[i].Code < calls[j].Code
	})

	return Snapshot{
		Calls:           calls,
		SessionsExpired: atomic.LoadUint64(&m.sessionsExpired),
	}
}

// ObserveRPC records a finished call.
func (m *InMemoryRecorder) ObserveRPC(method, code string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := CallKey{Method: method, Code: code}
	stats, ok := m.calls[key]
	if !ok {
		stats = &CallStats{}
		m.calls[key] = stats
	}
	stats.Count++
	stats.DurationTotalNs += duration.Nanoseconds()
}

// IncSessionExpired increments the session teardown counter.
func (m *InMemoryRecorder) IncSessionExpired() {
	atomic.AddUint64(&m.sessionsExpired, 1)
}
