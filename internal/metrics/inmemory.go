package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Requests        uint64
	Failures        uint64
	DurationTotalNs int64
	ByName          map[string]uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	requests        uint64
	failures        uint64
	durationTotalNs int64

	mu     sync.Mutex
	byName map[string]uint64
	events []Request
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{byName: make(map[string]uint64)}
}

// RecordRequest counts r and keeps a copy of it.
func (m *InMemoryRecorder) RecordRequest(r Request) {
	atomic.AddUint64(&m.requests, 1)
	if r.Failed() {
		atomic.AddUint64(&m.failures, 1)
	}
	atomic.AddInt64(&m.durationTotalNs, r.ResponseTime.Nanoseconds())

	m.mu.Lock()
	m.byName[r.Type+" "+r.Name]++
	m.events = append(m.events, r)
	m.mu.Unlock()
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	byName := make(map[string]uint64, len(m.byName))
	for k, v := range m.byName {
		byName[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		Requests:        atomic.LoadUint64(&m.requests),
		Failures:        atomic.LoadUint64(&m.failures),
		DurationTotalNs: atomic.LoadInt64(&m.durationTotalNs),
		ByName:          byName,
	}
}

// Events returns the recorded requests in arrival order.
func (m *InMemoryRecorder) Events() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.events...)
}

// MeanResponseTime returns the average response time, or zero when nothing was recorded.
func (m *InMemoryRecorder) MeanResponseTime() time.Duration {
	n := atomic.LoadUint64(&m.requests)
	if n == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&m.durationTotalNs) / int64(n))
}
