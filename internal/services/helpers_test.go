package services

import (
	"sync"
	"time"
)

// stubMetrics records counter increments for assertions without touching the
// global Prometheus registry
type stubMetrics struct {
	mu       sync.Mutex
	counters map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{counters: make(map[string]int)}
}

func (m *stubMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := name
	for _, v := range tags {
		key += ":" + v
	}
	m.counters[name]++
	if key != name {
		m.counters[key]++
	}
}

func (m *stubMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (m *stubMetrics) RecordGauge(name string, value float64, tags map[string]string) {}

func (m *stubMetrics) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
