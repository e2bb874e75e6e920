package authcore

import "sync/atomic"

// MetricID names one engine counter.
type MetricID uint8

const (
	// MetricRegisterSuccess counts completed registrations.
	MetricRegisterSuccess MetricID = iota
	// MetricRegisterDuplicate counts registrations rejected for a taken email.
	MetricRegisterDuplicate
	// MetricRegisterFailure counts registrations failed on hash/store errors.
	MetricRegisterFailure
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess
	// MetricLoginFailure counts rejected logins (unknown email or mismatch).
	MetricLoginFailure
	// MetricTokenIssued counts session tokens signed.
	MetricTokenIssued
	// MetricTokenRejected counts failed token verifications.
	MetricTokenRejected
	metricIDCount
)

// Metrics is a fixed-size set of lock-free counters maintained by the
// engine.
type Metrics struct {
	counters [metricIDCount]atomic.Uint64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) inc(id MetricID) {
	if m == nil || id >= metricIDCount {
		return
	}

	m.counters[id].Add(1)
}

// Snapshot copies all counter values at one point in time.
func (m *Metrics) Snapshot() map[MetricID]uint64 {
	snapshot := make(map[MetricID]uint64, metricIDCount)
	if m == nil {
		return snapshot
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		snapshot[id] = m.counters[id].Load()
	}

	return snapshot
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}

	e.metrics.inc(id)
}

// MetricsSnapshot exposes the engine's counter values for scraping.
func (e *Engine) MetricsSnapshot() map[MetricID]uint64 {
	if e == nil {
		return map[MetricID]uint64{}
	}

	return e.metrics.Snapshot()
}
