package dispatch

import (
	"sync"
	"time"
)

// ActionMetrics aggregates the dispatch history of one action.
type ActionMetrics struct {
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
}

// AverageDuration returns the mean operation duration.
func (m ActionMetrics) AverageDuration() time.Duration {
	if m.DispatchCount == 0 {
		return 0
	}
	return m.TotalDuration / time.Duration(m.DispatchCount)
}

// Metrics collects per-action dispatch statistics. Safe for concurrent
// use.
type Metrics struct {
	mu        sync.RWMutex
	perAction map[string]*ActionMetrics
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{perAction: make(map[string]*ActionMetrics)}
}

// Record adds one completed dispatch for actionID.
func (m *Metrics) Record(actionID string, d time.Duration, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	am, ok := m.perAction[actionID]
	if !ok {
		am = &ActionMetrics{MinDuration: d, MaxDuration: d}
		m.perAction[actionID] = am
	}

	am.DispatchCount++
	if failed {
		am.ErrorCount++
	}
	am.TotalDuration += d
	if d < am.MinDuration {
		am.MinDuration = d
	}
	if d > am.MaxDuration {
		am.MaxDuration = d
	}
}

// Action returns the metrics recorded for one action.
func (m *Metrics) Action(actionID string) (ActionMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	am, ok := m.perAction[actionID]
	if !ok {
		return ActionMetrics{}, false
	}
	return *am, true
}

// Snapshot returns a copy of all per-action metrics.
func (m *Metrics) Snapshot() map[string]ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]ActionMetrics, len(m.perAction))
	for id, am := range m.perAction {
		out[id] = *am
	}
	return out
}
