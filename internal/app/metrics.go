package app

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const latencySamples = 1000

// Metrics tracks frame processing counters and fold latencies.
type Metrics struct {
	framesTotal      atomic.Uint64
	keyEventsTotal   atomic.Uint64
	mouseEventsTotal atomic.Uint64
	padEventsTotal   atomic.Uint64
	unresolvedTotal  atomic.Uint64
	droppedEvents    atomic.Uint64

	// Fold latencies in a circular buffer
	mu         sync.RWMutex
	latencies  []time.Duration
	latencyIdx int

	peakLatency atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		latencies: make([]time.Duration, latencySamples),
		startTime: time.Now(),
	}
}

// RecordFrame records one frame fold: how long it took and how many
// events of each device it carried. unresolved counts key events
// with no catalog code.
func (m *Metrics) RecordFrame(latency time.Duration, keys, mouse, pads, unresolved int) {
	m.framesTotal.Add(1)
	m.keyEventsTotal.Add(uint64(keys))
	m.mouseEventsTotal.Add(uint64(mouse))
	m.padEventsTotal.Add(uint64(pads))
	m.unresolvedTotal.Add(uint64(unresolved))

	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % latencySamples
	m.mu.Unlock()
}

// SetDropped records the source's running drop counter.
func (m *Metrics) SetDropped(n uint64) {
	m.droppedEvents.Store(n)
}

// FramesTotal returns the number of frames folded so far.
func (m *Metrics) FramesTotal() uint64 {
	return m.framesTotal.Load()
}

// KeyEventsTotal returns the number of key events folded so far.
func (m *Metrics) KeyEventsTotal() uint64 {
	return m.keyEventsTotal.Load()
}

// Snapshot holds a point-in-time view of metrics.
type Snapshot struct {
	FramesTotal      uint64
	KeyEventsTotal   uint64
	MouseEventsTotal uint64
	PadEventsTotal   uint64
	UnresolvedTotal  uint64
	DroppedEvents    uint64

	AvgFrameLatency  time.Duration
	MaxFrameLatency  time.Duration
	P99FrameLatency  time.Duration
	PeakFrameLatency time.Duration

	FramesPerSecond float64
	Uptime          time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	latencies := make([]time.Duration, len(m.latencies))
	copy(latencies, m.latencies)
	m.mu.RUnlock()

	frames := m.framesTotal.Load()
	uptime := time.Since(m.startTime)

	snap := Snapshot{
		FramesTotal:      frames,
		KeyEventsTotal:   m.keyEventsTotal.Load(),
		MouseEventsTotal: m.mouseEventsTotal.Load(),
		PadEventsTotal:   m.padEventsTotal.Load(),
		UnresolvedTotal:  m.unresolvedTotal.Load(),
		DroppedEvents:    m.droppedEvents.Load(),
		PeakFrameLatency: time.Duration(m.peakLatency.Load()),
		Uptime:           uptime,
	}
	if uptime > 0 {
		snap.FramesPerSecond = float64(frames) / uptime.Seconds()
	}
	snap.AvgFrameLatency, snap.MaxFrameLatency, snap.P99FrameLatency = latencyStats(latencies)
	return snap
}

// latencyStats computes average, max and p99 over the non-zero
// samples.
func latencyStats(latencies []time.Duration) (avg, maxLat, p99 time.Duration) {
	valid := make([]time.Duration, 0, len(latencies))
	for _, l := range latencies {
		if l > 0 {
			valid = append(valid, l)
		}
	}
	if len(valid) == 0 {
		return 0, 0, 0
	}

	var sum time.Duration
	for _, l := range valid {
		sum += l
		if l > maxLat {
			maxLat = l
		}
	}
	avg = sum / time.Duration(len(valid))

	slices.Sort(valid)
	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	p99 = valid[idx]

	return avg, maxLat, p99
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.framesTotal.Store(0)
	m.keyEventsTotal.Store(0)
	m.mouseEventsTotal.Store(0)
	m.padEventsTotal.Store(0)
	m.unresolvedTotal.Store(0)
	m.droppedEvents.Store(0)
	m.peakLatency.Store(0)

	m.mu.Lock()
	m.latencies = make([]time.Duration, latencySamples)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}

// HealthStatus reports whether the session kept up with its input.
type HealthStatus struct {
	Healthy          bool
	DroppedEvents    uint64
	PeakLatency      time.Duration
	LatencyThreshold time.Duration
	Message          string
}

// HealthCheck returns the current health status.
func (m *Metrics) HealthCheck(latencyThreshold time.Duration) HealthStatus {
	status := HealthStatus{
		Healthy:          true,
		DroppedEvents:    m.droppedEvents.Load(),
		PeakLatency:      time.Duration(m.peakLatency.Load()),
		LatencyThreshold: latencyThreshold,
	}
	if status.DroppedEvents > 0 {
		status.Healthy = false
		status.Message = "dropped events detected"
	} else if status.PeakLatency > latencyThreshold {
		status.Healthy = false
		status.Message = "latency threshold exceeded"
	} else {
		status.Message = "healthy"
	}
	return status
}
