package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all engine-level metrics
type Metrics struct {
	// Recomputation pass metrics
	PassesTotal     *prometheus.CounterVec
	PassDuration    prometheus.Histogram
	SnapshotVersion prometheus.Gauge

	// Registry metrics
	ComponentsLive prometheus.Gauge
	PublishersLive prometheus.Gauge
	WaitersActive  prometheus.Gauge

	// Health state metrics
	OverallState   prometheus.Gauge
	ComponentState *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance with all engine metrics
func NewMetrics() *Metrics {
	return &Metrics{
		PassesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apphealth",
				Subsystem: "aggregator",
				Name:      "passes_total",
				Help:      "Total number of recomputation passes",
			},
			[]string{"outcome"},
		),

		PassDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "apphealth",
				Subsystem: "aggregator",
				Name:      "pass_duration_seconds",
				Help:      "Recomputation pass duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		SnapshotVersion: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "apphealth",
				Subsystem: "aggregator",
				Name:      "snapshot_version",
				Help:      "Version of the currently published snapshot",
			},
		),

		ComponentsLive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "apphealth",
				Subsystem: "registry",
				Name:      "components_live",
				Help:      "Number of live components in the registry",
			},
		),

		PublishersLive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "apphealth",
				Subsystem: "registry",
				Name:      "publishers_live",
				Help:      "Number of live publishers across all components",
			},
		),

		WaitersActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "apphealth",
				Subsystem: "monitor",
				Name:      "waiters_active",
				Help:      "Number of callers blocked in a wait-for-change",
			},
		),

		OverallState: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "apphealth",
				Subsystem: "health",
				Name:      "overall_state",
				Help:      "Overall health state (0=healthy, 1=degraded, 2=critical)",
			},
		),

		ComponentState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "apphealth",
				Subsystem: "health",
				Name:      "component_state",
				Help:      "Component health state (0=healthy, 1=degraded, 2=critical)",
			},
			[]string{"component"},
		),
	}
}

// RecordPass records one completed recomputation pass and its duration.
// Outcome is "published" when the pass produced a new snapshot and "noop"
// when nothing changed.
func (m *Metrics) RecordPass(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.PassesTotal.WithLabelValues(outcome).Inc()
	m.PassDuration.Observe(duration.Seconds())
}

// RecordSnapshot records the published snapshot version and overall state
func (m *Metrics) RecordSnapshot(version uint64, state int) {
	if m == nil {
		return
	}
	m.SnapshotVersion.Set(float64(version))
	m.OverallState.Set(float64(state))
}

// RecordRegistrySize records live component and publisher counts
func (m *Metrics) RecordRegistrySize(components, publishers int) {
	if m == nil {
		return
	}
	m.ComponentsLive.Set(float64(components))
	m.PublishersLive.Set(float64(publishers))
}

// RecordComponentState records one component's health state
func (m *Metrics) RecordComponentState(component string, state int) {
	if m == nil {
		return
	}
	m.ComponentState.WithLabelValues(component).Set(float64(state))
}

// ForgetComponent drops per-component series for a retired component
func (m *Metrics) ForgetComponent(component string) {
	if m == nil {
		return
	}
	m.ComponentState.DeleteLabelValues(component)
}

// WaiterStarted increments the active waiter gauge
func (m *Metrics) WaiterStarted() {
	if m == nil {
		return
	}
	m.WaitersActive.Inc()
}

// WaiterFinished decrements the active waiter gauge
func (m *Metrics) WaiterFinished() {
	if m == nil {
		return
	}
	m.WaitersActive.Dec()
}
