package aggregator

import (
	"context"
	"sync"

	"github.com/c360/apphealth/errors"
	"github.com/c360/apphealth/health"
)

// Monitor is a read-side handle bound to the aggregator. It snapshots the
// published report or blocks until the report changes. Monitors never
// mutate aggregator state.
type Monitor struct {
	agg *Aggregator

	mu       sync.Mutex
	lastSeen uint64
}

// Report returns the most recent completed pass's report projected through
// the filter. It never blocks on the recomputation pass and never returns
// a partially-applied result.
func (m *Monitor) Report(filter health.Filter) health.Report {
	return m.agg.snapshot.Load().report(filter)
}

// WaitForChange blocks until the published snapshot version advances past
// the version this monitor last observed, then returns the new report
// projected through the filter.
//
// The comparison is by version number, not by edge-triggered event: a
// caller that waits infrequently sees the latest cumulative state rather
// than missing transitions. If the version is already ahead when called,
// WaitForChange returns immediately. All concurrent waiters are woken by
// the same transition.
//
// Cancelling ctx abandons the wait with ctx.Err() and no effect on
// aggregator state or other waiters. After the aggregator is closed,
// WaitForChange returns ErrAggregatorClosed.
func (m *Monitor) WaitForChange(ctx context.Context, filter health.Filter) (health.Report, error) {
	m.agg.metrics.WaiterStarted()
	defer m.agg.metrics.WaiterFinished()

	for {
		snap, changed := m.agg.current()

		m.mu.Lock()
		if snap.version > m.lastSeen {
			m.lastSeen = snap.version
			m.mu.Unlock()
			return snap.report(filter), nil
		}
		m.mu.Unlock()

		// Ask for an early pass so wait latency is bounded by work, not by
		// the debounce interval.
		m.agg.requestPass()

		select {
		case <-ctx.Done():
			return health.Report{}, ctx.Err()
		case <-m.agg.done:
			return health.Report{}, errors.ErrAggregatorClosed
		case <-changed:
		}
	}
}

// MonitorComponent returns a monitor scoped to the named component, or
// false if no component with that name is currently live in the registry.
// Existence is checked against the live registry, not historical names.
func (m *Monitor) MonitorComponent(name string) (*ComponentMonitor, bool) {
	m.agg.mu.Lock()
	_, ok := m.agg.entries[name]
	m.agg.mu.Unlock()

	if !ok {
		return nil, false
	}

	cm := &ComponentMonitor{
		agg:  m.agg,
		name: name,
	}

	snap := m.agg.snapshot.Load()
	cm.lastSeen = snap.version
	cm.lastSection, cm.lastPresent = snap.component(name)

	return cm, true
}

// ComponentMonitor is a read-side handle scoped to one component.
type ComponentMonitor struct {
	agg  *Aggregator
	name string

	mu          sync.Mutex
	lastSeen    uint64
	lastSection componentSnapshot
	lastPresent bool
}

// Name returns the monitored component's name
func (cm *ComponentMonitor) Name() string {
	return cm.name
}

// Report returns the component's section of the most recent completed
// pass's report, projected through the filter. A component that has been
// retired (or not yet seen by a pass) reports healthy with no publishers.
func (cm *ComponentMonitor) Report(filter health.Filter) health.Report {
	snap := cm.agg.snapshot.Load()

	cs, ok := snap.component(cm.name)
	if !ok {
		cs = componentSnapshot{name: cm.name, status: health.NewHealthy()}
	}

	return snap.componentReport(cs, filter)
}

// WaitForChange blocks until the monitored component's section of the
// published report changes content, then returns the component-scoped
// report. Version transitions that leave this component untouched are
// skipped without waking the caller's logic.
//
// Cancellation and closure semantics match Monitor.WaitForChange.
func (cm *ComponentMonitor) WaitForChange(ctx context.Context, filter health.Filter) (health.Report, error) {
	cm.agg.metrics.WaiterStarted()
	defer cm.agg.metrics.WaiterFinished()

	for {
		snap, changed := cm.agg.current()

		cm.mu.Lock()
		if snap.version > cm.lastSeen {
			cm.lastSeen = snap.version

			cs, present := snap.component(cm.name)
			if !present {
				cs = componentSnapshot{name: cm.name, status: health.NewHealthy()}
			}

			if present != cm.lastPresent || !cs.sameContent(cm.lastSection) {
				cm.lastSection = cs
				cm.lastPresent = present
				cm.mu.Unlock()
				return snap.componentReport(cs, filter), nil
			}
		}
		cm.mu.Unlock()

		cm.agg.requestPass()

		select {
		case <-ctx.Done():
			return health.Report{}, ctx.Err()
		case <-cm.agg.done:
			return health.Report{}, errors.ErrAggregatorClosed
		case <-changed:
		}
	}
}
