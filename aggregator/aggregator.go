package aggregator

import (
	"io"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360/apphealth/config"
	"github.com/c360/apphealth/health"
	"github.com/c360/apphealth/metric"
)

// Aggregator owns the component registry and the recomputation engine. It
// is an explicit, caller-constructed object: applications that want a
// single process-wide instance hold one shared reference themselves.
type Aggregator struct {
	cfg     config.AggregatorConfig
	logger  *slog.Logger
	metrics *metric.Metrics

	// registry of live components, guarded by mu
	mu      sync.Mutex
	entries map[string]*entry

	// published snapshot, replaced atomically by the pass goroutine
	snapshot atomic.Pointer[snapshot]

	// notify is closed and replaced each time a new snapshot is published
	notifyMu sync.Mutex
	notify   chan struct{}

	kick   chan struct{}
	done   chan struct{}
	closed atomic.Bool
	wg     sync.WaitGroup
}

// New creates an aggregator and starts its background recomputation loop.
// The logger and metrics may be nil. Call Close to stop the loop.
func New(cfg config.AggregatorConfig, logger *slog.Logger, metrics *metric.Metrics) *Aggregator {
	if cfg.DebounceInterval <= 0 {
		cfg.DebounceInterval = config.DefaultDebounceInterval
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &Aggregator{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		entries: make(map[string]*entry),
		notify:  make(chan struct{}),
		kick:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	a.snapshot.Store(&snapshot{overall: health.NewHealthy()})

	a.wg.Add(1)
	go a.run()

	return a
}

// Component returns a handle on the named component, creating the
// component on first reference. The call is idempotent, safe for
// concurrent callers, and never blocks on the recomputation pass. A fresh
// component reports healthy until a publisher downgrades it.
func (a *Aggregator) Component(name string) *Component {
	a.mu.Lock()
	e, ok := a.entries[name]
	if !ok {
		e = newEntry(name)
		a.entries[name] = e
	}

	// Take the handle reference while still holding the registry lock so a
	// concurrent pass cannot retire the entry between lookup and acquisition.
	e.addRef()
	a.mu.Unlock()

	return &Component{entry: e}
}

// Monitor returns a read-side handle bound to this aggregator
func (a *Aggregator) Monitor() *Monitor {
	return &Monitor{
		agg:      a,
		lastSeen: a.snapshot.Load().version,
	}
}

// Close stops the recomputation loop and wakes all pending waiters with
// ErrAggregatorClosed. Close is idempotent.
func (a *Aggregator) Close() {
	if !a.closed.CompareAndSwap(false, true) {
		return
	}

	close(a.done)
	a.wg.Wait()
}

// run drives the periodic recomputation pass until Close
func (a *Aggregator) run() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.cfg.DebounceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
		case <-a.kick:
		}

		a.pass()
	}
}

// requestPass asks the loop for an immediate recomputation pass. The
// signal is coalesced; a pass triggered this way is identical to a
// periodic one.
func (a *Aggregator) requestPass() {
	if !a.cfg.KickOnWait || a.closed.Load() {
		return
	}

	select {
	case a.kick <- struct{}{}:
	default:
	}
}

// pass is one recomputation pass: recompute every component, reduce to an
// overall status, publish a new snapshot if the content changed, then
// retire components with no publishers and no handles. The pass goroutine
// is the only writer of the published snapshot and the only decider of
// retirement, so reports are always derived from a single consistent view.
func (a *Aggregator) pass() {
	start := time.Now()

	a.mu.Lock()
	entries := make([]*entry, 0, len(a.entries))
	for _, e := range a.entries {
		entries = append(entries, e)
	}
	a.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	components := make([]componentSnapshot, 0, len(entries))
	statuses := make([]health.Status, 0, len(entries))
	publisherTotal := 0
	aggregatesChanged := 0

	for _, e := range entries {
		cs, changed := e.recompute()
		if changed {
			aggregatesChanged++
		}
		components = append(components, cs)
		statuses = append(statuses, cs.status)
		publisherTotal += len(cs.publishers)
		a.metrics.RecordComponentState(cs.name, int(cs.status.State))
	}

	prev := a.snapshot.Load()
	next := &snapshot{
		version:    prev.version,
		overall:    health.Reduce(statuses),
		components: components,
	}

	outcome := "noop"
	if !next.sameContent(prev) {
		next.version = prev.version + 1
		a.publish(next)
		outcome = "published"

		a.logger.Debug("published health snapshot",
			"version", next.version,
			"overall", next.overall.State.String(),
			"components", len(next.components),
			"aggregates_changed", aggregatesChanged,
		)
	}

	// Deferred retirement happens after aggregation so a retiring component
	// is still represented in this pass's report.
	a.retire(entries)

	a.metrics.RecordPass(outcome, time.Since(start))
	a.metrics.RecordSnapshot(a.snapshot.Load().version, int(next.overall.State))
	a.metrics.RecordRegistrySize(a.componentCount(), publisherTotal)
}

// publish atomically replaces the published snapshot and broadcasts the
// change. The snapshot must be stored before the channel is closed so a
// woken waiter always observes the new version.
func (a *Aggregator) publish(s *snapshot) {
	a.snapshot.Store(s)

	a.notifyMu.Lock()
	close(a.notify)
	a.notify = make(chan struct{})
	a.notifyMu.Unlock()
}

// current returns the published snapshot together with the channel that
// will be closed when the next snapshot is published
func (a *Aggregator) current() (*snapshot, <-chan struct{}) {
	a.notifyMu.Lock()
	ch := a.notify
	a.notifyMu.Unlock()

	return a.snapshot.Load(), ch
}

// retire drops entries that have neither publishers nor handles
func (a *Aggregator) retire(entries []*entry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, e := range entries {
		if e.retirable() {
			delete(a.entries, e.name)
			a.metrics.ForgetComponent(e.name)
			a.logger.Debug("retired component", "component", e.name)
		}
	}
}

// componentCount returns the number of live components
func (a *Aggregator) componentCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}
