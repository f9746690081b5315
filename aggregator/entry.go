package aggregator

import (
	"sort"
	"sync"

	"github.com/c360/apphealth/health"
)

// entry is the registry's record for one named component: the set of live
// publishers, the number of outstanding Component handles, and the last
// aggregate computed by the pass.
//
// Set membership is guarded by the entry mutex; publisher status lives in
// each handle's own atomic cell, so registration never blocks status writes
// on other handles.
type entry struct {
	name string

	mu         sync.Mutex
	publishers map[*Publisher]struct{}
	refs       int

	// aggregate is written only by the recomputation pass
	aggregate health.Status
}

func newEntry(name string) *entry {
	return &entry{
		name:       name,
		publishers: make(map[*Publisher]struct{}),
		aggregate:  health.NewHealthy(),
	}
}

// addPublisher registers a publisher in the live set
func (e *entry) addPublisher(p *Publisher) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.publishers[p] = struct{}{}
}

// addRef records an outstanding Component handle
func (e *entry) addRef() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.refs++
}

// dropRef releases a Component handle reference. Retirement is not decided
// here; the recomputation pass owns that decision.
func (e *entry) dropRef() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.refs == 0 {
		panic("apphealth: component handle reference count underflow")
	}
	e.refs--
}

// recompute prunes closed publishers, reduces the survivors' statuses into
// the component aggregate, and reports whether the aggregate changed since
// the previous pass. Called only from the recomputation pass.
func (e *entry) recompute() (componentSnapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pubs := make([]publisherSnapshot, 0, len(e.publishers))
	for p := range e.publishers {
		if p.closed.Load() {
			delete(e.publishers, p)
			continue
		}
		pubs = append(pubs, publisherSnapshot{
			id:      p.id,
			status:  p.Status(),
			updates: p.updates.Load(),
		})
	}

	// deterministic order for reduction ties and report output
	sort.Slice(pubs, func(i, j int) bool { return pubs[i].id < pubs[j].id })

	statuses := make([]health.Status, len(pubs))
	for i, ps := range pubs {
		statuses[i] = ps.status
	}

	aggregate := health.Reduce(statuses)
	changed := aggregate != e.aggregate
	e.aggregate = aggregate

	return componentSnapshot{
		name:       e.name,
		status:     aggregate,
		publishers: pubs,
	}, changed
}

// retirable reports whether the entry has neither live publishers nor
// outstanding handles. Only meaningful when called from the pass, after
// recompute has pruned closed publishers.
func (e *entry) retirable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.publishers) == 0 && e.refs == 0
}
