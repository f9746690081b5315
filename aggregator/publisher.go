package aggregator

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/c360/apphealth/health"
)

// Publisher is a caller-owned handle through which one reporting source
// pushes status updates for a single component. A component may have any
// number of publishers; a typical use is one publisher per worker
// goroutine.
//
// A publisher handle is exclusively owned by the caller that created it:
// updates on a single handle must not race with each other, but any number
// of handles for the same component may update concurrently. Updates are
// non-blocking and never trigger recomputation themselves; the aggregator's
// background pass picks them up on its next tick.
//
// The publisher's last-written status stays live and counted in aggregation
// until Close is called.
type Publisher struct {
	id      string
	entry   *entry
	cell    atomic.Pointer[health.Status]
	updates atomic.Uint64
	closed  atomic.Bool
}

// newPublisher creates a publisher registered with the given entry,
// starting healthy
func newPublisher(e *entry) *Publisher {
	p := &Publisher{
		id:    uuid.NewString(),
		entry: e,
	}

	initial := health.NewHealthy()
	p.cell.Store(&initial)

	e.addPublisher(p)
	return p
}

// ID returns the publisher's unique identifier, used in report breakdowns
func (p *Publisher) ID() string {
	return p.id
}

// Healthy reports that the publisher's source is functioning as expected
func (p *Publisher) Healthy() {
	p.set(health.NewHealthy())
}

// Degraded reports that the publisher's source is impaired
func (p *Publisher) Degraded(reason string) {
	p.set(health.NewDegraded(reason))
}

// Critical reports that the publisher's source is severely impaired
func (p *Publisher) Critical(reason string) {
	p.set(health.NewCritical(reason))
}

// Status returns the publisher's last-written status
func (p *Publisher) Status() health.Status {
	return *p.cell.Load()
}

// Updates returns the number of status updates written to this handle
func (p *Publisher) Updates() uint64 {
	return p.updates.Load()
}

// Close releases the publisher. Its contribution is removed from the next
// recomputation pass; updates after Close are ignored. Close is idempotent.
func (p *Publisher) Close() {
	p.closed.Store(true)
}

// set writes the publisher's private status cell and bumps its update
// counter. Only the owning caller writes here, so a plain atomic store is
// sufficient.
func (p *Publisher) set(status health.Status) {
	if p.closed.Load() {
		return
	}

	p.cell.Store(&status)
	p.updates.Add(1)
}
