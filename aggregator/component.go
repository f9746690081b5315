package aggregator

import (
	"sync/atomic"
)

// Component is a caller-facing handle on a named component. Handles are
// cheap: requesting the same name from the aggregator again returns a new
// handle on the same underlying registry entry.
//
// A component stays in the registry for as long as it has live publishers
// or open handles. Once both reach zero, the next recomputation pass
// retires it.
type Component struct {
	entry  *entry
	closed atomic.Bool
}

// Name returns the component's name
func (c *Component) Name() string {
	return c.entry.name
}

// Publisher creates a new reporting handle for this component, starting in
// the healthy state. Any number of publishers may coexist.
func (c *Component) Publisher() *Publisher {
	if c.closed.Load() {
		// A closed handle can no longer extend the component's lifetime,
		// so hand back a publisher that is already released.
		p := newPublisher(c.entry)
		p.Close()
		return p
	}

	return newPublisher(c.entry)
}

// Close releases this handle's reference on the component. The component
// itself survives until its publishers are also released. Close is
// idempotent.
func (c *Component) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.entry.dropRef()
	}
}
