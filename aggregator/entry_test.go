package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/apphealth/health"
)

func TestEntryRecompute(t *testing.T) {
	e := newEntry("db")

	// empty entry: healthy, and the first recompute reports no change
	cs, changed := e.recompute()
	assert.False(t, changed)
	assert.Equal(t, health.NewHealthy(), cs.status)
	assert.Empty(t, cs.publishers)

	p := newPublisher(e)
	cs, changed = e.recompute()
	assert.False(t, changed, "a healthy publisher does not change a healthy aggregate")
	require.Len(t, cs.publishers, 1)

	p.Degraded("slow")
	cs, changed = e.recompute()
	assert.True(t, changed)
	assert.Equal(t, health.NewDegraded("slow"), cs.status)

	// unchanged input: recompute is a no-op
	_, changed = e.recompute()
	assert.False(t, changed)

	p.Close()
	cs, changed = e.recompute()
	assert.True(t, changed, "pruning the degraded publisher restores healthy")
	assert.Equal(t, health.NewHealthy(), cs.status)
	assert.Empty(t, cs.publishers)
	assert.True(t, e.retirable())
}

func TestEntryRecomputeDeterministicOrder(t *testing.T) {
	e := newEntry("db")

	for i := 0; i < 5; i++ {
		newPublisher(e)
	}

	first, _ := e.recompute()
	second, _ := e.recompute()

	require.Len(t, first.publishers, 5)
	for i := range first.publishers {
		assert.Equal(t, first.publishers[i].id, second.publishers[i].id,
			"publisher order is stable across recomputes")
		if i > 0 {
			assert.Less(t, first.publishers[i-1].id, first.publishers[i].id,
				"publishers are ordered by id")
		}
	}
}

func TestEntryRefCounting(t *testing.T) {
	e := newEntry("db")
	assert.True(t, e.retirable())

	e.addRef()
	assert.False(t, e.retirable())

	e.dropRef()
	assert.True(t, e.retirable())

	assert.Panics(t, func() { e.dropRef() }, "refcount underflow is a programming defect")
}

func TestSnapshotSameContentIgnoresUpdateCounters(t *testing.T) {
	a := &snapshot{
		version: 1,
		overall: health.NewDegraded("slow"),
		components: []componentSnapshot{{
			name:   "db",
			status: health.NewDegraded("slow"),
			publishers: []publisherSnapshot{
				{id: "p1", status: health.NewDegraded("slow"), updates: 1},
			},
		}},
	}

	b := &snapshot{
		version: 2,
		overall: health.NewDegraded("slow"),
		components: []componentSnapshot{{
			name:   "db",
			status: health.NewDegraded("slow"),
			publishers: []publisherSnapshot{
				{id: "p1", status: health.NewDegraded("slow"), updates: 99},
			},
		}},
	}

	assert.True(t, a.sameContent(b), "update counters alone are not a content change")

	b.components[0].publishers[0].status = health.NewCritical("down")
	assert.False(t, a.sameContent(b))
}
