package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusConstructors(t *testing.T) {
	assert.Equal(t, Status{State: StateHealthy}, NewHealthy())
	assert.Equal(t, Status{State: StateDegraded, Reason: "slow"}, NewDegraded("slow"))
	assert.Equal(t, Status{State: StateCritical, Reason: "down"}, NewCritical("down"))
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, NewHealthy().IsHealthy())
	assert.False(t, NewHealthy().IsDegraded())
	assert.False(t, NewHealthy().IsCritical())

	assert.True(t, NewDegraded("x").IsDegraded())
	assert.True(t, NewCritical("x").IsCritical())
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{
			name:     "empty input is healthy with no reason",
			statuses: nil,
			want:     NewHealthy(),
		},
		{
			name:     "single healthy",
			statuses: []Status{NewHealthy()},
			want:     NewHealthy(),
		},
		{
			name:     "most severe wins",
			statuses: []Status{NewHealthy(), NewDegraded("slow"), NewCritical("down"), NewDegraded("other")},
			want:     NewCritical("down"),
		},
		{
			name:     "tie resolves to first reason in iteration order",
			statuses: []Status{NewDegraded("first"), NewDegraded("second")},
			want:     NewDegraded("first"),
		},
		{
			name:     "healthy tie keeps first reason",
			statuses: []Status{{State: StateHealthy, Reason: "warmed up"}, NewHealthy()},
			want:     Status{State: StateHealthy, Reason: "warmed up"},
		},
		{
			name:     "later more severe overrides earlier reason",
			statuses: []Status{NewDegraded("ignore me"), NewCritical("the real problem")},
			want:     NewCritical("the real problem"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.statuses)
			assert.Equal(t, tt.want, got)

			// reduction over unchanged input is idempotent
			assert.Equal(t, got, Reduce(tt.statuses))
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	statuses := []Status{NewDegraded("a"), NewCritical("b")}
	_ = Reduce(statuses)

	assert.Equal(t, NewDegraded("a"), statuses[0])
	assert.Equal(t, NewCritical("b"), statuses[1])
}
