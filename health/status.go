package health

// Status pairs a severity state with an optional human-readable reason.
// Two statuses are equal for change-detection purposes when both the state
// and the reason match.
type Status struct {
	State  State  `json:"state"`
	Reason string `json:"reason,omitempty"`
}

// NewHealthy creates a healthy status with no reason
func NewHealthy() Status {
	return Status{State: StateHealthy}
}

// NewDegraded creates a degraded status with the given reason
func NewDegraded(reason string) Status {
	return Status{State: StateDegraded, Reason: reason}
}

// NewCritical creates a critical status with the given reason
func NewCritical(reason string) Status {
	return Status{State: StateCritical, Reason: reason}
}

// IsHealthy returns true if the status is healthy
func (s Status) IsHealthy() bool {
	return s.State == StateHealthy
}

// IsDegraded returns true if the status is degraded
func (s Status) IsDegraded() bool {
	return s.State == StateDegraded
}

// IsCritical returns true if the status is critical
func (s Status) IsCritical() bool {
	return s.State == StateCritical
}

// Reduce combines a set of statuses into one by picking the most severe.
//
// Ties on severity resolve to the first reason encountered in iteration
// order, so repeated reduction over an unchanged input yields an identical
// result. An empty input reduces to a healthy status with no reason.
func Reduce(statuses []Status) Status {
	if len(statuses) == 0 {
		return NewHealthy()
	}

	result := statuses[0]
	for _, status := range statuses[1:] {
		if status.State > result.State {
			result = status
		}
	}
	return result
}
