package health

import (
	"encoding/json"
	"fmt"
	"strings"
)

// State represents the severity of a health status.
// States are totally ordered: StateHealthy < StateDegraded < StateCritical.
type State int

const (
	// StateHealthy indicates everything is functioning as expected
	StateHealthy State = iota
	// StateDegraded indicates functionality is available but impaired
	StateDegraded
	// StateCritical indicates severe impairment that materially affects functionality
	StateCritical
)

// String returns a string representation of the state
func (s State) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	case StateCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseState converts a state string back to a State value
func ParseState(s string) (State, error) {
	switch strings.ToLower(s) {
	case "healthy":
		return StateHealthy, nil
	case "degraded":
		return StateDegraded, nil
	case "critical":
		return StateCritical, nil
	default:
		return StateHealthy, fmt.Errorf("unknown health state %q", s)
	}
}

// MarshalJSON encodes the state as its string form
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the state from its string form
func (s *State) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseState(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
