package aggregator

import (
	"github.com/c360/apphealth/health"
)

// snapshot is the immutable result of one completed recomputation pass.
// Components are ordered by name. Snapshots are shared between the pass
// goroutine and any number of readers and must never be mutated after
// publication.
type snapshot struct {
	version    uint64
	overall    health.Status
	components []componentSnapshot
}

type componentSnapshot struct {
	name       string
	status     health.Status
	publishers []publisherSnapshot
}

type publisherSnapshot struct {
	id      string
	status  health.Status
	updates uint64
}

// component returns the section for the named component, if present
func (s *snapshot) component(name string) (componentSnapshot, bool) {
	for _, cs := range s.components {
		if cs.name == name {
			return cs, true
		}
	}
	return componentSnapshot{}, false
}

// sameContent reports whether two snapshots would produce identical reports
// apart from version stamps and update counters. Update counters are
// excluded deliberately: a publisher rewriting an unchanged status must not
// advance the version.
func (s *snapshot) sameContent(other *snapshot) bool {
	if s.overall != other.overall || len(s.components) != len(other.components) {
		return false
	}

	for i, cs := range s.components {
		if !cs.sameContent(other.components[i]) {
			return false
		}
	}

	return true
}

func (cs componentSnapshot) sameContent(other componentSnapshot) bool {
	if cs.name != other.name || cs.status != other.status || len(cs.publishers) != len(other.publishers) {
		return false
	}

	for i, ps := range cs.publishers {
		if ps.id != other.publishers[i].id || ps.status != other.publishers[i].status {
			return false
		}
	}

	return true
}

// report materializes the snapshot as a full-detail report projected
// through the filter
func (s *snapshot) report(filter health.Filter) health.Report {
	full := health.Report{
		Version:    s.version,
		Status:     s.overall,
		Components: make([]health.ComponentReport, 0, len(s.components)),
	}

	for _, cs := range s.components {
		full.Components = append(full.Components, cs.report())
	}

	return full.Filtered(filter)
}

// componentReport materializes a report scoped to one component section
func (s *snapshot) componentReport(cs componentSnapshot, filter health.Filter) health.Report {
	full := health.Report{
		Version:    s.version,
		Status:     cs.status,
		Components: []health.ComponentReport{cs.report()},
	}

	return full.Filtered(filter)
}

func (cs componentSnapshot) report() health.ComponentReport {
	cr := health.ComponentReport{
		Name:       cs.name,
		Status:     cs.status,
		Publishers: make([]health.PublisherReport, 0, len(cs.publishers)),
	}

	for _, ps := range cs.publishers {
		cr.Publishers = append(cr.Publishers, health.PublisherReport{
			ID:      ps.id,
			Status:  ps.status,
			Updates: ps.updates,
		})
	}

	return cr
}
