package health

// Report is an immutable snapshot of aggregated health at a point in the
// aggregator's logical time. Two reports carrying the same version are
// content-identical.
type Report struct {
	Version    uint64            `json:"version"`
	Status     Status            `json:"status"`
	Components []ComponentReport `json:"components,omitempty"`
}

// ComponentReport is the per-component section of a report, ordered by
// component name within the parent report.
type ComponentReport struct {
	Name       string            `json:"name"`
	Status     Status            `json:"status"`
	Publishers []PublisherReport `json:"publishers,omitempty"`
}

// PublisherReport is the per-publisher breakdown within a component section.
type PublisherReport struct {
	ID      string `json:"id"`
	Status  Status `json:"status"`
	Updates uint64 `json:"updates"`
}

// Component returns the section for the named component, if present
func (r Report) Component(name string) (ComponentReport, bool) {
	for _, cr := range r.Components {
		if cr.Name == name {
			return cr, true
		}
	}
	return ComponentReport{}, false
}

// Filtered projects the report through the filter, dropping detail the
// filter does not request. A minimal-detail report is always derivable from
// a full-detail one this way; the reverse never holds.
func (r Report) Filtered(filter Filter) Report {
	result := Report{
		Version: r.Version,
		Status:  r.Status,
	}

	if !filter.Reasons {
		result.Status.Reason = ""
	}

	if !filter.Components {
		return result
	}

	result.Components = make([]ComponentReport, 0, len(r.Components))
	for _, cr := range r.Components {
		if filter.UnhealthyOnly && cr.Status.IsHealthy() {
			continue
		}
		result.Components = append(result.Components, cr.filtered(filter))
	}

	return result
}

// filtered projects one component section through the filter
func (cr ComponentReport) filtered(filter Filter) ComponentReport {
	result := ComponentReport{
		Name:   cr.Name,
		Status: cr.Status,
	}

	if !filter.Reasons {
		result.Status.Reason = ""
	}

	if !filter.Publishers {
		return result
	}

	result.Publishers = make([]PublisherReport, 0, len(cr.Publishers))
	for _, pr := range cr.Publishers {
		if filter.UnhealthyOnly && pr.Status.IsHealthy() {
			continue
		}
		if !filter.Reasons {
			pr.Status.Reason = ""
		}
		result.Publishers = append(result.Publishers, pr)
	}

	return result
}
