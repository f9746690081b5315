package health

// Filter controls how much detail a report materializes.
//
// The zero value is the minimal-detail configuration: overall status only,
// with no nested breakdown and no reason strings.
type Filter struct {
	// Components includes a per-component section in the report
	Components bool
	// Publishers includes the per-publisher breakdown within each component
	// section; it has no effect unless Components is also set
	Publishers bool
	// Reasons includes reason strings in the report
	Reasons bool
	// UnhealthyOnly restricts component sections and publisher breakdowns
	// to entries that are not healthy
	UnhealthyOnly bool
}

// EmptyFilter returns the minimal-detail filter: overall status only
func EmptyFilter() Filter {
	return Filter{}
}

// FullFilter returns the maximal-detail filter: per-component sections,
// publisher breakdowns, and reasons, with nothing suppressed
func FullFilter() Filter {
	return Filter{
		Components: true,
		Publishers: true,
		Reasons:    true,
	}
}
