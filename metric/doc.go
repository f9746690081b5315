// Package metric provides Prometheus instrumentation for the health
// aggregation engine: recomputation pass counts and durations, the
// published snapshot version, live component and publisher counts, and the
// overall and per-component health states.
//
// The engine accepts a nil *Metrics and records nothing in that case, so
// instrumentation is strictly optional.
package metric
