// Package health defines the value types of the health model: severity
// states, statuses with reasons, the reduction rule that combines many
// statuses into one, and the filterable report snapshots produced by the
// aggregator.
//
// Everything in this package is a plain value with no concurrency concerns.
// The single aggregation primitive is Reduce, which picks the most severe
// status from a set; it is applied at the publisher level to compute a
// component's status and again at the component level to compute the
// overall application status.
package health
