// Package aggregator implements the in-process health aggregation engine.
//
// Independent parts of an application report their health through
// publishers. Each publisher belongs to exactly one named component, and a
// component's health is the most severe status among its live publishers.
// The aggregator owns the component registry and runs a debounced
// background pass that reduces publisher statuses to component statuses,
// component statuses to an overall status, and publishes the result as an
// immutable, versioned snapshot.
//
// Writers never contend with each other or with the pass: every publisher
// owns its own atomic status cell, and the pass is the only goroutine that
// publishes snapshots or retires registry entries. Monitors read the
// published snapshot without blocking, or block in WaitForChange until the
// snapshot version advances past the version they last observed. Because
// waiters compare versions rather than consuming discrete events, a waiter
// that is slow to return never misses a transition and never processes a
// stale one.
//
// The debounce interval bounds notification frequency to at most one
// published snapshot per interval regardless of publish volume. This trades
// strict immediacy for predictable load and is configured through
// config.AggregatorConfig, not hidden in a constant.
package aggregator
