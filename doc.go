// Package apphealth is an in-process health aggregation engine.
//
// Independent parts of a running application report their health through
// publishers; an aggregator combines those reports into per-component and
// whole-application health; observers snapshot the result or block until it
// materially changes. The engine is pure aggregation and notification
// fabric: feeding the result to telemetry, liveness probes, or readiness
// gates is the consumer's job.
//
// # Architecture
//
//	┌──────────────────────────────────────┐
//	│          Publishers                  │  one per reporting source,
//	│  (healthy / degraded / critical)     │  lock-free status cells
//	└──────────────────┬───────────────────┘
//	                   │ enumerated by
//	┌──────────────────▼───────────────────┐
//	│          Aggregator                  │  component registry,
//	│   (debounced recomputation pass)     │  versioned snapshots
//	└──────────────────┬───────────────────┘
//	                   │ observed by
//	┌──────────────────▼───────────────────┐
//	│          Monitors                    │  filtered reports,
//	│  (snapshot reads, wait-for-change)   │  broadcast wake-up
//	└──────────────────────────────────────┘
//
// A component's health is the most severe status among its live publishers;
// the application's health is the most severe status among its components.
// The same reduction rule (health.Reduce) is applied at both levels.
//
// The aggregator recomputes on a debounced interval rather than on every
// publish, bounding notification frequency to at most one published
// snapshot per interval regardless of publish volume. Every published
// snapshot carries a version that advances exactly when the report's
// content changes; waiters compare versions instead of consuming events,
// so a slow observer sees the latest cumulative state and can never miss or
// double-process a transition.
//
// # Packages
//
//   - health: severity states, statuses, the reduction rule, filters, and
//     report value types
//   - aggregator: the engine — registry, publishers, debounce loop,
//     monitors, and the wait/notify protocol
//   - config: YAML + environment configuration with validation
//   - errors: classified error handling shared across the module
//   - metric: optional Prometheus instrumentation of the engine
//   - cmd/healthmon: demonstration binary running a simulated workload
//
// # Example
//
//	agg := aggregator.New(config.Default().Aggregator, logger, nil)
//	defer agg.Close()
//
//	db := agg.Component("database")
//	pub := db.Publisher()
//	pub.Degraded("high replica lag")
//
//	monitor := agg.Monitor()
//	report, err := monitor.WaitForChange(ctx, health.FullFilter())
package apphealth
