// Package rx implements a reactive-streams evaluator: a declarative tree of
// stream operators ("Rx expressions") executed against event-driven sources,
// emitting Next/Error/Completion events to a sink while honoring
// demand-based backpressure, cancellation, and error propagation.
//
// The package fuses three concerns: a closed algebra of stream combinators
// (Map, FlatMap, Filter, Zip, Join, Concat, Take, Cache, Interval, Throttle,
// Timeout, Recover, Buffer, backpressure strategies, ...), a cooperative
// backpressure model where the sink reports demand after every Next, and hot
// mutable sources (RxVar, RxSource) that fan out to live subscribers.
//
// Sub-packages extend the core without changing its semantics:
// modules/scheduler layers cron scheduling on the Scheduler adapter,
// modules/rxcloud bridges Event values to CloudEvents, and modules/rxlog
// attaches structured logging to any subscription.
package rx
