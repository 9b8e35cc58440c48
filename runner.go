package rx

// Option configures a Run/RunOnce/RunContinuously invocation.
type Option func(*runCtx)

// WithScheduler injects a Scheduler for timed operators (Interval, Timer,
// Throttle*, Timeout, Debounce, Cron). Defaults to DefaultScheduler().
func WithScheduler(s Scheduler) Option {
	return func(c *runCtx) { c.sched = s }
}

// WithLogger attaches a diagnostic logger used by the error guard (§4.1.2)
// to report recovered panics. modules/rxlog provides a zap.Logger-backed
// implementation.
func WithLogger(l diagLogger) Option {
	return func(c *runCtx) { c.log = l }
}

func newRunCtx(continuous bool, opts []Option) runCtx {
	ctx := runCtx{continuous: continuous, sched: DefaultScheduler(), log: noopLog{}}
	for _, opt := range opts {
		opt(&ctx)
	}
	return ctx
}

// Run interprets rx in one-shot mode: once a Completion or Error reaches
// the runner on a given path, no further Next is delivered on that path
// (spec.md §3 invariant 2, §4.1.3). Returns a Cancelable that tears down
// the entire subscription tree; canceling it is idempotent (§3 invariant 3).
func Run[A any](r Rx[A], sink func(Event[A]) RxResult, opts ...Option) Cancelable {
	ctx := newRunCtx(false, opts)
	return r.run(ctx, func(e Event[A]) RxResult {
		res := sink(e)
		if !e.IsNext() {
			return Stop
		}
		return res
	})
}

// RunContinuously interprets rx in continuous mode: hot sources (RxVar,
// RxSource, Interval, Cron) and the combined-stream engine keep delivering
// events past a Completion/Error observed on their path, instead of
// latching into a terminal state. Useful for sinks (e.g. UI rendering)
// that must keep listening to a hot source indefinitely (spec.md §9).
func RunContinuously[A any](r Rx[A], sink func(Event[A]) RxResult, opts ...Option) Cancelable {
	ctx := newRunCtx(true, opts)
	return r.run(ctx, sink)
}

// RunOnce is sugar over Run that stops the subscription after the first
// Next it observes, regardless of what the sink returns for later events
// (it never sees any).
func RunOnce[A any](r Rx[A], sink func(Event[A]) RxResult, opts ...Option) Cancelable {
	done := false
	wrapped := func(e Event[A]) RxResult {
		if done {
			return Stop
		}
		res := sink(e)
		if e.IsNext() {
			done = true
			return Stop
		}
		return res
	}
	return Run(r, wrapped, opts...)
}

// Subscribe is sugar over Run for callers that only care about values: f is
// called for each Next, and the subscription is canceled (from the sink's
// perspective, by returning Stop) as soon as a Completion or Error is
// observed.
func Subscribe[A any](r Rx[A], f func(A), opts ...Option) Cancelable {
	return Run(r, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			f(e.Value())
			return Continue
		default:
			return Stop
		}
	}, opts...)
}
