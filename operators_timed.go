package rx

import (
	"sync"
	"time"
)

// ---- Interval ---------------------------------------------------------------

type rxInterval struct {
	period time.Duration
}

func (r *rxInterval) Kind() NodeKind { return KindInterval }

func (r *rxInterval) run(ctx runCtx, sink func(Event[uint64]) RxResult) Cancelable {
	sink = serialSink(sink)
	timer := ctx.sched.NewTimer()
	c := timer.Schedule(r.period, func(tick uint64) {
		res := sink(Next(tick))
		if !res.ShouldContinue {
			timer.Cancel()
		}
	})
	return c
}

// Interval emits Next(tickIndex) every period, starting at tick 0 and
// incrementing on every firing. Stops when the sink returns Stop, or when
// the returned Cancelable is canceled.
func Interval(period time.Duration) Rx[uint64] { return &rxInterval{period: period} }

// ---- Timer --------------------------------------------------------------

type rxTimer struct {
	delay time.Duration
}

func (r *rxTimer) Kind() NodeKind { return KindTimer }

func (r *rxTimer) run(ctx runCtx, sink func(Event[uint64]) RxResult) Cancelable {
	return ctx.sched.ScheduleOnce(r.delay, func() {
		var res RxResult
		if err := callEffect(ctx, "Timer", func() { res = sink(Next[uint64](0)) }); err != nil {
			// A panicking sink on Next ends the timer with an Error instead
			// of a Completion.
			sink(Err[uint64](err))
			return
		}
		if res.ShouldContinue {
			sink(Completion[uint64]())
		}
	})
}

// Timer fires once after delay, emitting Next(0) followed by Completion.
func Timer(delay time.Duration) Rx[uint64] { return &rxTimer{delay: delay} }

// ---- ThrottleFirst --------------------------------------------------------

type rxThrottleFirst[A any] struct {
	in       Rx[A]
	interval time.Duration
}

func (r *rxThrottleFirst[A]) Kind() NodeKind { return KindThrottleFirst }

func (r *rxThrottleFirst[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)
	var mu sync.Mutex
	windowOpen := true

	timer := ctx.sched.NewTimer()
	timerCancel := timer.Schedule(r.interval, func(tick uint64) {
		mu.Lock()
		windowOpen = true
		mu.Unlock()
	})

	inCancel := r.in.run(ctx, func(e Event[A]) RxResult {
		if e.IsNext() {
			mu.Lock()
			open := windowOpen
			if open {
				windowOpen = false
			}
			mu.Unlock()
			if !open {
				// Silently dropped: no Completion, no Error, per spec.
				return Continue
			}
			return sink(e)
		}
		return sink(e)
	})

	return Merge(inCancel, timerCancel)
}

// ThrottleFirst forwards at most one Next per interval; after a value is
// forwarded, further values are dropped silently (no Completion is emitted
// for a drop) until the next timer tick reopens the window.
func ThrottleFirst[A any](in Rx[A], interval time.Duration) Rx[A] {
	return &rxThrottleFirst[A]{in: in, interval: interval}
}

// ---- ThrottleLast ---------------------------------------------------------

type rxThrottleLast[A any] struct {
	in       Rx[A]
	interval time.Duration
	equal    func(A, A) bool
}

func (r *rxThrottleLast[A]) Kind() NodeKind { return KindThrottleLast }

func (r *rxThrottleLast[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)

	var (
		mu       sync.Mutex
		have     bool
		reported bool
		latest   A
		lastSent A
	)

	timer := ctx.sched.NewTimer()
	timerCancel := timer.Schedule(r.interval, func(tick uint64) {
		mu.Lock()
		if !have || (reported && r.equal(lastSent, latest)) {
			mu.Unlock()
			return
		}
		lastSent = latest
		reported = true
		toSend := lastSent
		mu.Unlock()
		sink(Next(toSend))
	})

	inCancel := r.in.run(ctx, func(e Event[A]) RxResult {
		if e.IsNext() {
			mu.Lock()
			latest = e.Value()
			have = true
			mu.Unlock()
			return Continue
		}
		return sink(e)
	})

	return Merge(inCancel, timerCancel)
}

// ThrottleLast buffers the latest value from in and, on each timer tick,
// emits it only if it differs (by equal) from the last value reported.
func ThrottleLast[A any](in Rx[A], interval time.Duration, equal func(A, A) bool) Rx[A] {
	return &rxThrottleLast[A]{in: in, interval: interval, equal: equal}
}

// ---- Debounce ---------------------------------------------------------------

type rxDebounce[A any] struct {
	in    Rx[A]
	quiet time.Duration
}

func (r *rxDebounce[A]) Kind() NodeKind { return KindDebounce }

func (r *rxDebounce[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)

	var mu sync.Mutex
	pending := newAssignableCancelable()
	var generation uint64

	return r.in.run(ctx, func(e Event[A]) RxResult {
		if !e.IsNext() {
			pending.Cancel()
			return sink(e)
		}

		mu.Lock()
		generation++
		gen := generation
		v := e.Value()
		mu.Unlock()

		pending.Set(ctx.sched.ScheduleOnce(r.quiet, func() {
			mu.Lock()
			fire := gen == generation
			mu.Unlock()
			if fire {
				sink(Next(v))
			}
		}))
		return Continue
	})
}

// Debounce emits the latest value from in only after it has been silent
// for quiet; any new value arriving before that resets the timer, so a
// value that is immediately superseded is never emitted.
func Debounce[A any](in Rx[A], quiet time.Duration) Rx[A] {
	return &rxDebounce[A]{in: in, quiet: quiet}
}

// ---- Timeout --------------------------------------------------------------

type rxTimeout[A any] struct {
	in      Rx[A]
	timeout time.Duration
}

func (r *rxTimeout[A]) Kind() NodeKind { return KindTimeout }

func (r *rxTimeout[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)

	var mu timeoutLatch
	inner := newAssignableCancelable()

	fireTimeout := func() {
		if !mu.fire() {
			return
		}
		inner.Cancel()
		sink(Err[A](&TimeoutError{Duration: r.timeout}))
	}

	timerCancel := ctx.sched.ScheduleOnce(r.timeout, fireTimeout)

	// disarmed gates only the initial race against the timer: once the
	// first real event has won it, every later event from in must still
	// pass through normally. It's touched only from in's own (serial)
	// callback, never from the timer goroutine, so it needs no lock of
	// its own.
	var disarmed bool
	c := r.in.run(ctx, func(e Event[A]) RxResult {
		if !disarmed {
			if !mu.fire() {
				return Stop
			}
			timerCancel.Cancel()
			disarmed = true
		}
		return sink(e)
	})
	inner.Set(c)

	return Merge(inner, timerCancel)
}

// timeoutLatch guarantees exactly one of {timer fire, real event, cancel}
// wins the race Timeout sets up between its timer and its input; an atomic
// compare-and-set across goroutines, since the timer callback and the
// input's sink callback may run concurrently.
type timeoutLatch struct {
	mu   sync.Mutex
	done bool
}

func (t *timeoutLatch) fire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Timeout arms a one-shot timer alongside in: if the timer fires first, in
// is canceled and Error(TimeoutError) is emitted; if an event arrives from
// in first, the timer is disarmed and the event passes through unchanged.
func Timeout[A any](in Rx[A], timeout time.Duration) Rx[A] {
	return &rxTimeout[A]{in: in, timeout: timeout}
}
