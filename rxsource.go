package rx

import "sync"

// RxSource is a bounded FIFO bridging push-style external events (async
// callbacks, webhooks, queue consumers) into the Rx tree. Add appends an
// event; the runner pulls one event at a time via the Rx[Event[A]] returned
// by next, blocking (by suspending the puller) until one is available.
type RxSource[A any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []Event[A]
	capacity int
	closed   bool
}

// NewRxSource creates an RxSource with the given bounded capacity. Add
// blocks (synchronously, from the caller's goroutine) once the queue is
// full, until room frees up or the source is closed.
func NewRxSource[A any](capacity int) *RxSource[A] {
	s := &RxSource[A]{capacity: capacity}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Add appends event to the queue, waking any puller waiting in next.
func (s *RxSource[A]) Add(event Event[A]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.queue) >= s.capacity && !s.closed {
		s.cond.Wait()
	}
	if s.closed {
		return
	}
	s.queue = append(s.queue, event)
	s.cond.Broadcast()
}

// Close injects ErrInterrupted so any puller blocked in next wakes and
// observes termination (spec.md §4.4 cancellation semantics).
func (s *RxSource[A]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.queue = append(s.queue, Err[A](ErrInterrupted))
	s.cond.Broadcast()
}

// next returns an Rx that, when subscribed, pulls exactly one queued event
// (suspending until Add supplies one), then delivers it and completes.
func (s *RxSource[A]) next() Rx[Event[A]] {
	return &rxSourcePull[A]{source: s}
}

type rxSourcePull[A any] struct {
	source *RxSource[A]
}

func (r *rxSourcePull[A]) Kind() NodeKind { return KindRxSource }

func (r *rxSourcePull[A]) run(ctx runCtx, sink func(Event[Event[A]]) RxResult) Cancelable {
	s := r.source
	cancelled := false

	go func() {
		s.mu.Lock()
		for len(s.queue) == 0 && !cancelled {
			s.cond.Wait()
		}
		if cancelled {
			s.mu.Unlock()
			return
		}
		e := s.queue[0]
		s.queue = s.queue[1:]
		s.cond.Broadcast()
		s.mu.Unlock()

		res := sink(Next(e))
		if res.ShouldContinue {
			sink(Completion[Event[A]]())
		}
	}()

	return NewCancelable(func() {
		s.mu.Lock()
		cancelled = true
		s.cond.Broadcast()
		s.mu.Unlock()
	})
}

// AsRx returns the Rx[A] view of this source: subscribing loops on next(),
// forwarding every inner Next, and stopping at the first inner Error or
// Completion unless the subscription runs in continuous mode.
func (s *RxSource[A]) AsRx() Rx[A] { return &rxSourceRun[A]{source: s} }

type rxSourceRun[A any] struct {
	source *RxSource[A]
}

func (r *rxSourceRun[A]) Kind() NodeKind { return KindRxSource }

func (r *rxSourceRun[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	return r.source.pullLoop(ctx, sink)
}

// pullLoop subscribes to the source's event stream in pull-style: it loops
// on next(), forwarding every Next(inner) as the inner event, stopping on
// the first inner Error/Completion unless running in continuous mode.
func (s *RxSource[A]) pullLoop(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)
	loopCancel := newAssignableCancelable()

	var pull func()
	pull = func() {
		if loopCancel.Canceled() {
			return
		}
		c := s.next().run(ctx, func(wrapped Event[Event[A]]) RxResult {
			if !wrapped.IsNext() {
				return Stop
			}
			inner := wrapped.Value()
			res := sink(inner)
			if inner.IsNext() && res.ShouldContinue {
				pull()
			} else if !inner.IsNext() && ctx.continuous {
				pull()
			}
			return res
		})
		loopCancel.Set(c)
	}
	pull()

	return loopCancel
}
