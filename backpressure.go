package rx

// BackpressureStrategy selects how BackpressureBuffer reacts to overflow.
type BackpressureStrategy int

const (
	// DropOldest discards the front of the buffer to make room.
	DropOldest BackpressureStrategy = iota
	// DropNewest discards the incoming value instead of anything buffered.
	DropNewest
	// ErrorOnOverflow emits Error(OverflowError) instead of buffering.
	ErrorOnOverflow
)

// ---- Buffer ---------------------------------------------------------------

type rxBuffer[A any] struct {
	in       Rx[A]
	capacity int
}

func (r *rxBuffer[A]) Kind() NodeKind { return KindBuffer }

func (r *rxBuffer[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)
	var queue []A
	terminal := (*Event[A])(nil)

	drain := func() RxResult {
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			res := sink(Next(v))
			if !res.ShouldContinue {
				return Stop
			}
			if res.IsPaused() {
				return Paused
			}
		}
		if terminal != nil {
			t := *terminal
			terminal = nil
			return sink(t)
		}
		return Continue
	}

	return r.in.run(ctx, func(e Event[A]) RxResult {
		if e.IsNext() {
			if len(queue) >= r.capacity {
				return Paused
			}
			queue = append(queue, e.Value())
			return drain()
		}
		terminal = &e
		return drain()
	})
}

// Buffer queues up to capacity items from in, draining them to the sink as
// it reports demand. When the buffer is full it reports Paused upstream
// instead of accepting more.
func Buffer[A any](in Rx[A], capacity int) Rx[A] {
	return &rxBuffer[A]{in: in, capacity: capacity}
}

// ---- BackpressureDrop -----------------------------------------------------

type rxBackpressureDrop[A any] struct {
	in     Rx[A]
	onDrop func(A)
}

func (r *rxBackpressureDrop[A]) Kind() NodeKind { return KindBackpressureDrop }

func (r *rxBackpressureDrop[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)
	busy := false

	return r.in.run(ctx, func(e Event[A]) RxResult {
		if !e.IsNext() {
			return sink(e)
		}
		if busy {
			if r.onDrop != nil {
				callEffect(ctx, "BackpressureDrop.onDrop", func() { r.onDrop(e.Value()) })
			}
			return Continue
		}
		busy = true
		res := sink(e)
		busy = false
		return res
	})
}

// BackpressureDrop forwards Next events while the sink is free; any Next
// arriving while a previous delivery is still in flight on this path is
// dropped (invoking onDrop, if supplied) instead of queued.
func BackpressureDrop[A any](in Rx[A], onDrop func(A)) Rx[A] {
	return &rxBackpressureDrop[A]{in: in, onDrop: onDrop}
}

// ---- BackpressureBuffer -----------------------------------------------------

type rxBackpressureBuffer[A any] struct {
	in       Rx[A]
	capacity int
	strategy BackpressureStrategy
}

func (r *rxBackpressureBuffer[A]) Kind() NodeKind { return KindBackpressureBuffer }

func (r *rxBackpressureBuffer[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)
	var queue []A

	drain := func() RxResult {
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			res := sink(Next(v))
			if !res.ShouldContinue {
				return Stop
			}
		}
		return Continue
	}

	return r.in.run(ctx, func(e Event[A]) RxResult {
		if !e.IsNext() {
			res := drain()
			if !res.ShouldContinue {
				return res
			}
			return sink(e)
		}

		if len(queue) < r.capacity {
			queue = append(queue, e.Value())
			return drain()
		}

		switch r.strategy {
		case DropOldest:
			queue = queue[1:]
			queue = append(queue, e.Value())
			return drain()
		case DropNewest:
			return Continue
		default:
			queue = nil
			sink(Err[A](&OverflowError{Capacity: r.capacity}))
			return Stop
		}
	})
}

// BackpressureBuffer queues up to capacity values from in, draining
// eagerly. On overflow it applies strategy: DropOldest evicts the front of
// the queue to make room, DropNewest discards the arriving value, and
// ErrorOnOverflow emits Error(OverflowError), discards the queue and stops.
func BackpressureBuffer[A any](in Rx[A], capacity int, strategy BackpressureStrategy) Rx[A] {
	return &rxBackpressureBuffer[A]{in: in, capacity: capacity, strategy: strategy}
}

// ---- BackpressureLatest -----------------------------------------------------

type rxBackpressureLatest[A any] struct {
	in Rx[A]
}

func (r *rxBackpressureLatest[A]) Kind() NodeKind { return KindBackpressureLatest }

func (r *rxBackpressureLatest[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)
	var pending A
	have := false

	drain := func() RxResult {
		if !have {
			return Continue
		}
		v := pending
		have = false
		return sink(Next(v))
	}

	return r.in.run(ctx, func(e Event[A]) RxResult {
		if !e.IsNext() {
			drain()
			return sink(e)
		}
		pending = e.Value()
		have = true
		return drain()
	})
}

// BackpressureLatest keeps only the newest pending value from in, replacing
// whatever hadn't yet been delivered; the sink always receives the most
// recent value once it reports demand.
func BackpressureLatest[A any](in Rx[A]) Rx[A] {
	return &rxBackpressureLatest[A]{in: in}
}
