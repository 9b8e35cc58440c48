package rx

// ---- Map ----------------------------------------------------------------

type rxMap[A, B any] struct {
	in Rx[A]
	f  func(A) B
}

func (r *rxMap[A, B]) Kind() NodeKind { return KindMap }

func (r *rxMap[A, B]) run(ctx runCtx, sink func(Event[B]) RxResult) Cancelable {
	return r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			out, err := callUnary(ctx, "Map", r.f, e.Value())
			if err != nil {
				return sink(Err[B](err))
			}
			return sink(Next(out))
		case KindError:
			return sink(Err[B](e.Cause()))
		default:
			return sink(Completion[B]())
		}
	})
}

// Map computes f(v) for every Next(v). A panic inside f becomes an
// Error on the mapped stream instead of crashing the subscription;
// Completion and Error pass through unchanged.
func Map[A, B any](in Rx[A], f func(A) B) Rx[B] {
	return &rxMap[A, B]{in: in, f: f}
}

// ---- Filter ---------------------------------------------------------------

type rxFilter[A any] struct {
	in   Rx[A]
	pred func(A) bool
}

func (r *rxFilter[A]) Kind() NodeKind { return KindFilter }

func (r *rxFilter[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	return r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			keep, err := callPredicate(ctx, "Filter", r.pred, e.Value())
			if err != nil {
				return sink(Err[A](err))
			}
			if keep {
				return sink(Next(e.Value()))
			}
			// A filtered-out value surfaces as Completion to the sink but
			// the subscription stays live: the upstream always sees
			// Continue here regardless of what the sink returned for that
			// synthetic Completion (spec.md §4.1.1, property 3).
			sink(Completion[A]())
			return Continue
		default:
			return sink(e)
		}
	})
}

// Filter forwards Next(v) when pred(v) is true. When pred(v) is false the
// sink observes a Completion, but the underlying subscription remains live
// to deliver later values from the source (spec.md §8 property 3, scenario
// S1). A panic inside pred becomes an Error.
func Filter[A any](in Rx[A], pred func(A) bool) Rx[A] {
	return &rxFilter[A]{in: in, pred: pred}
}

// ---- FlatMap ----------------------------------------------------------------

type rxFlatMap[A, B any] struct {
	in Rx[A]
	f  func(A) Rx[B]
}

func (r *rxFlatMap[A, B]) Kind() NodeKind { return KindFlatMap }

func (r *rxFlatMap[A, B]) run(ctx runCtx, sink func(Event[B]) RxResult) Cancelable {
	sink = serialSink(sink)
	inner := newAssignableCancelable()

	outerCancel := r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			// At most one inner subscription is live per outer value
			// (spec.md §8 property 5): cancel whatever inner subscription
			// was previously running before calling f and subscribing.
			inner.Set(nil)
			body, err := callUnary(ctx, "FlatMap", r.f, e.Value())
			if err != nil {
				return sink(Err[B](err))
			}
			c := body.run(ctx, func(ie Event[B]) RxResult {
				switch ie.Kind() {
				case KindNext:
					return sink(ie)
				case KindError:
					return sink(ie)
				default:
					// Inner Completion is swallowed so the outer stream
					// continues (spec.md §4.1.1).
					return Continue
				}
			})
			inner.Set(c)
			return Continue
		case KindError:
			return sink(e)
		default:
			// Forward outer Completion directly and rely on cancellation
			// to tear down any live inner subscription — the simpler
			// conforming policy spec.md §4.1.1 names explicitly.
			return sink(Completion[B]())
		}
	})

	return Merge(outerCancel, inner)
}

// FlatMap calls f(v) for every Next(v) from in, subscribes to the
// resulting Rx, and forwards its Next/Error events while swallowing its
// Completion (so the outer stream keeps going). At most one inner
// subscription is alive at a time; a new outer value cancels the previous
// inner subscription first.
func FlatMap[A, B any](in Rx[A], f func(A) Rx[B]) Rx[B] {
	return &rxFlatMap[A, B]{in: in, f: f}
}

// ---- Transform family -------------------------------------------------------

type rxTransform[A, B any] struct {
	in Rx[A]
	f  func(Try[A]) B
}

func (r *rxTransform[A, B]) Kind() NodeKind { return KindTransform }

func (r *rxTransform[A, B]) run(ctx runCtx, sink func(Event[B]) RxResult) Cancelable {
	return r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			out, err := callUnary(ctx, "Transform", r.f, Success(e.Value()))
			if err != nil {
				return sink(Err[B](err))
			}
			return sink(Next(out))
		case KindError:
			out, err := callUnary(ctx, "Transform", r.f, Failure[A](e.Cause()))
			if err != nil {
				return sink(Err[B](err))
			}
			return sink(Next(out))
		default:
			return sink(Completion[B]())
		}
	})
}

// Transform receives every Next and Error as a Try and produces a plain
// value, letting a single function recover from errors by projecting them
// back onto the value path. Completion passes through unchanged.
func Transform[A, B any](in Rx[A], f func(Try[A]) B) Rx[B] {
	return &rxTransform[A, B]{in: in, f: f}
}

type rxTransformTry[A, B any] struct {
	in Rx[A]
	f  func(Try[A]) Try[B]
}

func (r *rxTransformTry[A, B]) Kind() NodeKind { return KindTransformTry }

func (r *rxTransformTry[A, B]) run(ctx runCtx, sink func(Event[B]) RxResult) Cancelable {
	forward := func(in Try[A]) RxResult {
		out, err := callUnary(ctx, "TransformTry", r.f, in)
		if err != nil {
			return sink(Err[B](err))
		}
		if out.IsFailure() {
			return sink(Err[B](out.Err()))
		}
		return sink(Next(out.Value()))
	}
	return r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			return forward(Success(e.Value()))
		case KindError:
			return forward(Failure[A](e.Cause()))
		default:
			return sink(Completion[B]())
		}
	})
}

// TransformTry is TransformTry: like Transform, but f itself returns a Try,
// so it can re-fail as well as recover.
func TransformTry[A, B any](in Rx[A], f func(Try[A]) Try[B]) Rx[B] {
	return &rxTransformTry[A, B]{in: in, f: f}
}

type rxTransformRx[A, B any] struct {
	in Rx[A]
	f  func(Try[A]) Rx[B]
}

func (r *rxTransformRx[A, B]) Kind() NodeKind { return KindTransformRx }

func (r *rxTransformRx[A, B]) run(ctx runCtx, sink func(Event[B]) RxResult) Cancelable {
	sink = serialSink(sink)
	inner := newAssignableCancelable()

	subscribeBody := func(in Try[A]) RxResult {
		body, err := callUnary(ctx, "TransformRx", r.f, in)
		if err != nil {
			return sink(Err[B](err))
		}
		c := body.run(ctx, func(ie Event[B]) RxResult {
			if ie.IsCompletion() {
				return Continue
			}
			return sink(ie)
		})
		inner.Set(c)
		return Continue
	}

	outerCancel := r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			return subscribeBody(Success(e.Value()))
		case KindError:
			return subscribeBody(Failure[A](e.Cause()))
		default:
			return sink(Completion[B]())
		}
	})

	return Merge(outerCancel, inner)
}

// TransformRx is TransformRx: f projects every Next/Error as a Try into an
// inner Rx to flatten, exactly like FlatMap but also reachable from errors.
func TransformRx[A, B any](in Rx[A], f func(Try[A]) Rx[B]) Rx[B] {
	return &rxTransformRx[A, B]{in: in, f: f}
}

// ---- Concat -----------------------------------------------------------------

type rxConcat[A any] struct {
	first Rx[A]
	next  Rx[A]
}

func (r *rxConcat[A]) Kind() NodeKind { return KindConcat }

func (r *rxConcat[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	firstSlot := newAssignableCancelable()
	nextSlot := newAssignableCancelable()
	c := r.first.run(ctx, func(e Event[A]) RxResult {
		if e.IsCompletion() {
			firstSlot.Cancel()
			nextSlot.Set(r.next.run(ctx, sink))
			return Continue
		}
		return sink(e)
	})
	firstSlot.Set(c)
	return Merge(firstSlot, nextSlot)
}

// Concat forwards every event from first; when first completes, it cancels
// that subscription and subscribes to next, forwarding its events in turn.
func Concat[A any](first, next Rx[A]) Rx[A] {
	return &rxConcat[A]{first: first, next: next}
}

// ---- Last / LastOption --------------------------------------------------

type rxLast[A any] struct {
	in Rx[A]
}

func (r *rxLast[A]) Kind() NodeKind { return KindLast }

func (r *rxLast[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	var last A
	have := false
	return r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			last = e.Value()
			have = true
			return Continue
		case KindError:
			return sink(e)
		default:
			if have {
				res := sink(Next(last))
				if !res.ShouldContinue {
					return res
				}
			}
			return sink(Completion[A]())
		}
	})
}

// Last buffers the most recent value and, on Completion, emits it as a
// single Next followed by Completion. An Error propagates immediately.
func Last[A any](in Rx[A]) Rx[A] { return &rxLast[A]{in: in} }

type rxLastOption[A any] struct {
	in Rx[A]
}

func (r *rxLastOption[A]) Kind() NodeKind { return KindLastOption }

func (r *rxLastOption[A]) run(ctx runCtx, sink func(Event[Option[A]]) RxResult) Cancelable {
	var last A
	have := false
	return r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			last = e.Value()
			have = true
			return Continue
		case KindError:
			return sink(Err[Option[A]](e.Cause()))
		default:
			var opt Option[A]
			if have {
				opt = Some(last)
			} else {
				opt = None[A]()
			}
			res := sink(Next(opt))
			if !res.ShouldContinue {
				return res
			}
			return sink(Completion[Option[A]]())
		}
	})
}

// LastOption is like Last but emits None if the source completed without
// ever producing a value, instead of emitting nothing.
func LastOption[A any](in Rx[A]) Rx[Option[A]] { return &rxLastOption[A]{in: in} }

// ---- Take ---------------------------------------------------------------

type rxTake[A any] struct {
	in Rx[A]
	n  int
}

func (r *rxTake[A]) Kind() NodeKind { return KindTake }

func (r *rxTake[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	if r.n <= 0 {
		sink(Completion[A]())
		return noopCancelable
	}
	count := 0
	return r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			count++
			res := sink(e)
			if count >= r.n {
				sink(Completion[A]())
				return Stop
			}
			return res
		default:
			return sink(e)
		}
	})
}

// Take forwards exactly min(n, produced) Next events, then emits
// Completion and tears the subscription down.
func Take[A any](in Rx[A], n int) Rx[A] { return &rxTake[A]{in: in, n: n} }

// ---- Named ----------------------------------------------------------------

type rxNamed[A any] struct {
	in   Rx[A]
	name string
}

func (r *rxNamed[A]) Kind() NodeKind { return KindNamed }

func (r *rxNamed[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	return r.in.run(ctx, sink)
}

// Named is a transparent passthrough; the name is used only for
// diagnostics (logging, debugging), never for dispatch.
func Named[A any](in Rx[A], name string) Rx[A] { return &rxNamed[A]{in: in, name: name} }

// Name returns the diagnostic name attached by Named, or "" if in isn't a
// Named node.
func Name[A any](in Rx[A]) string {
	if n, ok := in.(*rxNamed[A]); ok {
		return n.name
	}
	return ""
}

// ---- TapOn ----------------------------------------------------------------

type rxTapOn[A any] struct {
	in Rx[A]
	f  func(Try[A])
}

func (r *rxTapOn[A]) Kind() NodeKind { return KindTapOn }

func (r *rxTapOn[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	return r.in.run(ctx, func(e Event[A]) RxResult {
		switch e.Kind() {
		case KindNext:
			if err := callEffect(ctx, "TapOn", func() { r.f(Success(e.Value())) }); err != nil {
				return sink(Err[A](err))
			}
			return sink(e)
		case KindError:
			if err := callEffect(ctx, "TapOn", func() { r.f(Failure[A](e.Cause())) }); err != nil {
				return sink(Err[A](err))
			}
			return sink(e)
		default:
			return sink(e)
		}
	})
}

// TapOn runs a side effect for every Success(v)/Failure(err) without
// altering the event, except that a panic inside the tap function itself
// becomes an Error.
func TapOn[A any](in Rx[A], f func(Try[A])) Rx[A] { return &rxTapOn[A]{in: in, f: f} }

// ---- Recover / RecoverWith ----------------------------------------------

type rxRecover[A any] struct {
	in      Rx[A]
	matches func(error) bool
	handle  func(error) A
}

func (r *rxRecover[A]) Kind() NodeKind { return KindRecover }

func (r *rxRecover[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	return r.in.run(ctx, func(e Event[A]) RxResult {
		if e.IsError() && r.matches(e.Cause()) {
			out, err := callUnary(ctx, "Recover", r.handle, e.Cause())
			if err != nil {
				return sink(Err[A](err))
			}
			return sink(Next(out))
		}
		return sink(e)
	})
}

// Recover replaces an Error matching the given predicate with
// Next(handle(err)); events preceding the recovered error, and events
// after it, are delivered unchanged (spec.md §8 property 12, scenario S6).
// Errors the predicate rejects propagate as usual.
func Recover[A any](in Rx[A], matches func(error) bool, handle func(error) A) Rx[A] {
	return &rxRecover[A]{in: in, matches: matches, handle: handle}
}

type rxRecoverWith[A any] struct {
	in      Rx[A]
	matches func(error) bool
	fallback func(error) Rx[A]
}

func (r *rxRecoverWith[A]) Kind() NodeKind { return KindRecoverWith }

func (r *rxRecoverWith[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)
	inner := newAssignableCancelable()

	outerCancel := r.in.run(ctx, func(e Event[A]) RxResult {
		if e.IsError() && r.matches(e.Cause()) {
			fallback, err := callUnary(ctx, "RecoverWith", r.fallback, e.Cause())
			if err != nil {
				return sink(Err[A](err))
			}
			c := fallback.run(ctx, sink)
			inner.Set(c)
			return Continue
		}
		return sink(e)
	})

	return Merge(outerCancel, inner)
}

// RecoverWith is Recover, but substitutes a fallback Rx (subscribed in
// place of the failed source) instead of a single value.
func RecoverWith[A any](in Rx[A], matches func(error) bool, fallback func(error) Rx[A]) Rx[A] {
	return &rxRecoverWith[A]{in: in, matches: matches, fallback: fallback}
}

// ---- RxOption / RxOptionCache -------------------------------------------

type rxOptionUnwrap[A any] struct {
	in Rx[Option[A]]
}

func (r *rxOptionUnwrap[A]) Kind() NodeKind { return KindRxOption }

func (r *rxOptionUnwrap[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	return r.in.run(ctx, func(e Event[Option[A]]) RxResult {
		switch e.Kind() {
		case KindNext:
			if e.Value().IsNone() {
				// Absence is simply not forwarded: no Next, no
				// Completion, the subscription stays live.
				return Continue
			}
			return sink(Next(e.Value().Value()))
		case KindError:
			return sink(Err[A](e.Cause()))
		default:
			return sink(Completion[A]())
		}
	})
}

// RxOption unwraps an Rx[Option[A]]: Some(v) forwards Next(v); None is
// silently dropped (no Next, no Completion), matching RxOptionVar's
// "absence is not emission" semantics.
func RxOption[A any](in Rx[Option[A]]) Rx[A] { return &rxOptionUnwrap[A]{in: in} }
