package rx

import (
	"reflect"
	"sync"
)

// RxVar is a hot mutable source: it holds a current value and fans it out
// to every live subscriber. Subscribing immediately delivers the current
// value before any subsequent update (spec.md §3 "immediate initial
// emission").
type RxVar[A any] struct {
	mu          sync.Mutex
	current     A
	nextID      uint64
	subscribers map[uint64]func(Event[A]) RxResult
	stopped     bool
	err         error
}

// Variable creates an RxVar holding initial.
func Variable[A any](initial A) *RxVar[A] {
	return &RxVar[A]{current: initial, subscribers: make(map[uint64]func(Event[A]) RxResult)}
}

func (v *RxVar[A]) Kind() NodeKind { return KindRxVar }

// Get returns the current value.
func (v *RxVar[A]) Get() A {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

func structurallyEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// Set replaces the current value. If it is structurally equal to the
// previous value, no event is emitted (spec.md §4.3, to avoid feedback
// loops when a derived RxVar writes back to its source).
func (v *RxVar[A]) Set(value A) {
	v.mu.Lock()
	if v.stopped {
		v.mu.Unlock()
		return
	}
	if structurallyEqual(v.current, value) {
		v.mu.Unlock()
		return
	}
	v.current = value
	subs := v.snapshotSubscribers()
	v.mu.Unlock()
	v.broadcast(subs, Next(value))
}

// ForceSet replaces the current value and always emits, bypassing the
// equality check.
func (v *RxVar[A]) ForceSet(value A) {
	v.mu.Lock()
	if v.stopped {
		v.mu.Unlock()
		return
	}
	v.current = value
	subs := v.snapshotSubscribers()
	v.mu.Unlock()
	v.broadcast(subs, Next(value))
}

// Update applies f to the current value and follows Set semantics
// (suppressed if the result is structurally equal to the previous value).
func (v *RxVar[A]) Update(f func(A) A) {
	v.mu.Lock()
	if v.stopped {
		v.mu.Unlock()
		return
	}
	next := f(v.current)
	if structurallyEqual(v.current, next) {
		v.mu.Unlock()
		return
	}
	v.current = next
	subs := v.snapshotSubscribers()
	v.mu.Unlock()
	v.broadcast(subs, Next(next))
}

// ForceUpdate applies f to the current value and always emits.
func (v *RxVar[A]) ForceUpdate(f func(A) A) {
	v.mu.Lock()
	if v.stopped {
		v.mu.Unlock()
		return
	}
	v.current = f(v.current)
	subs := v.snapshotSubscribers()
	v.mu.Unlock()
	v.broadcast(subs, Next(v.current))
}

// Stop closes the source, emitting Completion to every live subscriber.
func (v *RxVar[A]) Stop() {
	v.mu.Lock()
	if v.stopped {
		v.mu.Unlock()
		return
	}
	v.stopped = true
	subs := v.snapshotSubscribers()
	v.mu.Unlock()
	v.broadcast(subs, Completion[A]())
}

// SetException emits Error(err) to every live subscriber and closes the
// source.
func (v *RxVar[A]) SetException(err error) {
	v.mu.Lock()
	if v.stopped {
		v.mu.Unlock()
		return
	}
	v.stopped = true
	v.err = err
	subs := v.snapshotSubscribers()
	v.mu.Unlock()
	v.broadcast(subs, Err[A](err))
}

// snapshotSubscribers must be called with v.mu held; it copies the
// subscriber map so broadcast can run without holding the lock, letting a
// sink cancel itself (or another subscriber) during delivery.
func (v *RxVar[A]) snapshotSubscribers() map[uint64]func(Event[A]) RxResult {
	subs := make(map[uint64]func(Event[A]) RxResult, len(v.subscribers))
	for id, s := range v.subscribers {
		subs[id] = s
	}
	return subs
}

func (v *RxVar[A]) broadcast(subs map[uint64]func(Event[A]) RxResult, e Event[A]) {
	for id, s := range subs {
		res := s(e)
		if !res.ShouldContinue {
			v.removeSubscriber(id)
		}
	}
}

func (v *RxVar[A]) removeSubscriber(id uint64) {
	v.mu.Lock()
	delete(v.subscribers, id)
	v.mu.Unlock()
}

func (v *RxVar[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink = serialSink(sink)

	v.mu.Lock()
	if v.stopped {
		terminal := Completion[A]()
		if v.err != nil {
			terminal = Err[A](v.err)
		}
		v.mu.Unlock()
		sink(terminal)
		return noopCancelable
	}
	current := v.current
	id := v.nextID
	v.nextID++
	v.subscribers[id] = sink
	v.mu.Unlock()

	res := sink(Next(current))
	if !res.ShouldContinue {
		v.removeSubscriber(id)
		return noopCancelable
	}

	return NewCancelable(func() { v.removeSubscriber(id) })
}

// RxOptionVar is RxVar specialized to an Option-domain value: filter/
// FlatMap-style absence is "no emission", never a Completion.
type RxOptionVar[A any] struct {
	inner *RxVar[Option[A]]
}

// OptionVariable creates an RxOptionVar holding initial.
func OptionVariable[A any](initial Option[A]) *RxOptionVar[A] {
	return &RxOptionVar[A]{inner: Variable(initial)}
}

func (v *RxOptionVar[A]) Kind() NodeKind { return KindRxOptionVar }

func (v *RxOptionVar[A]) run(ctx runCtx, sink func(Event[Option[A]]) RxResult) Cancelable {
	return v.inner.run(ctx, sink)
}

// Get returns the current Option value.
func (v *RxOptionVar[A]) Get() Option[A] { return v.inner.Get() }

// Set follows RxVar.Set semantics over the Option domain.
func (v *RxOptionVar[A]) Set(value Option[A]) { v.inner.Set(value) }

// SetSome is sugar for Set(Some(value)).
func (v *RxOptionVar[A]) SetSome(value A) { v.inner.Set(Some(value)) }

// SetNone is sugar for Set(None[A]()).
func (v *RxOptionVar[A]) SetNone() { v.inner.Set(None[A]()) }

// Stop closes the source, emitting Completion.
func (v *RxOptionVar[A]) Stop() { v.inner.Stop() }

// SetException emits Error(err) and closes the source.
func (v *RxOptionVar[A]) SetException(err error) { v.inner.SetException(err) }

// ToOption returns the Rx[Option[A]] view backing this variable, for
// composing with generic Option-aware operators.
func (v *RxOptionVar[A]) ToOption() Rx[Option[A]] { return v.inner }
