package rx

import "sync"

// Cancelable is a scoped handle over an active subscription. Calling
// Cancel releases every resource the subscription holds — child
// subscriptions, timers, buffers — and is idempotent: a second call is a
// no-op. Composable via Merge so a parent subscription can tear down an
// arbitrary tree of children with a single call.
type Cancelable interface {
	// Cancel releases all resources held by this subscription. Safe to
	// call more than once and from more than one goroutine.
	Cancel()
	// Canceled reports whether Cancel has already run.
	Canceled() bool
}

// cancelFunc adapts a plain teardown function to Cancelable.
type cancelFunc struct {
	mu       sync.Mutex
	done     bool
	teardown func()
}

// NewCancelable wraps a teardown function as a Cancelable. A nil teardown
// is treated as a no-op. The teardown runs at most once.
func NewCancelable(teardown func()) Cancelable {
	return &cancelFunc{teardown: teardown}
}

func (c *cancelFunc) Cancel() {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	c.done = true
	teardown := c.teardown
	c.mu.Unlock()

	if teardown != nil {
		teardown()
	}
}

func (c *cancelFunc) Canceled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// noopCancelable cancels nothing; used for already-terminated subscriptions
// (e.g. a cold source that finished synchronously before run returned).
var noopCancelable Cancelable = NewCancelable(nil)

// Merge composes several Cancelables into one: canceling the result cancels
// every child, in order, and is itself idempotent. A nil entry is skipped.
func Merge(children ...Cancelable) Cancelable {
	return NewCancelable(func() {
		for _, c := range children {
			if c != nil {
				c.Cancel()
			}
		}
	})
}

// assignableCancelable is a slot holding the "current" child Cancelable,
// used by operators like FlatMap where the inner subscription is swapped
// out on every outer Next. Canceling the slot cancels whatever child is
// currently assigned and prevents any later Set from reinstating a live
// child (the slot itself is now canceled).
type assignableCancelable struct {
	mu       sync.Mutex
	current  Cancelable
	canceled bool
}

func newAssignableCancelable() *assignableCancelable {
	return &assignableCancelable{}
}

// Set replaces the current child, canceling the previous one first. If the
// slot has already been canceled, the new child is canceled immediately
// instead of being retained.
func (a *assignableCancelable) Set(c Cancelable) {
	a.mu.Lock()
	if a.canceled {
		a.mu.Unlock()
		if c != nil {
			c.Cancel()
		}
		return
	}
	prev := a.current
	a.current = c
	a.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}
}

func (a *assignableCancelable) Cancel() {
	a.mu.Lock()
	if a.canceled {
		a.mu.Unlock()
		return
	}
	a.canceled = true
	current := a.current
	a.current = nil
	a.mu.Unlock()

	if current != nil {
		current.Cancel()
	}
}

func (a *assignableCancelable) Canceled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.canceled
}
