package rx

import "fmt"

// EventKind identifies which of the three shapes an Event carries.
type EventKind int

const (
	// KindNext carries a typed payload produced by the stream.
	KindNext EventKind = iota
	// KindError carries the cause of a terminal failure.
	KindError
	// KindCompletion is a unit marker: the stream has nothing more to emit
	// on this path.
	KindCompletion
)

func (k EventKind) String() string {
	switch k {
	case KindNext:
		return "Next"
	case KindError:
		return "Error"
	case KindCompletion:
		return "Completion"
	default:
		return "Unknown"
	}
}

// Event is a tagged variant with exactly three shapes: Next(value),
// Error(cause), and Completion. No other variants exist. Construct one with
// Next, Err, or Completion; inspect it with Kind, Value, and Cause.
type Event[A any] struct {
	kind  EventKind
	value A
	cause error
}

// Next constructs a Next(value) event.
func Next[A any](value A) Event[A] {
	return Event[A]{kind: KindNext, value: value}
}

// Err constructs an Error(cause) event. Passing a nil cause is a
// programmer error; it is replaced with errUnspecified to keep Cause()
// non-nil for every KindError event.
func Err[A any](cause error) Event[A] {
	if cause == nil {
		cause = errUnspecified
	}
	return Event[A]{kind: KindError, cause: cause}
}

// Completion constructs a Completion event.
func Completion[A any]() Event[A] {
	return Event[A]{kind: KindCompletion}
}

// Kind reports which shape this event carries.
func (e Event[A]) Kind() EventKind { return e.kind }

// IsNext reports whether this is a Next event.
func (e Event[A]) IsNext() bool { return e.kind == KindNext }

// IsError reports whether this is an Error event.
func (e Event[A]) IsError() bool { return e.kind == KindError }

// IsCompletion reports whether this is a Completion event.
func (e Event[A]) IsCompletion() bool { return e.kind == KindCompletion }

// Value returns the payload of a Next event. It is the zero value of A for
// any other kind.
func (e Event[A]) Value() A { return e.value }

// Cause returns the error of an Error event, or nil for any other kind.
func (e Event[A]) Cause() error { return e.cause }

func (e Event[A]) String() string {
	switch e.kind {
	case KindNext:
		return fmt.Sprintf("Next(%v)", e.value)
	case KindError:
		return fmt.Sprintf("Error(%v)", e.cause)
	default:
		return "Completion"
	}
}

// mapEvent transforms the payload of a Next event, passing Error and
// Completion through unchanged. Shared by operators that only touch Next.
func mapEvent[A, B any](e Event[A], f func(A) B) Event[B] {
	switch e.kind {
	case KindNext:
		return Next(f(e.value))
	case KindError:
		return Err[B](e.cause)
	default:
		return Completion[B]()
	}
}

var errUnspecified = fmt.Errorf("rx: unspecified error")
