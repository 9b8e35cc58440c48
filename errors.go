package rx

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// ErrInterrupted is injected into an RxSource's queue when the source is
// closed, so a blocked next() call wakes up and observes termination.
// Canceling a subscription does not inject it: the canceled puller is woken
// and exits without delivering an event.
var ErrInterrupted = errors.New("rx: interrupted")

// TimeoutError is emitted by Timeout when its input produces nothing within
// Duration.
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("rx: timed out after %s", e.Duration)
}

// Is reports any *TimeoutError as a match, regardless of Duration, so
// callers can write errors.Is(err, &rx.TimeoutError{}).
func (e *TimeoutError) Is(target error) bool {
	_, ok := target.(*TimeoutError)
	return ok
}

// OverflowError is emitted by BackpressureBuffer (strategy Error) when its
// buffer exceeds Capacity.
type OverflowError struct {
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("rx: backpressure buffer overflow (capacity %d)", e.Capacity)
}

// Is reports any *OverflowError as a match, regardless of Capacity.
func (e *OverflowError) Is(target error) bool {
	_, ok := target.(*OverflowError)
	return ok
}

// ErrTupleArityTooLarge is raised at construction time for Zip/Join arities
// above 10.
var ErrTupleArityTooLarge = errors.New("rx: tuple arity greater than 10 is not supported")

// aggregateError builds a combinator-level error with the first failing
// input as the primary cause and every subsequent failing input attached as
// a suppressed error, per the §4.2 aggregation rule. It uses
// go.uber.org/multierr so the suppressed chain participates correctly in
// errors.Is/As via multierr's own Unwrap support.
func aggregateError(causes []error) error {
	var combined error
	for _, c := range causes {
		if c != nil {
			combined = multierr.Append(combined, c)
		}
	}
	return combined
}
