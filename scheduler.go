package rx

import (
	"sync"
	"time"
)

// minSchedulerDelay is the floor every scheduled delay is clamped to,
// per spec.md §4.5 and §5.
const minSchedulerDelay = time.Millisecond

// Timer is a repeating scheduled callback, returned by Scheduler.NewTimer.
type Timer interface {
	// Schedule arms the timer to call f(tickIndex) every period, starting
	// at tick 0. Calling Schedule again starts a second schedule; it does
	// not stop the earlier one.
	Schedule(period time.Duration, f func(tick uint64)) Cancelable
	// Cancel disarms the timer. Idempotent.
	Cancel()
}

// Scheduler is the minimal time abstraction the runner depends on: a
// monotonic clock, a one-shot delay, and a repeating timer. Kept
// intentionally small and injectable (§9 Design Notes) so hosts can supply
// their own executor while still guaranteeing serial callback delivery per
// subscription (§5).
type Scheduler interface {
	// NowNanos returns a monotonic timestamp in nanoseconds.
	NowNanos() int64
	// ScheduleOnce invokes f at least delay later. The returned Cancelable
	// disarms the timer if called before it fires.
	ScheduleOnce(delay time.Duration, f func()) Cancelable
	// NewTimer creates an armed-on-Schedule repeating timer.
	NewTimer() Timer
}

// defaultScheduler is a time.Timer-backed Scheduler. It is the implicit
// default when no Scheduler is supplied to Run/RunOnce/RunContinuously;
// modules/scheduler layers cron expressions on top of the same interface.
type defaultScheduler struct{}

// DefaultScheduler returns the stdlib-backed Scheduler used when no
// Scheduler option is supplied.
func DefaultScheduler() Scheduler { return defaultScheduler{} }

func clampDelay(d time.Duration) time.Duration {
	if d < minSchedulerDelay {
		return minSchedulerDelay
	}
	return d
}

func (defaultScheduler) NowNanos() int64 { return time.Now().UnixNano() }

func (defaultScheduler) ScheduleOnce(delay time.Duration, f func()) Cancelable {
	t := time.AfterFunc(clampDelay(delay), f)
	return NewCancelable(func() { t.Stop() })
}

func (defaultScheduler) NewTimer() Timer {
	return &stdTimer{}
}

type stdTimer struct {
	mu   sync.Mutex
	t    *time.Timer
	done bool
}

func (s *stdTimer) Schedule(period time.Duration, f func(tick uint64)) Cancelable {
	period = clampDelay(period)
	var tick uint64

	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return noopCancelable
	}
	var arm func()
	arm = func() {
		s.mu.Lock()
		if s.done {
			s.mu.Unlock()
			return
		}
		s.t = time.AfterFunc(period, func() {
			f(tick)
			tick++
			arm()
		})
		s.mu.Unlock()
	}
	s.mu.Unlock()
	arm()

	return NewCancelable(s.Cancel)
}

func (s *stdTimer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.done = true
	if s.t != nil {
		s.t.Stop()
	}
}
