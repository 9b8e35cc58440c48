package rx

import "errors"

// ErrNoCronScheduler is emitted by a Cron source when the runner wasn't
// configured with a CronScheduler (modules/scheduler.CronAdapter is the
// reference implementation).
var ErrNoCronScheduler = errors.New("rx: scheduler does not support cron expressions")

// CronScheduler extends Scheduler with calendar-expression scheduling,
// satisfied by modules/scheduler.CronAdapter. Cron sources require it;
// plain Interval/Timer/Throttle/Timeout operators work with any Scheduler.
type CronScheduler interface {
	Scheduler
	// ScheduleCron arms f to run on every firing of spec (standard cron
	// syntax, optionally with seconds), returning a Cancelable that
	// removes the registration.
	ScheduleCron(spec string, f func(tick uint64)) (Cancelable, error)
}

type rxCron struct {
	spec string
}

func (r *rxCron) Kind() NodeKind { return KindCron }

func (r *rxCron) run(ctx runCtx, sink func(Event[uint64]) RxResult) Cancelable {
	sink = serialSink(sink)
	cs, ok := ctx.sched.(CronScheduler)
	if !ok {
		sink(Err[uint64](ErrNoCronScheduler))
		return noopCancelable
	}

	c, err := cs.ScheduleCron(r.spec, func(tick uint64) {
		sink(Next(tick))
	})
	if err != nil {
		sink(Err[uint64](err))
		return noopCancelable
	}
	return c
}

// Cron emits Next(tickIndex) on every firing of a cron expression,
// mirroring Interval's tick-index semantics but on a calendar schedule
// instead of a fixed period. Requires a CronScheduler (WithScheduler); any
// other Scheduler produces Error(ErrNoCronScheduler).
func Cron(spec string) Rx[uint64] { return &rxCron{spec: spec} }
