// Package scheduler adapts robfig/cron expressions onto the rx.Scheduler
// contract, so a Cron source can sit alongside Interval/Timer on the same
// timed-operator footing instead of needing its own evaluator.
package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/CrisisTextLine/rx"
)

// CronAdapter is an rx.Scheduler backed by a single robfig/cron.Cron
// instance; timers from NewTimer and entries from ScheduleCron share that
// instance instead of spinning up their own, while ScheduleOnce uses
// time.AfterFunc.
type CronAdapter struct {
	cron *cron.Cron
}

// NewCronAdapter starts a cron runner (second-precision, per robfig/cron's
// WithSeconds parser) backing the returned Scheduler.
func NewCronAdapter() *CronAdapter {
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)))
	c.Start()
	return &CronAdapter{cron: c}
}

func (a *CronAdapter) NowNanos() int64 { return time.Now().UnixNano() }

func (a *CronAdapter) ScheduleOnce(delay time.Duration, f func()) rx.Cancelable {
	if delay < time.Millisecond {
		delay = time.Millisecond
	}
	t := time.AfterFunc(delay, f)
	return rx.NewCancelable(func() { t.Stop() })
}

func (a *CronAdapter) NewTimer() rx.Timer {
	return &cronTimer{adapter: a}
}

type cronTimer struct {
	adapter *CronAdapter
	mu      sync.Mutex
	entryID cron.EntryID
	armed   bool
}

// Schedule arms a periodic rx.Timer as a cron entry on a fixedPeriod
// schedule, so period is used as given, sub-second periods included.
func (t *cronTimer) Schedule(period time.Duration, f func(tick uint64)) rx.Cancelable {
	if period < time.Millisecond {
		period = time.Millisecond
	}
	var tickMu sync.Mutex
	var tick uint64

	id := t.adapter.cron.Schedule(fixedPeriod(period), cron.FuncJob(func() {
		tickMu.Lock()
		n := tick
		tick++
		tickMu.Unlock()
		f(n)
	}))

	t.mu.Lock()
	t.entryID = id
	t.armed = true
	t.mu.Unlock()

	return rx.NewCancelable(t.Cancel)
}

// fixedPeriod is a cron.Schedule that fires period after each run.
type fixedPeriod time.Duration

func (p fixedPeriod) Next(t time.Time) time.Time { return t.Add(time.Duration(p)) }

func (t *cronTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.armed {
		return
	}
	t.armed = false
	t.adapter.cron.Remove(t.entryID)
}

// ScheduleCron arms f to run on every firing of the given cron expression,
// returning a Cancelable that removes the entry. Unlike Schedule, the
// expression itself controls cadence rather than a fixed period, so Cron
// sources go through this entry point instead of NewTimer.
func (a *CronAdapter) ScheduleCron(spec string, f func(tick uint64)) (rx.Cancelable, error) {
	var mu sync.Mutex
	var tick uint64

	id, err := a.cron.AddFunc(spec, func() {
		mu.Lock()
		n := tick
		tick++
		mu.Unlock()
		f(n)
	})
	if err != nil {
		return nil, err
	}
	return rx.NewCancelable(func() { a.cron.Remove(id) }), nil
}

// Stop tears down the underlying cron runner, waiting for any in-flight
// job to finish.
func (a *CronAdapter) Stop() {
	<-a.cron.Stop().Done()
}
