package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCron_WithoutCronSchedulerEmitsError(t *testing.T) {
	got, c := collect[uint64](Cron("@every 1s"))
	defer c.Cancel()

	assert.Len(t, got, 1)
	assert.True(t, got[0].IsError())
	assert.ErrorIs(t, got[0].Cause(), ErrNoCronScheduler)
}

type fakeCronScheduler struct {
	*fakeScheduler
	registered map[string]func(uint64)
}

func (s *fakeCronScheduler) ScheduleCron(spec string, f func(tick uint64)) (Cancelable, error) {
	if s.registered == nil {
		s.registered = make(map[string]func(uint64))
	}
	s.registered[spec] = f
	return NewCancelable(func() { delete(s.registered, spec) }), nil
}

func TestCron_EmitsOnRegisteredFire(t *testing.T) {
	cs := &fakeCronScheduler{fakeScheduler: &fakeScheduler{}}
	wrapped := &boundRx[uint64]{inner: Cron("@every 1m"), sched: cs}

	var got []uint64
	c := Run[uint64](wrapped, func(e Event[uint64]) RxResult {
		if e.IsNext() {
			got = append(got, e.Value())
		}
		return Continue
	})
	defer c.Cancel()

	cs.registered["@every 1m"](0)
	cs.registered["@every 1m"](1)
	assert.Equal(t, []uint64{0, 1}, got)
}
