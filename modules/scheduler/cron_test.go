package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronAdapter_ScheduleOnceFires(t *testing.T) {
	adapter := NewCronAdapter()
	defer adapter.Stop()

	fired := make(chan struct{})
	adapter.ScheduleOnce(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("ScheduleOnce never fired")
	}
}

func TestCronAdapter_ScheduleOnceCancelPreventsFire(t *testing.T) {
	adapter := NewCronAdapter()
	defer adapter.Stop()

	var fired atomic.Bool
	c := adapter.ScheduleOnce(50*time.Millisecond, func() { fired.Store(true) })
	c.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestCronAdapter_TimerTicksMonotonically(t *testing.T) {
	adapter := NewCronAdapter()
	defer adapter.Stop()

	timer := adapter.NewTimer()
	var ticks []uint64
	done := make(chan struct{})

	timer.Schedule(5*time.Millisecond, func(tick uint64) {
		ticks = append(ticks, tick)
		if len(ticks) >= 3 {
			select {
			case <-done:
			default:
				close(done)
			}
		}
	})
	defer timer.Cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never reached 3 ticks")
	}

	require.GreaterOrEqual(t, len(ticks), 3)
	for i := 1; i < len(ticks); i++ {
		assert.Equal(t, ticks[i-1]+1, ticks[i])
	}
}

func TestCronAdapter_TimerCancelIsIdempotent(t *testing.T) {
	adapter := NewCronAdapter()
	defer adapter.Stop()

	timer := adapter.NewTimer()
	timer.Schedule(time.Hour, func(uint64) {})
	timer.Cancel()
	timer.Cancel() // must not panic
}

func TestCronAdapter_ScheduleCronFiresOnEverySecond(t *testing.T) {
	adapter := NewCronAdapter()
	defer adapter.Stop()

	fired := make(chan struct{}, 1)
	c, err := adapter.ScheduleCron("@every 1s", func(uint64) {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer c.Cancel()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("cron entry never fired")
	}
}
