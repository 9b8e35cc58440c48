package rx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// manualClock is a minimal Scheduler whose NowNanos is set by hand, for
// testing Cache/RxOptionCache TTL expiry without waiting on a real clock.
type manualClock struct {
	now int64
}

func (c *manualClock) NowNanos() int64                               { return c.now }
func (c *manualClock) ScheduleOnce(time.Duration, func()) Cancelable { return noopCancelable }
func (c *manualClock) NewTimer() Timer                               { return &fakeTimer{} }

// countingRx counts every run() call (i.e. every subscription) it forwards
// to inner, so cache tests can observe whether a subscribe actually reached
// the underlying source or was served from the cache alone.
type countingRx[A any] struct {
	inner Rx[A]
	calls *int
}

func (r *countingRx[A]) Kind() NodeKind { return r.inner.Kind() }

func (r *countingRx[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	*r.calls++
	return r.inner.run(ctx, sink)
}

func TestCache_FirstSubscribeAlwaysReachesSource(t *testing.T) {
	clock := &manualClock{now: 1000}
	v := Variable(7)
	calls := 0
	cached := &boundRx[int]{inner: Cache[int](&countingRx[int]{inner: v, calls: &calls}, 100 * time.Millisecond), sched: clock}

	got, c := collect[int](cached)
	c.Cancel()

	assert.Equal(t, []Event[int]{Next(7)}, got)
	assert.Equal(t, 1, calls)
}

// A subscriber arriving while the cached value is still within ttl gets it
// delivered synchronously, but Cache still subscribes live to in for future
// updates (it short-circuits the resubscribe only if the sink stops right
// after the synchronous cached delivery).
func TestCache_FreshSubscribeDeliversCachedThenResubscribesLive(t *testing.T) {
	clock := &manualClock{now: 1000}
	v := Variable(7)
	calls := 0
	cached := &boundRx[int]{inner: Cache[int](&countingRx[int]{inner: v, calls: &calls}, 100 * time.Millisecond), sched: clock}

	_, c1 := collect[int](cached)
	c1.Cancel()
	assert.Equal(t, 1, calls)

	clock.now += int64(10 * time.Millisecond) // still within ttl
	got2, c2 := collect[int](cached)
	c2.Cancel()

	assert.Equal(t, []Event[int]{Next(7), Next(7)}, got2)
	assert.Equal(t, 2, calls)
}

func TestCache_SinkStopAfterCachedValueSkipsLiveResubscribe(t *testing.T) {
	clock := &manualClock{now: 1000}
	v := Variable(7)
	calls := 0
	cached := &boundRx[int]{inner: Cache[int](&countingRx[int]{inner: v, calls: &calls}, 100 * time.Millisecond), sched: clock}

	_, c1 := collect[int](cached)
	c1.Cancel()
	assert.Equal(t, 1, calls)

	clock.now += int64(10 * time.Millisecond)
	var got []Event[int]
	c2 := Run[int](cached, func(e Event[int]) RxResult {
		got = append(got, e)
		return Stop
	})
	defer c2.Cancel()

	assert.Equal(t, []Event[int]{Next(7)}, got)
	assert.Equal(t, 1, calls)
}

func TestCache_ResubscribesPlainlyAfterTTLExpires(t *testing.T) {
	clock := &manualClock{now: 1000}
	v := Variable(1)
	calls := 0
	cached := &boundRx[int]{inner: Cache[int](&countingRx[int]{inner: v, calls: &calls}, 100 * time.Millisecond), sched: clock}

	got1, c1 := collect[int](cached)
	c1.Cancel()
	assert.Equal(t, []Event[int]{Next(1)}, got1)
	assert.Equal(t, 1, calls)

	clock.now += int64(200 * time.Millisecond) // past the ttl: not valid
	got2, c2 := collect[int](cached)
	c2.Cancel()
	assert.Equal(t, []Event[int]{Next(1)}, got2) // no cached delivery, just the ordinary live subscribe
	assert.Equal(t, 2, calls)
}

func TestCache_ZeroTTLIsAlwaysFresh(t *testing.T) {
	clock := &manualClock{now: 1000}
	v := Variable(9)
	calls := 0
	cached := &boundRx[int]{inner: Cache[int](&countingRx[int]{inner: v, calls: &calls}, 0), sched: clock}

	_, c1 := collect[int](cached)
	c1.Cancel()
	assert.Equal(t, 1, calls)

	clock.now += int64(time.Hour)
	got2, c2 := collect[int](cached)
	c2.Cancel()
	assert.Equal(t, []Event[int]{Next(9), Next(9)}, got2)
	assert.Equal(t, 2, calls)
}

func TestRxOptionCache_FreshSubscribeDeliversCachedNone(t *testing.T) {
	clock := &manualClock{now: 0}
	v := OptionVariable(None[int]())
	calls := 0
	cached := &boundRx[Option[int]]{
		inner: RxOptionCache[int](&countingRx[Option[int]]{inner: v.ToOption(), calls: &calls}, 50 * time.Millisecond),
		sched: clock,
	}

	_, c1 := collect[Option[int]](cached)
	c1.Cancel()
	assert.Equal(t, 1, calls)

	clock.now += int64(10 * time.Millisecond)
	got2, c2 := collect[Option[int]](cached)
	c2.Cancel()

	assert.Len(t, got2, 2)
	assert.True(t, got2[0].Value().IsNone())
	assert.True(t, got2[1].Value().IsNone())
	assert.Equal(t, 2, calls)
}
