package rx

import (
	"sync"
	"time"
)

// rxCache holds the mutable last-value/last-updated state the Cache node
// needs across subscriptions, the one exception to "nodes record only
// parameters" that spec.md §3 itself calls out for this operator.
type rxCache[A any] struct {
	in  Rx[A]
	ttl time.Duration // 0 means "no TTL, cache never expires on its own"

	mu          sync.Mutex
	haveValue   bool
	lastValue   A
	lastUpdated int64
}

func (r *rxCache[A]) Kind() NodeKind { return KindCache }

func (r *rxCache[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	r.mu.Lock()
	valid := r.haveValue && (r.ttl == 0 || ctx.sched.NowNanos()-r.lastUpdated < int64(r.ttl))
	cached := r.lastValue
	r.mu.Unlock()

	if valid {
		res := sink(Next(cached))
		if !res.ShouldContinue {
			return noopCancelable
		}
	}

	return r.in.run(ctx, func(e Event[A]) RxResult {
		if e.IsNext() {
			r.mu.Lock()
			r.haveValue = true
			r.lastValue = e.Value()
			r.lastUpdated = ctx.sched.NowNanos()
			r.mu.Unlock()
		}
		return sink(e)
	})
}

// Cache remembers the last value observed from in. A subscription that
// arrives while the cached value is still fresh (no ttl, or younger than
// ttl) receives it synchronously first, then still subscribes to in unless
// the sink returned Stop for the cached value; otherwise it subscribes to
// in as normal. The cache is refreshed on every Next.
func Cache[A any](in Rx[A], ttl time.Duration) Rx[A] {
	return &rxCache[A]{in: in, ttl: ttl}
}

// rxOptionCache is Cache specialized for Option-domain sources, used
// alongside RxOptionVar where "no value yet" (None) is itself a cacheable
// state distinct from "never subscribed".
type rxOptionCache[A any] struct {
	in  Rx[Option[A]]
	ttl time.Duration

	mu          sync.Mutex
	haveValue   bool
	lastValue   Option[A]
	lastUpdated int64
}

func (r *rxOptionCache[A]) Kind() NodeKind { return KindRxOptionCache }

func (r *rxOptionCache[A]) run(ctx runCtx, sink func(Event[Option[A]]) RxResult) Cancelable {
	r.mu.Lock()
	valid := r.haveValue && (r.ttl == 0 || ctx.sched.NowNanos()-r.lastUpdated < int64(r.ttl))
	cached := r.lastValue
	r.mu.Unlock()

	if valid {
		res := sink(Next(cached))
		if !res.ShouldContinue {
			return noopCancelable
		}
	}

	return r.in.run(ctx, func(e Event[Option[A]]) RxResult {
		if e.IsNext() {
			r.mu.Lock()
			r.haveValue = true
			r.lastValue = e.Value()
			r.lastUpdated = ctx.sched.NowNanos()
			r.mu.Unlock()
		}
		return sink(e)
	})
}

// RxOptionCache is Cache for an Rx[Option[A]] source.
func RxOptionCache[A any](in Rx[Option[A]], ttl time.Duration) Rx[Option[A]] {
	return &rxOptionCache[A]{in: in, ttl: ttl}
}
