package rx

import "sync"

// serialSink wraps a sink so that concurrent producers (an outer
// subscription and an inner one spawned by FlatMap, several timed
// combinator inputs, a timer racing a passthrough value, ...) never call it
// at the same time, per spec.md §5: "for any one subscription at most one
// event is being delivered at a time."
func serialSink[A any](sink func(Event[A]) RxResult) func(Event[A]) RxResult {
	var mu sync.Mutex
	return func(e Event[A]) RxResult {
		mu.Lock()
		defer mu.Unlock()
		return sink(e)
	}
}
