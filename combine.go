package rx

import "sync"

// combineMode distinguishes the two combined-stream policies that share the
// same engine: Zip pairs up queued values positionally, Join re-emits the
// latest tuple on every fresh input.
type combineMode int

const (
	modeZip combineMode = iota
	modeJoin
)

type rxCombine struct {
	inputs []Rx[any]
	mode   combineMode
}

func (r *rxCombine) Kind() NodeKind {
	if r.mode == modeZip {
		return KindZip
	}
	return KindJoin
}

func (r *rxCombine) run(ctx runCtx, sink func(Event[[]any]) RxResult) Cancelable {
	sink = serialSink(sink)
	k := len(r.inputs)

	terminalErr := make([]error, k)
	terminalDone := make([]bool, k)
	queues := make([][]any, k)    // zip only
	latest := make([]any, k)      // join only
	haveLatest := make([]bool, k) // join only
	completedLatch := false
	erroredLatch := false
	var mu sync.Mutex

	// tryEmit and checkTermination run from inside each input's callback;
	// mu serializes those callbacks, so inputs delivering from different
	// goroutines never touch this shared state at the same time.
	tryEmit := func() RxResult {
		if r.mode == modeZip {
			for i := 0; i < k; i++ {
				if len(queues[i]) == 0 {
					return Continue
				}
			}
			tuple := make([]any, k)
			for i := 0; i < k; i++ {
				tuple[i] = queues[i][0]
				queues[i] = queues[i][1:]
			}
			return sink(Next(tuple))
		}
		for i := 0; i < k; i++ {
			if !haveLatest[i] {
				return Continue
			}
		}
		tuple := make([]any, k)
		copy(tuple, latest)
		return sink(Next(tuple))
	}

	checkTermination := func() RxResult {
		var errs []error
		for i := 0; i < k; i++ {
			if terminalErr[i] != nil {
				errs = append(errs, terminalErr[i])
			}
		}
		if len(errs) > 0 {
			if !erroredLatch {
				erroredLatch = true
				return sink(Err[[]any](aggregateError(errs)))
			}
			return Continue
		}

		if ctx.continuous || completedLatch {
			return Continue
		}

		if r.mode == modeZip {
			// A completed input with an empty queue can never contribute
			// another tuple: any values still queued on other inputs are
			// discarded and the stream ends (spec's Zip tie-break).
			for i := 0; i < k; i++ {
				if terminalDone[i] && len(queues[i]) == 0 {
					completedLatch = true
					return sink(Completion[[]any]())
				}
			}
			return Continue
		}

		for i := 0; i < k; i++ {
			if !terminalDone[i] {
				return Continue
			}
		}
		completedLatch = true
		return sink(Completion[[]any]())
	}

	cancels := make([]Cancelable, k)
	for idx := 0; idx < k; idx++ {
		i := idx
		cancels[i] = r.inputs[i].run(ctx, func(e Event[any]) RxResult {
			mu.Lock()
			defer mu.Unlock()
			switch e.Kind() {
			case KindNext:
				if r.mode == modeZip {
					queues[i] = append(queues[i], e.Value())
				} else {
					latest[i] = e.Value()
					haveLatest[i] = true
				}
				res := tryEmit()
				if !res.ShouldContinue {
					return Stop
				}
				return Continue
			case KindError:
				terminalErr[i] = e.Cause()
				return checkTermination()
			default:
				terminalDone[i] = true
				return checkTermination()
			}
		})
	}

	return Merge(cancels...)
}

func boxAny[A any](in Rx[A]) Rx[any] {
	return Map(in, func(v A) any { return v })
}

func combine(mode combineMode, inputs []Rx[any]) Rx[[]any] {
	return &rxCombine{inputs: inputs, mode: mode}
}

// Zip builds a variadic zip over homogeneously typed inputs, corresponding
// to spec's `zip(Seq[Rx])`. Like the tuple forms, it panics with
// ErrTupleArityTooLarge for more than 10 inputs.
func Zip[A any](inputs []Rx[A]) Rx[[]A] {
	checkArity(len(inputs))
	boxed := make([]Rx[any], len(inputs))
	for i, in := range inputs {
		boxed[i] = boxAny(in)
	}
	return Map(combine(modeZip, boxed), func(t []any) []A {
		out := make([]A, len(t))
		for i, v := range t {
			out[i] = v.(A)
		}
		return out
	})
}

// Join is Zip's latest-value counterpart: it re-emits the full current
// tuple whenever any input produces a fresh Next, once every input has
// produced at least once.
func Join[A any](inputs []Rx[A]) Rx[[]A] {
	checkArity(len(inputs))
	boxed := make([]Rx[any], len(inputs))
	for i, in := range inputs {
		boxed[i] = boxAny(in)
	}
	return Map(combine(modeJoin, boxed), func(t []any) []A {
		out := make([]A, len(t))
		for i, v := range t {
			out[i] = v.(A)
		}
		return out
	})
}

func checkArity(k int) {
	if k > 10 {
		panic(ErrTupleArityTooLarge)
	}
}
