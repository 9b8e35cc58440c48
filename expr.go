package rx

// NodeKind tags which operator family an Rx value was built from. It exists
// so diagnostics (Named, logging, debug tooling) can describe a node
// without needing a full type switch over every concrete operator type —
// the closest a generic Go type can get to matching on a closed tagged
// union from the outside.
type NodeKind int

const (
	KindSingle NodeKind = iota
	KindSeq
	KindTry
	KindException
	KindEmpty
	KindConst
	KindRxVar
	KindRxOptionVar
	KindRxSource
	KindMap
	KindFlatMap
	KindFilter
	KindTransform
	KindTransformTry
	KindTransformRx
	KindConcat
	KindLast
	KindLastOption
	KindTake
	KindCache
	KindNamed
	KindTapOn
	KindRecover
	KindRecoverWith
	KindRxOption
	KindRxOptionCache
	KindInterval
	KindTimer
	KindCron
	KindThrottleFirst
	KindThrottleLast
	KindDebounce
	KindTimeout
	KindZip
	KindJoin
	KindBuffer
	KindBackpressureDrop
	KindBackpressureBuffer
	KindBackpressureLatest
)

// runCtx threads the state every operator's run method needs beyond its own
// parameters: whether the subscription is in continuous mode (§4.1.3), the
// scheduler backing timed operators, and the logger used for the error
// guard and operator diagnostics.
type runCtx struct {
	continuous bool
	sched      Scheduler
	log        diagLogger
}

// Rx is an immutable tree of operator nodes. Each node records only its
// parameters and its child references (inputs may be shared by multiple
// operators and by live subscriptions); constructing an Rx value never
// starts any work. Evaluation happens only when the tree is handed to Run,
// RunOnce, or RunContinuously.
//
// Rx is a closed type: the only way to build one is through the
// constructors in this package (Single, Map, Zip2, Variable, ...).
// The run method is unexported so external packages cannot add new
// variants, matching the "closed set of variant nodes" design in §3.
type Rx[A any] interface {
	// Kind reports which operator family this node belongs to.
	Kind() NodeKind

	// run subscribes to this node, wiring its own per-operator state and
	// forwarding transformed events to sink. It returns a Cancelable that
	// tears down everything this node allocated, including recursively
	// subscribed children.
	run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable
}

// ---- Leaf sources -----------------------------------------------------

type rxSingle[A any] struct{ value A }

func (r *rxSingle[A]) Kind() NodeKind { return KindSingle }

func (r *rxSingle[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	res := sink(Next(r.value))
	if res.ShouldContinue {
		sink(Completion[A]())
	}
	return noopCancelable
}

// Single builds a cold source that emits exactly one value, then completes.
// Re-emits on every subscription.
func Single[A any](value A) Rx[A] { return &rxSingle[A]{value: value} }

// Const is an alias of Single kept distinct for callers that want to name
// the intent "a fixed constant source" (spec.md §3 leaf-source table).
func Const[A any](value A) Rx[A] { return &rxSingle[A]{value: value} }

type rxSeq[A any] struct{ values []A }

func (r *rxSeq[A]) Kind() NodeKind { return KindSeq }

func (r *rxSeq[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	for _, v := range r.values {
		res := sink(Next(v))
		if !res.ShouldContinue {
			return noopCancelable
		}
	}
	sink(Completion[A]())
	return noopCancelable
}

// Seq builds a cold source emitting each value of values in order, then
// completing.
func Seq[A any](values []A) Rx[A] {
	cp := make([]A, len(values))
	copy(cp, values)
	return &rxSeq[A]{values: cp}
}

type rxTry[A any] struct{ lazy func() (A, error) }

func (r *rxTry[A]) Kind() NodeKind { return KindTry }

func (r *rxTry[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	v, err := callLazy(ctx, "Try", r.lazy)
	if err != nil {
		sink(Err[A](err))
		return noopCancelable
	}
	res := sink(Next(v))
	if res.ShouldContinue {
		sink(Completion[A]())
	}
	return noopCancelable
}

// Try builds a cold source that evaluates lazy once per subscription,
// emitting its result or, if it panics with a non-fatal value, the
// resulting Error.
func Try[A any](lazy func() (A, error)) Rx[A] { return &rxTry[A]{lazy: lazy} }

type rxException[A any] struct{ err error }

func (r *rxException[A]) Kind() NodeKind { return KindException }

func (r *rxException[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink(Err[A](r.err))
	return noopCancelable
}

// Exception builds a cold source that immediately emits Error(err).
func Exception[A any](err error) Rx[A] { return &rxException[A]{err: err} }

type rxEmpty[A any] struct{}

func (r *rxEmpty[A]) Kind() NodeKind { return KindEmpty }

func (r *rxEmpty[A]) run(ctx runCtx, sink func(Event[A]) RxResult) Cancelable {
	sink(Completion[A]())
	return noopCancelable
}

// Empty builds a cold source that immediately completes without emitting
// any value.
func Empty[A any]() Rx[A] { return &rxEmpty[A]{} }
