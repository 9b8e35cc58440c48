package rx

import "fmt"

// diagLogger is the minimal logging surface the runner needs from a
// structured logger. *zap.SugaredLogger satisfies it directly, and
// modules/rxlog's SugaredWarnLogger adapts a *zap.Logger to it; modules/rxlog
// also builds richer sinks on top of the same Event stream.
type diagLogger interface {
	Warnf(template string, args ...any)
}

type noopLog struct{}

func (noopLog) Warnf(string, ...any) {}

// recoverToError converts a recovered panic value into an error. Per
// spec.md §4.1.2, fatal conditions (stack overflow, out-of-memory) are not
// expected to be caught here: Go's runtime does not hand those to recover
// in the first place, so they propagate and terminate the process as
// "exempt" errors naturally do.
func recoverToError(site string, r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("rx: panic in %s: %w", site, err)
	}
	return fmt.Errorf("rx: panic in %s: %v", site, r)
}

// guardLog logs a recovered panic when a logger is available; errors are
// still surfaced to the sink regardless of logging.
func guardLog(ctx runCtx, site string, err error) {
	if ctx.log != nil {
		ctx.log.Warnf("rx: operator %s recovered: %v", site, err)
	}
}

// callUnary wraps a one-argument user callback so a panic becomes an error
// instead of crashing the subscription, per §4.1.2: "every user callback
// must be wrapped so that a thrown exception becomes an Error(e) event on
// that path, not a runtime crash."
func callUnary[A, B any](ctx runCtx, site string, f func(A) B, v A) (result B, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverToError(site, r)
			guardLog(ctx, site, err)
		}
	}()
	result = f(v)
	return result, nil
}

// callPredicate wraps a predicate callback with the same panic guard as
// callUnary.
func callPredicate[A any](ctx runCtx, site string, f func(A) bool, v A) (result bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverToError(site, r)
			guardLog(ctx, site, err)
		}
	}()
	result = f(v)
	return result, nil
}

// callEffect wraps a side-effecting callback (no return value) with the
// same panic guard.
func callEffect(ctx runCtx, site string, f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverToError(site, r)
			guardLog(ctx, site, err)
		}
	}()
	f()
	return nil
}

// callLazy wraps a zero-argument, error-returning thunk (Rx.Try) with the
// same panic guard, also surfacing any error the thunk itself returns.
func callLazy[A any](ctx runCtx, site string, f func() (A, error)) (result A, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverToError(site, r)
			guardLog(ctx, site, err)
		}
	}()
	result, err = f()
	return result, err
}
