// Package rxlog provides structured logging for Rx graphs via zap,
// implemented entirely on top of rx.TapOn rather than a bespoke observer
// hierarchy — every event it logs is one already flowing through the
// stream, never a side-channel notification.
package rxlog

import (
	"go.uber.org/zap"

	"github.com/CrisisTextLine/rx"
)

// Tap logs every Next/Error observed on in under the given name, then
// forwards the event unchanged. A panic inside the zap call itself would
// normally become an Error via TapOn's own guard, but zap's API doesn't
// panic on ordinary values, so this is only a safety net.
func Tap[A any](logger *zap.Logger, name string, in rx.Rx[A]) rx.Rx[A] {
	return rx.TapOn(in, func(t rx.Try[A]) {
		if t.IsFailure() {
			logger.Warn("rx event failed", zap.String("node", name), zap.Error(t.Err()))
			return
		}
		logger.Debug("rx event", zap.String("node", name), zap.Any("value", t.Value()))
	})
}

// SugaredWarnLogger adapts a *zap.SugaredLogger to the Warnf-shaped
// diagnostic logger the runner's error guard expects (*zap.Logger itself
// has no Warnf method, only structured Warn(msg, fields...)).
type SugaredWarnLogger struct {
	Sugar *zap.SugaredLogger
}

// NewSugaredWarnLogger wraps logger.Sugar() for use with rx.WithLogger.
func NewSugaredWarnLogger(logger *zap.Logger) SugaredWarnLogger {
	return SugaredWarnLogger{Sugar: logger.Sugar()}
}

// Warnf satisfies the runner's diagnostic logger contract.
func (l SugaredWarnLogger) Warnf(template string, args ...any) {
	l.Sugar.Warnf(template, args...)
}
