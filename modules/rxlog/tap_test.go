package rxlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/CrisisTextLine/rx"
)

func TestTap_LogsNextAtDebugAndForwardsEvent(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	got, c := collectEvents(Tap(logger, "greeting", rx.Single("hi")))
	defer c.Cancel()

	assert.Equal(t, []rx.Event[string]{rx.Next("hi"), rx.Completion[string]()}, got)

	entries := logs.FilterMessage("rx event").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "greeting", entries[0].ContextMap()["node"])
	}
}

func TestTap_LogsFailureAtWarn(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	boom := errors.New("boom")
	got, c := collectEvents(Tap[int](logger, "failing", rx.Exception[int](boom)))
	defer c.Cancel()

	assert.Len(t, got, 1)
	assert.True(t, got[0].IsError())

	entries := logs.FilterMessage("rx event failed").All()
	assert.Len(t, entries, 1)
}

func TestSugaredWarnLogger_Warnf(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	w := NewSugaredWarnLogger(logger)

	w.Warnf("count is %d", 3)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Contains(t, entries[0].Message, "count is 3")
	}
}

func collectEvents[A any](in rx.Rx[A]) ([]rx.Event[A], rx.Cancelable) {
	var got []rx.Event[A]
	c := rx.Run(in, func(e rx.Event[A]) rx.RxResult {
		got = append(got, e)
		return rx.Continue
	})
	return got, c
}
