package rxcloud

import (
	"testing"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrisisTextLine/rx"
)

func TestSource_ReceiveDecodesAndEnqueues(t *testing.T) {
	src := NewSource[int](4)
	ce, err := EncodeEvent("urn:test", rx.Next(7))
	require.NoError(t, err)

	src.Receive(ce)

	var got []rx.Event[int]
	c := rx.Run(src.AsRx(), func(e rx.Event[int]) rx.RxResult {
		got = append(got, e)
		return rx.Continue
	})
	defer c.Cancel()

	require.Eventually(t, func() bool { return len(got) >= 1 }, time.Second, time.Millisecond)
	assert.Equal(t, rx.Next(7), got[0])
}

func TestSource_ReceiveMalformedEnvelopeDeliversAsError(t *testing.T) {
	src := NewSource[int](4)
	ce, err := EncodeEvent[int]("urn:test", rx.Completion[int]())
	require.NoError(t, err)
	ce.SetType("dev.rx.bogus")

	src.Receive(ce)

	var got []rx.Event[int]
	c := rx.Run(src.AsRx(), func(e rx.Event[int]) rx.RxResult {
		got = append(got, e)
		return rx.Continue
	})
	defer c.Cancel()

	require.Eventually(t, func() bool { return len(got) >= 1 }, time.Second, time.Millisecond)
	assert.True(t, got[0].IsError())
}

func TestPublisher_RunEncodesAndPublishesEachEvent(t *testing.T) {
	var published []string
	pub := &Publisher[int]{
		Source: "urn:test",
		Publish: func(ce cloudevents.Event) error {
			published = append(published, ce.Type())
			return nil
		},
	}

	c := pub.Run(rx.Single(1))
	defer c.Cancel()

	require.Eventually(t, func() bool { return len(published) >= 2 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{TypeNext, TypeCompletion}, published)
}
