package rxcloud

import (
	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/CrisisTextLine/rx"
)

// Source adapts an inbound stream of CloudEvents (from any sdk-go receiver
// — HTTP, NATS, Kafka, ...) into an Rx[A]. Receive decodes and enqueues one
// envelope; AsRx subscribes to the resulting stream like any other Rx.
type Source[A any] struct {
	queue *rx.RxSource[A]
}

// NewSource creates a Source with the given bounded queue capacity.
func NewSource[A any](capacity int) *Source[A] {
	return &Source[A]{queue: rx.NewRxSource[A](capacity)}
}

// Receive decodes ce and enqueues the resulting rx.Event. A malformed
// envelope is delivered as an Error rather than dropped silently, so
// downstream operators observe it through the normal error path.
func (s *Source[A]) Receive(ce cloudevents.Event) {
	e, err := DecodeEvent[A](ce)
	if err != nil {
		s.queue.Add(rx.Err[A](err))
		return
	}
	s.queue.Add(e)
}

// Close tears down the underlying queue, waking any blocked puller.
func (s *Source[A]) Close() { s.queue.Close() }

// AsRx returns the Rx[A] view of this source.
func (s *Source[A]) AsRx() rx.Rx[A] { return s.queue.AsRx() }

// Publisher republishes every event observed on in as a CloudEvents
// envelope via publish, tagging each with source as the CloudEvents source
// attribute.
type Publisher[A any] struct {
	Source  string
	Publish func(cloudevents.Event) error
}

// Run subscribes to in and forwards every Next/Error/Completion as an
// encoded CloudEvent, returning the underlying subscription's Cancelable.
func (p *Publisher[A]) Run(in rx.Rx[A], opts ...rx.Option) rx.Cancelable {
	return rx.Run(in, func(e rx.Event[A]) rx.RxResult {
		ce, err := EncodeEvent(p.Source, e)
		if err != nil {
			return rx.Stop
		}
		if pubErr := p.Publish(ce); pubErr != nil {
			return rx.Stop
		}
		if e.IsCompletion() || e.IsError() {
			return rx.Stop
		}
		return rx.Continue
	}, opts...)
}
