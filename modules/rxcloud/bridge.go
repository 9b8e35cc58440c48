// Package rxcloud bridges rx.Event values to and from CloudEvents v1.0
// envelopes, so an Rx graph can be fed by (or publish to) any
// cloudevents/sdk-go transport binding without the core depending on it.
package rxcloud

import (
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"

	"github.com/CrisisTextLine/rx"
)

// Event type suffixes distinguishing the three rx.Event shapes once
// encoded onto the wire, mirroring the teacher's CloudEventType* naming
// convention for framework-lifecycle events.
const (
	TypeNext       = "dev.rx.next"
	TypeError      = "dev.rx.error"
	TypeCompletion = "dev.rx.completion"
)

// ExtensionErrorMessage carries an Error event's cause as a CloudEvents
// extension attribute, since CloudEvents has no native error shape.
const ExtensionErrorMessage = "rxerrormessage"

// EncodeEvent converts an rx.Event into a CloudEvents envelope with the
// given source; value-bearing events are JSON-encoded as the data payload.
func EncodeEvent[A any](source string, e rx.Event[A]) (cloudevents.Event, error) {
	ce := cloudevents.NewEvent()
	ce.SetID(newEventID())
	ce.SetSource(source)
	ce.SetTime(time.Now())
	ce.SetSpecVersion(cloudevents.VersionV1)

	switch e.Kind() {
	case rx.KindNext:
		ce.SetType(TypeNext)
		if err := ce.SetData(cloudevents.ApplicationJSON, e.Value()); err != nil {
			return cloudevents.Event{}, fmt.Errorf("rxcloud: encode Next: %w", err)
		}
	case rx.KindError:
		ce.SetType(TypeError)
		ce.SetExtension(ExtensionErrorMessage, e.Cause().Error())
	default:
		ce.SetType(TypeCompletion)
	}

	if err := ce.Validate(); err != nil {
		return cloudevents.Event{}, fmt.Errorf("rxcloud: invalid CloudEvent: %w", err)
	}
	return ce, nil
}

// DecodeEvent converts a CloudEvents envelope back into an rx.Event. The
// data payload, if present, is unmarshaled as A for TypeNext events.
func DecodeEvent[A any](ce cloudevents.Event) (rx.Event[A], error) {
	switch ce.Type() {
	case TypeNext:
		var v A
		if len(ce.Data()) > 0 {
			if err := ce.DataAs(&v); err != nil {
				return rx.Event[A]{}, fmt.Errorf("rxcloud: decode Next data: %w", err)
			}
		}
		return rx.Next(v), nil
	case TypeError:
		msg := "rxcloud: remote error"
		if ext, ok := ce.Extensions()[ExtensionErrorMessage]; ok {
			if s, ok := ext.(string); ok {
				msg = s
			}
		}
		return rx.Err[A](fmt.Errorf("%s", msg)), nil
	case TypeCompletion:
		return rx.Completion[A](), nil
	default:
		return rx.Event[A]{}, fmt.Errorf("rxcloud: unrecognized event type %q", ce.Type())
	}
}

func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
