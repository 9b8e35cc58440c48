package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRxOptionVar_InitialEmissionAndSetSome(t *testing.T) {
	v := OptionVariable(None[int]())
	var got []Option[int]
	c := Run[Option[int]](v, func(e Event[Option[int]]) RxResult {
		if e.IsNext() {
			got = append(got, e.Value())
		}
		return Continue
	})
	defer c.Cancel()

	assert.Len(t, got, 1)
	assert.True(t, got[0].IsNone())

	v.SetSome(5)
	assert.Len(t, got, 2)
	assert.True(t, got[1].IsSome())
	assert.Equal(t, 5, got[1].Value())

	v.SetNone()
	assert.Len(t, got, 3)
	assert.True(t, got[2].IsNone())
}

func TestRxOptionVar_GetReflectsLatestSet(t *testing.T) {
	v := OptionVariable(Some(1))
	assert.Equal(t, Some(1), v.Get())
	v.SetSome(2)
	assert.Equal(t, Some(2), v.Get())
}

func TestRxOptionVar_StopEmitsCompletion(t *testing.T) {
	v := OptionVariable(Some(1))
	got, c := collectLive[Option[int]](v.ToOption())
	defer c.Cancel()
	v.Stop()
	assert.True(t, (*got)[len(*got)-1].IsCompletion())
}

func TestRxOptionVar_SetExceptionEmitsError(t *testing.T) {
	v := OptionVariable(Some(1))
	got, c := collectLive[Option[int]](v.ToOption())
	defer c.Cancel()
	v.SetException(errBoom)
	assert.True(t, (*got)[len(*got)-1].IsError())
	assert.Equal(t, errBoom, (*got)[len(*got)-1].Cause())
}
