package rx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Constructors(t *testing.T) {
	n := Next(42)
	assert.True(t, n.IsNext())
	assert.Equal(t, 42, n.Value())
	assert.Nil(t, n.Cause())

	e := Err[int](errors.New("boom"))
	assert.True(t, e.IsError())
	require.Error(t, e.Cause())
	assert.Equal(t, "boom", e.Cause().Error())

	c := Completion[int]()
	assert.True(t, c.IsCompletion())
}

func TestEvent_ErrNilCauseReplaced(t *testing.T) {
	e := Err[int](nil)
	assert.True(t, e.IsError())
	assert.Error(t, e.Cause())
}

func TestRxResult_And(t *testing.T) {
	assert.Equal(t, Stop, Stop.And(Continue))
	assert.Equal(t, Stop, Continue.And(Stop))
	assert.Equal(t, Request(2), Request(5).And(Request(2)))
	assert.Equal(t, Continue, Continue.And(Continue))
}

func TestRxResult_Decrement(t *testing.T) {
	assert.Equal(t, Continue, Continue.Decrement())
	assert.Equal(t, Request(1), Request(2).Decrement())
	assert.Equal(t, Paused, Request(1).Decrement().Decrement()) // 1->0 (Paused)->Paused
	assert.Equal(t, Paused, Request(0).Decrement())
	assert.Equal(t, Stop, Stop.Decrement())
}

func TestRxResult_AddDemand(t *testing.T) {
	r := Request(3).AddDemand(2)
	assert.Equal(t, Request(5), r)
	assert.Equal(t, Continue, Continue.AddDemand(10))
	assert.Equal(t, Stop, Stop.AddDemand(10))
}

func TestRxResult_IsPaused(t *testing.T) {
	assert.True(t, Paused.IsPaused())
	assert.False(t, Continue.IsPaused())
	assert.False(t, Stop.IsPaused())
}
