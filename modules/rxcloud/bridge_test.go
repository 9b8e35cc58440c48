package rxcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrisisTextLine/rx"
)

func TestEncodeDecodeEvent_NextRoundTrips(t *testing.T) {
	ce, err := EncodeEvent("urn:test", rx.Next(42))
	require.NoError(t, err)
	assert.Equal(t, TypeNext, ce.Type())

	back, err := DecodeEvent[int](ce)
	require.NoError(t, err)
	assert.Equal(t, rx.Next(42), back)
}

func TestEncodeDecodeEvent_ErrorRoundTrips(t *testing.T) {
	ce, err := EncodeEvent[int]("urn:test", rx.Err[int](assertError("boom")))
	require.NoError(t, err)
	assert.Equal(t, TypeError, ce.Type())

	back, err := DecodeEvent[int](ce)
	require.NoError(t, err)
	assert.True(t, back.IsError())
	assert.Equal(t, "boom", back.Cause().Error())
}

func TestEncodeDecodeEvent_CompletionRoundTrips(t *testing.T) {
	ce, err := EncodeEvent[int]("urn:test", rx.Completion[int]())
	require.NoError(t, err)
	assert.Equal(t, TypeCompletion, ce.Type())

	back, err := DecodeEvent[int](ce)
	require.NoError(t, err)
	assert.True(t, back.IsCompletion())
}

func TestDecodeEvent_UnrecognizedTypeErrors(t *testing.T) {
	ce, err := EncodeEvent[int]("urn:test", rx.Completion[int]())
	require.NoError(t, err)
	ce.SetType("dev.rx.bogus")

	_, err = DecodeEvent[int](ce)
	assert.Error(t, err)
}

type assertError string

func (e assertError) Error() string { return string(e) }
