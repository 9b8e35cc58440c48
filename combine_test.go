package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckArity_PanicsAboveTen(t *testing.T) {
	assert.PanicsWithValue(t, ErrTupleArityTooLarge, func() {
		checkArity(11)
	})
	assert.NotPanics(t, func() {
		checkArity(10)
	})
}

func TestZip_SliceVariadic_ThreeInputs(t *testing.T) {
	inputs := []Rx[int]{Seq([]int{1, 2}), Seq([]int{10, 20}), Seq([]int{100, 200})}
	got, c := collect[[]int](Zip[int](inputs))
	defer c.Cancel()

	var tuples [][]int
	for _, e := range got {
		if e.IsNext() {
			tuples = append(tuples, e.Value())
		}
	}
	assert.Equal(t, [][]int{{1, 10, 100}, {2, 20, 200}}, tuples)
	assert.True(t, got[len(got)-1].IsCompletion())
}

func TestJoin_SliceVariadic_ThreeInputs(t *testing.T) {
	a := Variable(1)
	b := Variable(10)
	c := Variable(100)
	got, cancel := collectLive[[]int](Join[int]([]Rx[int]{a, b, c}))
	defer cancel.Cancel()

	require := func(n int) {
		if len(*got) < n {
			t.Fatalf("expected at least %d events, got %d", n, len(*got))
		}
	}
	require(1)
	assert.Equal(t, []int{1, 10, 100}, (*got)[0].Value())

	a.Set(2)
	require(2)
	assert.Equal(t, []int{2, 10, 100}, (*got)[1].Value())
}

func TestZip_ErrorAggregatesAcrossInputs(t *testing.T) {
	a := Variable(1)
	b := Variable(10)
	got, cancel := collectLive[[]int](Zip[int]([]Rx[int]{a, b}))
	defer cancel.Cancel()

	a.SetException(errBoom)
	b.SetException(errBoom)

	var sawError bool
	for _, e := range *got {
		if e.IsError() {
			sawError = true
			break
		}
	}
	assert.True(t, sawError)
}
