package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesCurrentValueImmediately(t *testing.T) {
	s := New(42)

	var got []int
	unsub := s.Subscribe(func(v int) {
		got = append(got, v)
	})
	defer unsub()

	require.Len(t, got, 1)
	assert.Equal(t, 42, got[0])
}

func TestEveryWriteNotifiesInSubscriptionOrder(t *testing.T) {
	s := New("initial")

	var order []string
	s.Subscribe(func(v string) { order = append(order, "first:"+v) })
	s.Subscribe(func(v string) { order = append(order, "second:"+v) })

	s.Set("a")
	s.Set("a") // identical value still notifies

	assert.Equal(t, []string{
		"first:initial",
		"second:initial",
		"first:a", "second:a",
		"first:a", "second:a",
	}, order)
}

func TestLateSubscriberSeesCurrentValueBeforeNewWrites(t *testing.T) {
	s := New(0)
	s.Set(1)
	s.Set(2)

	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })
	s.Set(3)

	assert.Equal(t, []int{2, 3}, got)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New(0)

	count := 0
	unsub := s.Subscribe(func(int) { count++ })
	s.Set(1)
	unsub()
	s.Set(2)

	assert.Equal(t, 2, count) // initial + first write only
}

func TestUpdateAppliesTransform(t *testing.T) {
	s := New(10)
	s.Update(func(v int) int { return v * 2 })
	assert.Equal(t, 20, s.Get())
}

func TestUpdatePanicLeavesPriorValueAndNotifiesNobody(t *testing.T) {
	s := New(7)

	notifications := 0
	s.Subscribe(func(int) { notifications++ })
	require.Equal(t, 1, notifications)

	assert.Panics(t, func() {
		s.Update(func(int) int { panic("transform failed") })
	})

	assert.Equal(t, 7, s.Get())
	assert.Equal(t, 1, notifications)

	// The store must remain usable after a failed update.
	s.Set(8)
	assert.Equal(t, 8, s.Get())
	assert.Equal(t, 2, notifications)
}

func TestCloneProtectsAgainstConsumerMutation(t *testing.T) {
	clone := func(v []int) []int { return append([]int(nil), v...) }
	s := NewWithClone([]int{1, 2, 3}, clone)

	leaked := s.Get()
	leaked[0] = 99

	assert.Equal(t, []int{1, 2, 3}, s.Get())

	s.Subscribe(func(v []int) { v[1] = 98 })
	assert.Equal(t, []int{1, 2, 3}, s.Get())
}
