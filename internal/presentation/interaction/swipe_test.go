package interaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func swipeAt(ms int) time.Time {
	return time.Unix(0, 0).Add(time.Duration(ms) * time.Millisecond)
}

func TestHorizontalSwipeDismisses(t *testing.T) {
	for _, direction := range []int{1, -1} {
		var s SwipeRecognizer
		s.Begin(200, 100, swipeAt(0))
		assert.False(t, s.Move(200+direction*40, 105, swipeAt(100)))
		assert.True(t, s.Move(200+direction*90, 110, swipeAt(200)))
		assert.False(t, s.Tracking())
	}
}

func TestVerticalDriftAbandonsGesture(t *testing.T) {
	var s SwipeRecognizer
	s.Begin(200, 100, swipeAt(0))

	// Scrolling motion: mostly vertical.
	assert.False(t, s.Move(210, 170, swipeAt(100)))
	assert.False(t, s.Tracking())

	// Even a later large horizontal move must not dismiss.
	assert.False(t, s.Move(400, 170, swipeAt(150)))
}

func TestSlowDragIsNotASwipe(t *testing.T) {
	var s SwipeRecognizer
	s.Begin(200, 100, swipeAt(0))
	assert.False(t, s.Move(300, 100, swipeAt(1000)))
	assert.False(t, s.Tracking())
}

func TestMoveWithoutBeginIsIgnored(t *testing.T) {
	var s SwipeRecognizer
	assert.False(t, s.Move(300, 100, swipeAt(0)))
}

func TestEndStopsTracking(t *testing.T) {
	var s SwipeRecognizer
	s.Begin(0, 0, swipeAt(0))
	s.End()
	assert.False(t, s.Move(100, 0, swipeAt(10)))
}
