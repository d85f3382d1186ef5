package interaction

import (
	"time"
)

// Swipe gesture thresholds, in gesture units (pixel-equivalents; the
// orchestrator scales terminal cells before feeding the recognizer).
const (
	SwipeMinHorizontal = 80
	SwipeMaxVertical   = 60
	SwipeMaxDuration   = 700 * time.Millisecond
)

// SwipeRecognizer detects the horizontal dismiss gesture over the modal:
// a drag exceeding SwipeMinHorizontal displacement in either horizontal
// direction while vertical displacement stays under SwipeMaxVertical,
// within a bounded time window. A drag that wanders too far vertically is
// abandoned so it never steals scrolls.
type SwipeRecognizer struct {
	tracking bool
	startX   int
	startY   int
	startAt  time.Time
}

// Begin starts tracking a gesture at the given position.
func (s *SwipeRecognizer) Begin(x, y int, at time.Time) {
	s.tracking = true
	s.startX = x
	s.startY = y
	s.startAt = at
}

// Move feeds a drag position. It returns true exactly once, when the
// displacement qualifies as a dismiss swipe; tracking ends either way
// once the gesture resolves.
func (s *SwipeRecognizer) Move(x, y int, at time.Time) bool {
	if !s.tracking {
		return false
	}
	if at.Sub(s.startAt) > SwipeMaxDuration {
		s.tracking = false
		return false
	}

	dy := y - s.startY
	if dy < 0 {
		dy = -dy
	}
	if dy >= SwipeMaxVertical {
		s.tracking = false
		return false
	}

	dx := x - s.startX
	if dx < 0 {
		dx = -dx
	}
	if dx >= SwipeMinHorizontal {
		s.tracking = false
		return true
	}
	return false
}

// End finishes the gesture without a dismiss.
func (s *SwipeRecognizer) End() {
	s.tracking = false
}

// Tracking reports whether a gesture is in progress.
func (s *SwipeRecognizer) Tracking() bool {
	return s.tracking
}
