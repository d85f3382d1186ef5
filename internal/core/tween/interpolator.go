// Package tween animates displayed scalar values between telemetry updates
// so metric cards glide instead of snapping. The interpolator is driven by
// the display clock: the orchestrator calls Tick once per UI frame.
package tween

import (
	"math"
	"time"
)

// DefaultDuration is how long one value transition runs.
const DefaultDuration = 600 * time.Millisecond

// ease maps linear progress to a smooth start/end curve with no overshoot.
func ease(p float64) float64 {
	return 0.5 - math.Cos(math.Pi*p)/2
}

// Interpolator tweens one displayed value toward its latest target. Not
// safe for concurrent use; it lives on the UI loop like everything else
// that touches the display.
type Interpolator struct {
	duration time.Duration

	display float64
	target  float64

	// in-flight tween
	active  bool
	from    float64
	startAt time.Time

	// a target set with animate=false applies on the next tick, keeping a
	// single rendering path for both modes
	pendingSnap bool
}

// New creates an interpolator showing initial, with the default duration.
func New(initial float64) *Interpolator {
	return NewWithDuration(initial, DefaultDuration)
}

// NewWithDuration creates an interpolator with an explicit duration.
func NewWithDuration(initial float64, duration time.Duration) *Interpolator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Interpolator{duration: duration, display: initial, target: initial}
}

// SetTarget points the interpolator at a new value. An in-flight tween is
// cancelled first and the new one starts from the value displayed right
// now, never from the stale previous target. With animate false the value
// snaps on the next display tick instead.
func (it *Interpolator) SetTarget(target float64, animate bool, now time.Time) {
	// Evaluate before cancelling so a tween whose duration elapses in this
	// exact tick reads its final value, not a partial one.
	it.display = it.valueAt(now)
	it.active = false
	it.pendingSnap = false
	it.target = target

	if !animate {
		it.pendingSnap = true
		return
	}

	it.from = it.display
	it.startAt = now
	it.active = true
}

// Tick advances the animation to the given display-clock instant and
// returns the value to draw this frame.
func (it *Interpolator) Tick(now time.Time) float64 {
	if it.pendingSnap {
		it.pendingSnap = false
		it.display = it.target
		return it.display
	}
	it.display = it.valueAt(now)
	if it.active && !now.Before(it.startAt.Add(it.duration)) {
		it.active = false
		it.display = it.target
	}
	return it.display
}

// Displayed returns the value drawn on the last tick.
func (it *Interpolator) Displayed() float64 {
	return it.display
}

// Animating reports whether a tween or pending snap is still in flight.
func (it *Interpolator) Animating() bool {
	return it.active || it.pendingSnap
}

func (it *Interpolator) valueAt(now time.Time) float64 {
	if !it.active {
		return it.display
	}
	elapsed := now.Sub(it.startAt)
	if elapsed <= 0 {
		return it.from
	}
	if elapsed >= it.duration {
		return it.target
	}
	p := float64(elapsed) / float64(it.duration)
	return it.from + (it.target-it.from)*ease(p)
}
