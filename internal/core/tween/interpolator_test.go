package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(ms int) time.Time {
	return time.Unix(0, 0).Add(time.Duration(ms) * time.Millisecond)
}

func TestMidAnimationValueLiesStrictlyBetween(t *testing.T) {
	it := New(10)
	it.SetTarget(20, true, at(0))

	v := it.Tick(at(300))
	assert.Greater(t, v, 10.0)
	assert.Less(t, v, 20.0)
}

func TestReachesTargetExactlyAtDuration(t *testing.T) {
	it := New(10)
	it.SetTarget(20, true, at(0))

	assert.Equal(t, 20.0, it.Tick(at(600)))
	assert.False(t, it.Animating())

	// Stays put on later ticks.
	assert.Equal(t, 20.0, it.Tick(at(700)))
}

func TestEasingIsSymmetricAndMonotonic(t *testing.T) {
	it := New(0)
	it.SetTarget(100, true, at(0))

	prev := it.Tick(at(0))
	for ms := 60; ms <= 600; ms += 60 {
		v := it.Tick(at(ms))
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}

	// Cosine easing passes through the midpoint at half duration.
	it2 := New(0)
	it2.SetTarget(100, true, at(0))
	assert.InDelta(t, 50.0, it2.Tick(at(300)), 1e-9)
}

func TestSnapAppliesOnNextTickOnly(t *testing.T) {
	it := New(5)
	it.SetTarget(50, false, at(0))

	// Not applied until the display clock ticks.
	assert.Equal(t, 5.0, it.Displayed())
	assert.True(t, it.Animating())

	assert.Equal(t, 50.0, it.Tick(at(16)))
	assert.False(t, it.Animating())
}

func TestRetargetStartsFromCurrentlyDisplayedValue(t *testing.T) {
	it := New(0)
	it.SetTarget(100, true, at(0))
	it.Tick(at(300)) // displayed is now 50

	it.SetTarget(0, true, at(300))
	v := it.Tick(at(301))
	assert.InDelta(t, 50.0, v, 1.0) // resumed near the midpoint, no jump to 100

	assert.Equal(t, 0.0, it.Tick(at(900)))
}

func TestRetargetInSameTickDurationElapses(t *testing.T) {
	it := New(0)
	it.SetTarget(100, true, at(0))

	// New target arrives in the exact tick the old tween completes. The
	// old one must resolve to its final value before the new one starts.
	it.SetTarget(200, true, at(600))
	assert.Equal(t, 100.0, it.Displayed())

	assert.Equal(t, 200.0, it.Tick(at(1200)))
}

func TestZeroMovementTweenStaysStable(t *testing.T) {
	it := New(42)
	it.SetTarget(42, true, at(0))
	assert.Equal(t, 42.0, it.Tick(at(300)))
	assert.Equal(t, 42.0, it.Tick(at(600)))
}
