package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusTrapWrapsBothDirections(t *testing.T) {
	f := NewFocusContainer([]string{"close", "export", "brush-start", "brush-end"})
	f.Open("metric-card-0")

	assert.Equal(t, "close", f.Focused())

	// Tab from the last focusable wraps to the first.
	for i := 0; i < 3; i++ {
		handled, _ := f.HandleKey(KeyEvent{Type: KeyTab})
		assert.True(t, handled)
	}
	assert.Equal(t, "brush-end", f.Focused())
	f.HandleKey(KeyEvent{Type: KeyTab})
	assert.Equal(t, "close", f.Focused())

	// Shift+Tab from the first wraps to the last.
	f.HandleKey(KeyEvent{Type: KeyShiftTab})
	assert.Equal(t, "brush-end", f.Focused())
}

func TestFocusRestoredOnClose(t *testing.T) {
	f := NewFocusContainer([]string{"close", "export"})
	f.Open("metric-card-2")
	f.FocusNext()

	restored := f.Close()
	assert.Equal(t, "metric-card-2", restored)
	assert.False(t, f.IsOpen())
	assert.Empty(t, f.Focused())

	// The record is cleared: a second close restores nothing.
	assert.Empty(t, f.Close())
}

func TestEscapeRequestsClose(t *testing.T) {
	f := NewFocusContainer([]string{"close"})
	f.Open("")

	handled, closeRequested := f.HandleKey(KeyEvent{Type: KeyEscape})
	assert.True(t, handled)
	assert.True(t, closeRequested)
	// Escape only requests; the owner decides when to actually close.
	assert.True(t, f.IsOpen())
}

func TestClosedContainerIgnoresKeys(t *testing.T) {
	f := NewFocusContainer([]string{"close"})
	handled, closeRequested := f.HandleKey(KeyEvent{Type: KeyTab})
	assert.False(t, handled)
	assert.False(t, closeRequested)
}

func TestOpenIsIdempotentWhileOpen(t *testing.T) {
	f := NewFocusContainer([]string{"close", "export"})
	f.Open("first")
	f.FocusNext()
	f.Open("second") // ignored; the original record survives

	assert.Equal(t, "export", f.Focused())
	assert.Equal(t, "first", f.Close())
}
