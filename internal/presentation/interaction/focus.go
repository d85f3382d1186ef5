package interaction

// FocusContainer traps focus inside the modal analysis overlay. While the
// container is open, Tab and Shift+Tab cycle strictly between its
// focusable controls, wrapping in both directions, and Escape requests a
// close. The control focused before opening is recorded and restored on
// close.
//
// States: closed (zero value) and open. All methods are no-ops in the
// state where they don't apply, so callers need no guards.
type FocusContainer struct {
	focusables []string
	open       bool
	current    int
	restoreTo  string // focus record, held only while open
	hasRecord  bool
}

// NewFocusContainer creates a closed container over the given controls,
// in tab order.
func NewFocusContainer(focusables []string) *FocusContainer {
	return &FocusContainer{focusables: append([]string(nil), focusables...)}
}

// Open records the previously focused control and moves focus to the
// first focusable. Opening an open container is a no-op.
func (f *FocusContainer) Open(previouslyFocused string) {
	if f.open {
		return
	}
	f.open = true
	f.restoreTo = previouslyFocused
	f.hasRecord = previouslyFocused != ""
	f.current = 0
}

// Close releases the trap and returns the control focus should return to
// ("" when none was recorded). The record is cleared the moment the
// container closes. Closing a closed container returns "".
func (f *FocusContainer) Close() string {
	if !f.open {
		return ""
	}
	f.open = false
	restored := ""
	if f.hasRecord {
		restored = f.restoreTo
	}
	f.restoreTo = ""
	f.hasRecord = false
	return restored
}

// IsOpen reports whether the trap is active.
func (f *FocusContainer) IsOpen() bool {
	return f.open
}

// Focused returns the currently focused control, "" when closed or empty.
func (f *FocusContainer) Focused() string {
	if !f.open || len(f.focusables) == 0 {
		return ""
	}
	return f.focusables[f.current]
}

// FocusNext advances focus, wrapping from last to first.
func (f *FocusContainer) FocusNext() {
	if !f.open || len(f.focusables) == 0 {
		return
	}
	f.current = (f.current + 1) % len(f.focusables)
}

// FocusPrev moves focus backwards, wrapping from first to last.
func (f *FocusContainer) FocusPrev() {
	if !f.open || len(f.focusables) == 0 {
		return
	}
	f.current = (f.current - 1 + len(f.focusables)) % len(f.focusables)
}

// HandleKey processes a key while open. It returns whether the event was
// consumed and whether it asked to close the container.
func (f *FocusContainer) HandleKey(ev KeyEvent) (handled, closeRequested bool) {
	if !f.open {
		return false, false
	}
	switch ev.Type {
	case KeyTab:
		f.FocusNext()
		return true, false
	case KeyShiftTab:
		f.FocusPrev()
		return true, false
	case KeyEscape:
		return true, true
	}
	return false, false
}
