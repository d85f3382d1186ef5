// Package display owns the terminal: alternate screen lifecycle, mouse
// reporting, and differential line rendering.
package display

import (
	"fmt"
	"strings"

	"github.com/zenmachine/zentop/internal/util"
)

// TerminalDisplay draws screen frames into the alternate buffer. Smart
// rendering redraws only the lines that changed since the previous frame,
// which keeps a 10 Hz display clock cheap.
type TerminalDisplay struct {
	inAlternateScreen bool
	mouseEnabled      bool
	previousScreen    []string
	isFirstRender     bool
}

// NewTerminalDisplay creates a display.
func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{isFirstRender: true}
}

// EnterAlternateScreen switches to the alternate screen buffer and hides
// the cursor. Idempotent.
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Print(util.EnterAltScreen)
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.HideCursor)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen restores the normal screen buffer. Idempotent.
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	td.DisableMouse()
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.ShowCursor)
	fmt.Print(util.ExitAltScreen)
	td.inAlternateScreen = false
}

// EnableMouse turns on SGR mouse reporting for drag gestures.
func (td *TerminalDisplay) EnableMouse() {
	if !td.mouseEnabled {
		fmt.Print(util.EnableMouse)
		td.mouseEnabled = true
	}
}

// DisableMouse turns mouse reporting back off.
func (td *TerminalDisplay) DisableMouse() {
	if td.mouseEnabled {
		fmt.Print(util.DisableMouse)
		td.mouseEnabled = false
	}
}

// ClearScreen wipes the alternate buffer and forgets the previous frame,
// forcing the next render to repaint everything.
func (td *TerminalDisplay) ClearScreen() {
	if td.inAlternateScreen {
		fmt.Print(util.ClearScreen)
		fmt.Print(util.MoveCursorHome)
	}
	td.previousScreen = nil
}

// Render draws a frame. Lines unchanged since the previous frame are
// skipped; shrinking frames clear their leftover rows.
func (td *TerminalDisplay) Render(lines []string) {
	if td.isFirstRender {
		td.ClearScreen()
		td.isFirstRender = false
	}

	var b strings.Builder
	for i, line := range lines {
		if i < len(td.previousScreen) && td.previousScreen[i] == line {
			continue
		}
		b.WriteString(util.MoveCursor(i+1, 1))
		b.WriteString(util.ClearLine)
		b.WriteString(line)
	}
	for i := len(lines); i < len(td.previousScreen); i++ {
		b.WriteString(util.MoveCursor(i+1, 1))
		b.WriteString(util.ClearLine)
	}
	fmt.Print(b.String())

	td.previousScreen = append(td.previousScreen[:0], lines...)
}
