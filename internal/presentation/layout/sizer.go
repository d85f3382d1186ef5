package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

// NewSizer returns the shared sizer.
func NewSizer() *Sizer {
	return sharedSizer
}

// Sizer measures and pads strings against the live terminal geometry.
type Sizer struct {
}

func (s Sizer) displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads a string to a display width, handling wide runes.
func (s Sizer) PadString(text string, width int, leftAlign bool) string {
	actualWidth := s.displayWidth(text)
	if actualWidth >= width {
		return text
	}
	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return text + padding
	}
	return padding + text
}

// GetMaxWidth returns the usable content width for the current terminal.
func (s Sizer) GetMaxWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 60 {
		termWidth = 80
	}
	maxWidth := termWidth - 4
	if maxWidth > 110 {
		maxWidth = 110
	}
	return maxWidth
}

// GetSize returns the full terminal size with a sane fallback.
func (s Sizer) GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80, 24
	}
	return width, height
}
