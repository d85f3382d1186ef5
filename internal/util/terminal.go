package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorGray    = "\033[90m"
	ColorBold    = "\033[1m"
	ColorDim     = "\033[2m"
	ColorInverse = "\033[7m"

	ClearScreen    = "\033[2J"     // Clear entire screen
	ClearLine      = "\033[2K"     // Clear entire line
	MoveCursorHome = "\033[H"      // Move cursor to home position
	HideCursor     = "\033[?25l"   // Hide cursor
	ShowCursor     = "\033[?25h"   // Show cursor
	EnterAltScreen = "\033[?1049h" // Switch to alternate screen buffer
	ExitAltScreen  = "\033[?1049l" // Return to normal screen buffer

	// SGR mouse reporting: button-event tracking plus extended
	// coordinates, so drags inside the analysis overlay are visible.
	EnableMouse  = "\033[?1002h\033[?1006h"
	DisableMouse = "\033[?1006l\033[?1002l"
)

// MoveCursor returns the sequence moving the cursor to row, col (1-based).
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// GetDisplayWidth calculates the rendered width of a string, accounting
// for wide runes and emoji.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth cuts a string to the given display width.
func TruncateToWidth(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}

// PadToWidth right-pads a string to the given display width.
func PadToWidth(text string, width int) string {
	gap := width - GetDisplayWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

// CenterText centers text within the given display width.
func CenterText(text string, width int) string {
	w := GetDisplayWidth(text)
	if w >= width {
		return TruncateToWidth(text, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}
