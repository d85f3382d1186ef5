// Package interaction handles raw terminal input for the dashboard:
// keyboard events, SGR mouse reports, the modal focus trap, and the
// swipe-to-dismiss gesture recognizer.
package interaction

import (
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// KeyType classifies a keyboard event.
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
	KeyTab
	KeyShiftTab
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// KeyEvent represents one key press.
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// MouseEventType classifies an SGR mouse report.
type MouseEventType int

const (
	MousePress MouseEventType = iota
	MouseDrag
	MouseRelease
)

// MouseEvent is one decoded mouse report, 1-based cell coordinates.
type MouseEvent struct {
	X, Y int
	Type MouseEventType
	Time time.Time
}

// Reader reads stdin in raw mode and splits the stream into keyboard and
// mouse events.
type Reader struct {
	oldState *unix.Termios
	keys     chan KeyEvent
	mouse    chan MouseEvent
	stop     chan struct{}
}

// NewReader switches the terminal to raw mode and starts reading.
func NewReader() (*Reader, error) {
	r := &Reader{
		keys:  make(chan KeyEvent, 10),
		mouse: make(chan MouseEvent, 32),
		stop:  make(chan struct{}),
	}
	if err := r.enableRawMode(); err != nil {
		return nil, err
	}
	go r.readInput()
	return r, nil
}

// Events returns the keyboard event channel.
func (r *Reader) Events() <-chan KeyEvent {
	return r.keys
}

// Mouse returns the mouse event channel.
func (r *Reader) Mouse() <-chan MouseEvent {
	return r.mouse
}

// Close stops the reader and restores the terminal. The read goroutine
// stays parked in the blocking stdin read until one more byte arrives, so
// a Reader is not restartable; create one per process.
func (r *Reader) Close() error {
	close(r.stop)
	return r.disableRawMode()
}

func (r *Reader) readInput() {
	buf := make([]byte, 64)
	for {
		select {
		case <-r.stop:
			return
		default:
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				continue
			}
			r.dispatch(buf[:n])
		}
	}
}

func (r *Reader) dispatch(buf []byte) {
	if mouse, ok := parseMouse(buf); ok {
		select {
		case r.mouse <- mouse:
		case <-r.stop:
		}
		return
	}
	if key := parseKey(buf); key != nil {
		select {
		case r.keys <- *key:
		case <-r.stop:
		}
	}
}

// parseKey decodes a raw input chunk into a key event.
func parseKey(buf []byte) *KeyEvent {
	if len(buf) == 0 {
		return nil
	}

	switch buf[0] {
	case 3: // Ctrl+C
		return &KeyEvent{Key: 3, Type: KeyChar}
	case '\t':
		return &KeyEvent{Type: KeyTab}
	case '\r', '\n':
		return &KeyEvent{Type: KeyEnter}
	case 27:
		if len(buf) == 1 {
			return &KeyEvent{Key: 27, Type: KeyEscape}
		}
		if len(buf) >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return &KeyEvent{Type: KeyUp}
			case 'B':
				return &KeyEvent{Type: KeyDown}
			case 'C':
				return &KeyEvent{Type: KeyRight}
			case 'D':
				return &KeyEvent{Type: KeyLeft}
			case 'Z':
				return &KeyEvent{Type: KeyShiftTab}
			}
		}
		return nil
	}

	return &KeyEvent{Key: rune(buf[0]), Type: KeyChar}
}

// parseMouse decodes an SGR mouse report: ESC [ < b ; x ; y (M|m).
func parseMouse(buf []byte) (MouseEvent, bool) {
	s := string(buf)
	if !strings.HasPrefix(s, "\033[<") {
		return MouseEvent{}, false
	}
	final := s[len(s)-1]
	if final != 'M' && final != 'm' {
		return MouseEvent{}, false
	}

	parts := strings.Split(s[3:len(s)-1], ";")
	if len(parts) != 3 {
		return MouseEvent{}, false
	}
	button, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return MouseEvent{}, false
	}

	ev := MouseEvent{X: x, Y: y, Time: time.Now()}
	switch {
	case final == 'm':
		ev.Type = MouseRelease
	case button&32 != 0: // motion flag
		ev.Type = MouseDrag
	default:
		ev.Type = MousePress
	}
	return ev, true
}
