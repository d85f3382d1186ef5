package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected *KeyEvent
	}{
		{"plain_char", []byte{'q'}, &KeyEvent{Key: 'q', Type: KeyChar}},
		{"ctrl_c", []byte{3}, &KeyEvent{Key: 3, Type: KeyChar}},
		{"escape", []byte{27}, &KeyEvent{Key: 27, Type: KeyEscape}},
		{"tab", []byte{'\t'}, &KeyEvent{Type: KeyTab}},
		{"shift_tab", []byte{27, '[', 'Z'}, &KeyEvent{Type: KeyShiftTab}},
		{"enter", []byte{'\r'}, &KeyEvent{Type: KeyEnter}},
		{"arrow_left", []byte{27, '[', 'D'}, &KeyEvent{Type: KeyLeft}},
		{"arrow_right", []byte{27, '[', 'C'}, &KeyEvent{Type: KeyRight}},
		{"unknown_escape_sequence", []byte{27, '[', 'Q'}, nil},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseKey(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMouseSGR(t *testing.T) {
	press, ok := parseMouse([]byte("\033[<0;42;7M"))
	require.True(t, ok)
	assert.Equal(t, MousePress, press.Type)
	assert.Equal(t, 42, press.X)
	assert.Equal(t, 7, press.Y)

	drag, ok := parseMouse([]byte("\033[<32;50;8M"))
	require.True(t, ok)
	assert.Equal(t, MouseDrag, drag.Type)

	release, ok := parseMouse([]byte("\033[<0;50;8m"))
	require.True(t, ok)
	assert.Equal(t, MouseRelease, release.Type)
}

func TestParseMouseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"\033[<0;42M", "\033[A", "\033[<a;b;cM", "hello"} {
		_, ok := parseMouse([]byte(input))
		assert.False(t, ok, input)
	}
}
