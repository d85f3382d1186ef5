package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "57", FormatValue(57))
	assert.Equal(t, "18.40", FormatValue(18.4))
	assert.Equal(t, "-4.25", FormatValue(-4.25))
}

func TestFormatDeltaCarriesSign(t *testing.T) {
	assert.Contains(t, FormatDelta(0.6), "+0.60")
	assert.Contains(t, FormatDelta(-4.25), "-4.25")
	assert.Contains(t, FormatDelta(0), "0")
}

func TestFormatAge(t *testing.T) {
	now := time.Unix(10_000, 0)
	assert.Equal(t, "never", FormatAge(0, now))
	assert.Equal(t, "30s ago", FormatAge(9_970, now))
	assert.Equal(t, "5m ago", FormatAge(9_700, now))
	assert.Equal(t, "2h 46m ago", FormatAge(0+4, now))
}

func TestSparkline(t *testing.T) {
	assert.Empty(t, Sparkline(nil))

	line := Sparkline([]float64{0, 1, 2, 3})
	assert.Equal(t, 4, len([]rune(line)))
	runes := []rune(line)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[3])

	// Flat series renders at the floor instead of dividing by zero.
	flat := Sparkline([]float64{5, 5, 5})
	assert.Equal(t, strings.Repeat("▁", 3), flat)
}

func TestIntensityGlyphClamps(t *testing.T) {
	assert.Equal(t, '▁', IntensityGlyph(-1))
	assert.Equal(t, '█', IntensityGlyph(2))
	assert.Equal(t, '█', IntensityGlyph(1))
}
