package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// FormatValue renders a metric value compactly: integers without decimals,
// everything else with two.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatDelta renders a signed change with an explicit sign and direction
// glyph, colored by sign.
func FormatDelta(delta float64) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("%s▲ +%s%s", ColorGreen, FormatValue(delta), ColorReset)
	case delta < 0:
		return fmt.Sprintf("%s▼ %s%s", ColorRed, FormatValue(delta), ColorReset)
	default:
		return fmt.Sprintf("%s· 0%s", ColorGray, ColorReset)
	}
}

// FormatAge renders how long ago a unix timestamp was, for the footer.
func FormatAge(unixSeconds int64, now time.Time) string {
	if unixSeconds == 0 {
		return "never"
	}
	age := now.Sub(time.Unix(unixSeconds, 0))
	if age < 0 {
		age = 0
	}
	switch {
	case age < time.Minute:
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return fmt.Sprintf("%dh %dm ago", int(age.Hours()), int(age.Minutes())%60)
	}
}

// Sparkline renders a series as block glyphs scaled into its own min/max
// range. A flat series renders at the lowest glyph.
func Sparkline(series []float64) string {
	if len(series) == 0 {
		return ""
	}
	lo, hi := series[0], series[0]
	for _, v := range series {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	span := hi - lo
	for _, v := range series {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkGlyphs)-1))
		}
		b.WriteRune(sparkGlyphs[idx])
	}
	return b.String()
}

// IntensityGlyph maps a normalized [0,1] intensity onto a block glyph.
func IntensityGlyph(intensity float64) rune {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return sparkGlyphs[int(intensity*float64(len(sparkGlyphs)-1))]
}
