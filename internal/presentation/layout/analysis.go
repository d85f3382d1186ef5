package layout

import (
	"fmt"
	"strings"

	"github.com/zenmachine/zentop/internal/util"
)

// Focusable control ids inside the analysis overlay, in tab order.
const (
	CtrlClose      = "close"
	CtrlExport     = "export"
	CtrlBrushStart = "brush-start"
	CtrlBrushEnd   = "brush-end"
)

// AnalysisControls lists the overlay's focusable controls in tab order.
func AnalysisControls() []string {
	return []string{CtrlClose, CtrlExport, CtrlBrushStart, CtrlBrushEnd}
}

// AnalysisLayout renders the modal analysis overlay: the full margin
// sparkline, the brushable pulse timeline, and the selection summary.
type AnalysisLayout struct {
	sizer *Sizer
}

// NewAnalysisLayout creates an analysis layout.
func NewAnalysisLayout() *AnalysisLayout {
	return &AnalysisLayout{sizer: sharedSizer}
}

// Bounds returns the overlay's cell rectangle (1-based, inclusive) for a
// terminal of the given size. Used for gesture hit-testing.
func (a *AnalysisLayout) Bounds(termWidth, termHeight int) (left, top, right, bottom int) {
	left, top = 3, 2
	right = termWidth - 2
	bottom = termHeight - 1
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	return left, top, right, bottom
}

// Render produces the overlay lines for one frame.
func (a *AnalysisLayout) Render(frame Frame) []string {
	width := frame.Width
	if width <= 0 {
		width = a.sizer.GetMaxWidth()
	}
	inner := width - 4

	lines := make([]string, 0, 16)
	lines = append(lines, "┌"+strings.Repeat("─", width-2)+"┐")
	lines = append(lines, boxed(util.ColorBold+"Margin analysis"+util.ColorReset, inner))
	lines = append(lines, boxed("", inner))

	if len(frame.State.MarginSeries) > 0 {
		lines = append(lines, boxed(util.Sparkline(frame.State.MarginSeries), inner))
		lines = append(lines, boxed("", inner))
	}

	lines = append(lines, a.timelineLines(frame, inner)...)
	lines = append(lines, boxed("", inner))
	lines = append(lines, boxed(a.controlsLine(frame), inner))
	lines = append(lines, boxed(util.ColorGray+"tab cycles · enter activates · esc or swipe closes"+util.ColorReset, inner))
	lines = append(lines, "└"+strings.Repeat("─", width-2)+"┘")
	return lines
}

func (a *AnalysisLayout) timelineLines(frame Frame, inner int) []string {
	points := frame.Normalized

	switch len(points) {
	case 0:
		return []string{boxed(util.ColorGray+"Calibrating timeline..."+util.ColorReset, inner)}
	case 1:
		only := points[0].Point
		return []string{boxed(fmt.Sprintf("%sSingle sample%s  margin %s  pulse %s",
			util.ColorGray, util.ColorReset,
			util.FormatValue(only.Margin), util.FormatValue(only.AdversaryPulse)), inner)}
	}

	sel := frame.Brush.Selection()

	// Pulse strip with brush handles.
	var strip strings.Builder
	for i, p := range points {
		glyph := string(util.IntensityGlyph(p.Intensity))
		switch {
		case i == sel.StartIndex:
			handle := util.ColorCyan + "▕" + util.ColorReset
			if frame.FocusedCtrl == CtrlBrushStart {
				handle = util.ColorInverse + "▕" + util.ColorReset
			}
			strip.WriteString(handle)
		case i == sel.EndIndex:
			handle := util.ColorCyan + "▏" + util.ColorReset
			if frame.FocusedCtrl == CtrlBrushEnd {
				handle = util.ColorInverse + "▏" + util.ColorReset
			}
			strip.WriteString(handle)
		case i > sel.StartIndex && i < sel.EndIndex:
			strip.WriteString(util.ColorRed + glyph + util.ColorReset)
		default:
			strip.WriteString(util.ColorGray + glyph + util.ColorReset)
		}
	}

	inRange := points[sel.StartIndex : sel.EndIndex+1]
	var marginSum, pulseMax float64
	for _, p := range inRange {
		marginSum += p.Point.Margin
		if p.Point.AdversaryPulse > pulseMax {
			pulseMax = p.Point.AdversaryPulse
		}
	}
	summary := fmt.Sprintf("selection %d–%d of %d · avg margin %s · peak pulse %s",
		sel.StartIndex, sel.EndIndex, len(points)-1,
		util.FormatValue(marginSum/float64(len(inRange))),
		util.FormatValue(pulseMax))

	return []string{
		boxed(util.ColorBold+"Adversary pulse"+util.ColorReset, inner),
		boxed(strip.String(), inner),
		boxed(util.ColorGray+summary+util.ColorReset, inner),
	}
}

func (a *AnalysisLayout) controlsLine(frame Frame) string {
	render := func(id, label string) string {
		if frame.FocusedCtrl == id {
			return util.ColorInverse + "[" + label + "]" + util.ColorReset
		}
		return "[" + label + "]"
	}
	return render(CtrlClose, "Close") + "  " + render(CtrlExport, "Export CSV") +
		"  " + render(CtrlBrushStart, "◀ start") + "  " + render(CtrlBrushEnd, "end ▶")
}

// boxed wraps a content line with the overlay's side borders.
func boxed(content string, inner int) string {
	return "│ " + padANSI(content, inner) + " │"
}
