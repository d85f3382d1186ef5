package layout

import (
	"fmt"
	"strings"

	"github.com/zenmachine/zentop/internal/util"
)

// DashboardLayout renders the main live screen: header, metric cards,
// margin sparkline, agent reasoning, inventory and orders.
type DashboardLayout struct {
	sizer *Sizer
}

// NewDashboardLayout creates a dashboard layout.
func NewDashboardLayout() *DashboardLayout {
	return &DashboardLayout{sizer: sharedSizer}
}

// Render produces the screen lines for one frame.
func (d *DashboardLayout) Render(frame Frame) []string {
	width := frame.Width
	if width <= 0 {
		width = d.sizer.GetMaxWidth()
	}

	lines := make([]string, 0, 32)
	lines = append(lines, d.headerLine(frame, width))
	lines = append(lines, d.statusLine(frame, width))
	lines = append(lines, "")

	if frame.State.Loading {
		lines = append(lines, util.CenterText("Connecting to telemetry stream...", width))
		lines = append(lines, "")
		if frame.State.Error != "" {
			lines = append(lines, util.CenterText(util.ColorYellow+frame.State.Error+util.ColorReset, width))
		}
		lines = append(lines, "", d.footerLine(frame, width))
		return lines
	}

	lines = append(lines, d.metricCards(frame, width)...)
	lines = append(lines, "")
	lines = append(lines, d.marginSection(frame, width)...)
	lines = append(lines, "")
	lines = append(lines, d.reasoningSection(frame, width)...)

	if len(frame.State.Inventory) > 0 || len(frame.State.Orders) > 0 {
		lines = append(lines, "")
		lines = append(lines, d.supplySection(frame, width)...)
	}

	if frame.Interaction.ShowHelp {
		lines = append(lines, "")
		lines = append(lines, d.helpSection()...)
	}

	lines = append(lines, "", d.footerLine(frame, width))
	return lines
}

func (d *DashboardLayout) helpSection() []string {
	return []string{
		util.ColorBold + "Keys" + util.ColorReset,
		"  q  quit              a  analysis overlay",
		"  p  pause/resume      r  refresh now",
		"  e  export CSV        m  reduced motion",
		"  h  toggle this help",
		"  ←/→  select metric (move brush handle inside the overlay)",
	}
}

func (d *DashboardLayout) headerLine(frame Frame, width int) string {
	title := util.ColorBold + util.ColorMagenta + "ZEN MACHINE" + util.ColorReset + " · live telemetry"
	age := util.FormatAge(frame.State.LastUpdated, frame.Now)
	right := util.ColorGray + "updated " + age + util.ColorReset
	gap := width - util.GetDisplayWidth("ZEN MACHINE · live telemetry") - util.GetDisplayWidth("updated "+age)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (d *DashboardLayout) statusLine(frame Frame, width int) string {
	var badge string
	switch {
	case frame.Interaction.IsPaused:
		badge = util.ColorYellow + "⏸ PAUSED" + util.ColorReset
	case frame.State.Offline:
		badge = util.ColorRed + "⚠ LINK LOST" + util.ColorReset
	case frame.State.Error != "":
		badge = util.ColorYellow + "⚠ " + frame.State.Error + util.ColorReset
	default:
		badge = util.ColorGreen + "● LIVE" + util.ColorReset
	}
	if frame.Interaction.StatusMessage != "" {
		badge += "  " + util.ColorCyan + frame.Interaction.StatusMessage + util.ColorReset
	}
	return badge
}

// metricCards lays the metric tiles out in a single row, highlighting the
// selected one.
func (d *DashboardLayout) metricCards(frame Frame, width int) []string {
	metrics := frame.State.Metrics
	if len(metrics) == 0 {
		return []string{util.ColorGray + "No metrics reported yet." + util.ColorReset}
	}

	cardWidth := width/len(metrics) - 1
	if cardWidth < 16 {
		cardWidth = 16
	}

	labels := make([]string, 0, len(metrics))
	values := make([]string, 0, len(metrics))
	deltas := make([]string, 0, len(metrics))
	for i, m := range metrics {
		label := util.TruncateToWidth(m.Label, cardWidth-2)
		if i == frame.Interaction.SelectedMetric {
			label = util.ColorInverse + label + util.ColorReset
		} else {
			label = util.ColorCyan + label + util.ColorReset
		}
		value := util.ColorBold + util.FormatValue(frame.DisplayValue(m)) + util.ColorReset
		if m.Unit != "" {
			value += " " + m.Unit
		}
		labels = append(labels, padANSI(label, cardWidth))
		values = append(values, padANSI(value, cardWidth))
		deltas = append(deltas, padANSI(util.FormatDelta(m.Delta), cardWidth))
	}

	return []string{
		strings.Join(labels, " "),
		strings.Join(values, " "),
		strings.Join(deltas, " "),
	}
}

func (d *DashboardLayout) marginSection(frame Frame, width int) []string {
	title := util.ColorBold + util.ColorGreen + "Margin trend" + util.ColorReset
	if len(frame.State.MarginSeries) == 0 {
		return []string{title, util.ColorGray + "awaiting samples" + util.ColorReset}
	}
	spark := util.Sparkline(frame.State.MarginSeries)
	last := frame.State.MarginSeries[len(frame.State.MarginSeries)-1]
	return []string{
		title,
		fmt.Sprintf("%s  %s", spark, util.FormatValue(last)),
	}
}

func (d *DashboardLayout) reasoningSection(frame Frame, width int) []string {
	title := util.ColorBold + util.ColorYellow + "Agent reasoning" + util.ColorReset
	if frame.State.Reasoning == "" {
		return []string{title, util.ColorGray + "(silent)" + util.ColorReset}
	}
	lines := []string{title}
	lines = append(lines, wrapText(frame.State.Reasoning, width)...)
	return lines
}

func (d *DashboardLayout) supplySection(frame Frame, width int) []string {
	lines := []string{util.ColorBold + util.ColorCyan + "Supply" + util.ColorReset}
	for _, item := range frame.State.Inventory {
		qty := fmt.Sprintf("%d", item.Quantity)
		if item.Quantity <= 2 {
			qty = util.ColorRed + qty + util.ColorReset
		}
		lines = append(lines, fmt.Sprintf("  %s %s ×%s @ $%.2f",
			item.Slot, d.sizer.PadString(item.Product, 20, true), qty, item.Price))
	}
	for _, order := range frame.State.Orders {
		lines = append(lines, fmt.Sprintf("  %s %s ×%d (%s)",
			util.ColorGray+"order"+util.ColorReset, order.Product, order.Quantity, order.Status))
	}
	if frame.State.Status != nil {
		lines = append(lines, fmt.Sprintf("  cash $%.2f · day %d · %s",
			frame.State.Status.CashOnHand, frame.State.Status.DaysElapsed, frame.State.Status.Phase))
	}
	return lines
}

func (d *DashboardLayout) footerLine(frame Frame, width int) string {
	help := "q quit · a analysis · p pause · r refresh · m motion · h help"
	return util.ColorGray + util.TruncateToWidth(help, width) + util.ColorReset
}

// wrapText wraps prose at word boundaries to the given width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if util.GetDisplayWidth(current)+1+util.GetDisplayWidth(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

// padANSI right-pads to a display width, ignoring color sequences.
func padANSI(s string, width int) string {
	gap := width - util.GetDisplayWidth(stripANSI(s))
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// stripANSI removes color sequences for width measurement.
func stripANSI(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case inSeq:
			if r == 'm' {
				inSeq = false
			}
		case r == '\033':
			inSeq = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
