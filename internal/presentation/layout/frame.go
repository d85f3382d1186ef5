package layout

import (
	"time"

	"github.com/zenmachine/zentop/internal/core/model"
	"github.com/zenmachine/zentop/internal/core/timeline"
)

// Frame is everything a layout needs to draw one display tick.
type Frame struct {
	State       model.TelemetryState
	Interaction model.InteractionState

	// DisplayValues are the interpolator outputs keyed by metric id;
	// metrics without an entry draw their raw value.
	DisplayValues map[string]float64

	// Analysis overlay state, meaningful while the modal is open.
	Brush       *timeline.Brush
	Normalized  []timeline.NormalizedPoint
	FocusedCtrl string

	Now   time.Time
	Width int
}

// DisplayValue returns the value to draw for a metric.
func (f Frame) DisplayValue(m model.Metric) float64 {
	if v, ok := f.DisplayValues[m.ID]; ok {
		return v
	}
	return m.Value
}
