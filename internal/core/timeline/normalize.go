package timeline

import (
	"github.com/zenmachine/zentop/internal/core/model"
)

// NormalizedPoint is a telemetry point with its pulse scaled into [0,1]
// against the strongest pulse in the timeline.
type NormalizedPoint struct {
	Point     model.TelemetryPoint
	Intensity float64
}

// Normalize scales every point's adversary pulse by the timeline maximum.
// The divisor is floored at 1 so an all-zero timeline normalizes to zeros
// instead of dividing by zero.
func Normalize(points []model.TelemetryPoint) []NormalizedPoint {
	maxPulse := 1.0
	for _, p := range points {
		if p.AdversaryPulse > maxPulse {
			maxPulse = p.AdversaryPulse
		}
	}

	out := make([]NormalizedPoint, len(points))
	for i, p := range points {
		out[i] = NormalizedPoint{Point: p, Intensity: p.AdversaryPulse / maxPulse}
	}
	return out
}
