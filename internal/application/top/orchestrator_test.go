package top

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmachine/zentop/internal/core/model"
)

func stateWithMetrics(ids ...string) model.TelemetryState {
	st := model.NewTelemetryState()
	st.Loading = false
	for i, id := range ids {
		st.Metrics = append(st.Metrics, model.Metric{ID: id, Label: id, Value: float64(i + 1)})
	}
	return st
}

func TestApplyTelemetryPrunesRetiredMetrics(t *testing.T) {
	o, err := NewOrchestrator(&TopConfig{BackendURL: "http://unused.invalid"})
	require.NoError(t, err)

	o.applyTelemetry(stateWithMetrics("margin", "adversary_pulse"))
	assert.Len(t, o.interpolators, 2)

	// A metric that stops being reported must not keep ticking forever.
	o.applyTelemetry(stateWithMetrics("margin"))
	assert.Len(t, o.interpolators, 1)
	assert.Contains(t, o.interpolators, "margin")

	// A returning id gets a fresh interpolator seeded at its new value.
	o.applyTelemetry(stateWithMetrics("margin", "adversary_pulse"))
	assert.Len(t, o.interpolators, 2)
}
