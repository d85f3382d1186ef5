package feed

import (
	"time"

	"github.com/zenmachine/zentop/internal/core/model"
)

// mergeSnapshot folds a freshly fetched snapshot into the current state.
//
// Metrics policy: a payload carrying a non-empty metrics list replaces the
// held metrics wholesale, unless it declares itself partial, in which case
// metrics merge per id (existing entries updated in place, unknown ids
// appended). An empty metrics list retains whatever is already held.
// Series, timeline and the descriptive blocks are snapshot-complete and
// replace on every merge.
func mergeSnapshot(st model.TelemetryState, snap *model.Snapshot) model.TelemetryState {
	out := st.Clone()

	switch {
	case snap.Partial && len(snap.Metrics) > 0:
		out.Metrics = mergeMetricsByID(out.Metrics, snap.Metrics)
	case len(snap.Metrics) > 0:
		out.Metrics = append([]model.Metric(nil), snap.Metrics...)
	}

	out.MarginSeries = append([]float64(nil), snap.MarginSeries...)
	out.Timeline = append([]model.TelemetryPoint(nil), snap.Timeline...)
	out.Reasoning = snap.Reasoning
	out.Inventory = append([]model.InventoryItem(nil), snap.Inventory...)
	out.Orders = append([]model.Order(nil), snap.Orders...)
	if snap.Status != nil {
		status := *snap.Status
		out.Status = &status
	}

	out.Loading = false
	out.Error = ""
	out.Offline = false
	if ts := snap.GeneratedTime(); !ts.IsZero() {
		out.LastUpdated = ts.Unix()
	} else {
		out.LastUpdated = time.Now().Unix()
	}
	return out
}

func mergeMetricsByID(current, overrides []model.Metric) []model.Metric {
	out := append([]model.Metric(nil), current...)
	for _, override := range overrides {
		replaced := false
		for i := range out {
			if out[i].ID == override.ID {
				out[i] = override
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, override)
		}
	}
	return out
}

// mergeFailure records a failed cycle: last good data survives untouched,
// the error becomes a banner-able message, and loading stays on only when
// nothing has ever been loaded.
func mergeFailure(st model.TelemetryState, err error, online bool) model.TelemetryState {
	out := st.Clone()
	out.Error = err.Error()
	out.Offline = !online
	return out
}
