package model

import (
	"time"
)

// Metric is one labeled reading delivered by the backend.
type Metric struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Delta float64 `json:"delta"`
	Unit  string  `json:"unit"`
}

// TelemetryPoint is one sample on the margin/adversary timeline.
type TelemetryPoint struct {
	Timestamp      string  `json:"timestamp"`
	Margin         float64 `json:"margin"`
	AdversaryPulse float64 `json:"adversaryPulse"`
}

// Time parses the point's ISO-8601 timestamp. Returns the zero time on
// malformed input rather than an error; callers only use it for display.
func (p TelemetryPoint) Time() time.Time {
	ts, err := time.Parse(time.RFC3339, p.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// InventoryItem describes one vending slot as reported by the store agent.
type InventoryItem struct {
	Slot     string  `json:"slot"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a pending or recently settled replenishment order.
type Order struct {
	ID        string  `json:"id"`
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unitCost"`
	Status    string  `json:"status"`
	PlacedAt  string  `json:"placedAt,omitempty"`
	EtaInDays float64 `json:"etaInDays,omitempty"`
}

// MachineStatus is the coarse health block of the snapshot.
type MachineStatus struct {
	Phase       string  `json:"phase"`
	CashOnHand  float64 `json:"cashOnHand"`
	DaysElapsed int     `json:"daysElapsed"`
}

// Snapshot is the atomic telemetry unit returned by GET /telemetry.
//
// Timeline is ordered by timestamp (monotonically non-decreasing); the
// backend guarantees it and the merge step preserves it. MarginSeries is
// most-recent-last with no enforced length.
type Snapshot struct {
	Metrics      []Metric         `json:"metrics"`
	MarginSeries []float64        `json:"marginSeries"`
	Timeline     []TelemetryPoint `json:"timeline"`
	Reasoning    string           `json:"reasoning"`
	GeneratedAt  string           `json:"generatedAt"`
	Inventory    []InventoryItem  `json:"inventory,omitempty"`
	Orders       []Order          `json:"orders,omitempty"`
	Status       *MachineStatus   `json:"status,omitempty"`

	// Partial marks the payload as a per-metric override rather than a
	// wholesale replacement. Absent from the reference backend, honored
	// when a relay sets it.
	Partial bool `json:"partial,omitempty"`
}

// GeneratedTime parses GeneratedAt, falling back to the zero time.
func (s Snapshot) GeneratedTime() time.Time {
	ts, err := time.Parse(time.RFC3339, s.GeneratedAt)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// TelemetryState is the last-known snapshot plus transport status. It is the
// value held by the observable store; every field is value-typed or freshly
// copied on write so subscribers can never mutate shared data in place.
type TelemetryState struct {
	Metrics      []Metric
	MarginSeries []float64
	Timeline     []TelemetryPoint
	Reasoning    string
	Inventory    []InventoryItem
	Orders       []Order
	Status       *MachineStatus

	Loading     bool   // true until the first successful merge
	Offline     bool   // connectivity prober reports no backend
	Error       string // last fetch failure, empty after a success
	LastUpdated int64  // unix seconds of the last successful merge
}

// NewTelemetryState returns the all-empty placeholder state the controller
// installs at start.
func NewTelemetryState() TelemetryState {
	return TelemetryState{Loading: true}
}

// Clone deep-copies the state so the store can hand out snapshots that are
// safe against consumer mutation.
func (st TelemetryState) Clone() TelemetryState {
	out := st
	out.Metrics = append([]Metric(nil), st.Metrics...)
	out.MarginSeries = append([]float64(nil), st.MarginSeries...)
	out.Timeline = append([]TelemetryPoint(nil), st.Timeline...)
	out.Inventory = append([]InventoryItem(nil), st.Inventory...)
	out.Orders = append([]Order(nil), st.Orders...)
	if st.Status != nil {
		status := *st.Status
		out.Status = &status
	}
	return out
}

// MetricByID returns the metric with the given id, if present.
func (st TelemetryState) MetricByID(id string) (Metric, bool) {
	for _, m := range st.Metrics {
		if m.ID == id {
			return m, true
		}
	}
	return Metric{}, false
}
