package feed

import (
	"github.com/zenmachine/zentop/internal/core/model"
)

// Reference returns the hardcoded reference payload shown when the backend
// is unreachable and nothing has ever been loaded. The display must always
// have something to render.
func Reference() *model.Snapshot {
	return &model.Snapshot{
		Metrics: []model.Metric{
			{ID: "margin", Label: "Net Margin", Value: 18.4, Delta: 0.6, Unit: "%"},
			{ID: "revenue", Label: "Daily Revenue", Value: 212.50, Delta: -4.25, Unit: "$"},
			{ID: "units", Label: "Units Sold", Value: 57, Delta: 3, Unit: ""},
			{ID: "stockouts", Label: "Stockouts", Value: 1, Delta: 0, Unit: ""},
		},
		MarginSeries: []float64{16.1, 16.8, 17.2, 17.0, 17.9, 18.1, 18.4},
		Timeline: []model.TelemetryPoint{
			{Timestamp: "2024-01-01T00:00:00Z", Margin: 16.1, AdversaryPulse: 0},
			{Timestamp: "2024-01-01T04:00:00Z", Margin: 16.8, AdversaryPulse: 0.2},
			{Timestamp: "2024-01-01T08:00:00Z", Margin: 17.2, AdversaryPulse: 0.9},
			{Timestamp: "2024-01-01T12:00:00Z", Margin: 17.0, AdversaryPulse: 1.4},
			{Timestamp: "2024-01-01T16:00:00Z", Margin: 17.9, AdversaryPulse: 0.5},
			{Timestamp: "2024-01-01T20:00:00Z", Margin: 18.1, AdversaryPulse: 0.1},
			{Timestamp: "2024-01-02T00:00:00Z", Margin: 18.4, AdversaryPulse: 0},
		},
		Reasoning:   "Reference data: backend unreachable, showing the bundled sample snapshot.",
		GeneratedAt: "2024-01-02T00:00:00Z",
		Inventory: []model.InventoryItem{
			{Slot: "A1", Product: "Sparkling Water", Quantity: 12, Price: 2.50},
			{Slot: "A2", Product: "Green Tea", Quantity: 8, Price: 3.00},
			{Slot: "B1", Product: "Trail Mix", Quantity: 4, Price: 4.25},
		},
		Orders: []model.Order{
			{ID: "ord-001", Product: "Trail Mix", Quantity: 24, UnitCost: 1.95, Status: "in transit", EtaInDays: 2},
		},
		Status: &model.MachineStatus{Phase: "reference", CashOnHand: 482.10, DaysElapsed: 0},
	}
}
