package model

// InteractionState represents the current UI interaction state
type InteractionState struct {
	IsPaused       bool
	ShowHelp       bool
	ForceRefresh   bool
	ReducedMotion  bool
	StatusMessage  string // transient message shown in the footer
	AnalysisOpen   bool   // modal analysis overlay visibility
	SelectedMetric int    // index of the highlighted metric card
}

// DisplayMode tracks which top-level screen the renderer is drawing.
type DisplayMode int

const (
	ModeDashboard DisplayMode = iota
	ModeAnalysis
	ModeHelp
)
