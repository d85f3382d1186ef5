package top

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zenmachine/zentop/internal/core/model"
	"github.com/zenmachine/zentop/internal/core/prefs"
	"github.com/zenmachine/zentop/internal/core/timeline"
	"github.com/zenmachine/zentop/internal/core/tween"
	"github.com/zenmachine/zentop/internal/data/feed"
	"github.com/zenmachine/zentop/internal/presentation/display"
	"github.com/zenmachine/zentop/internal/presentation/formatter"
	"github.com/zenmachine/zentop/internal/presentation/interaction"
	"github.com/zenmachine/zentop/internal/presentation/layout"
	"github.com/zenmachine/zentop/internal/util"
)

// Approximate pixel size of one terminal cell, used to scale mouse drags
// into the gesture recognizer's pixel-equivalent thresholds.
const (
	cellPxX = 8
	cellPxY = 16
)

// Orchestrator coordinates all components of the live dashboard: the sync
// controller feeding the store, the display clock driving interpolators,
// and the interaction state machines.
type Orchestrator struct {
	config *TopConfig

	// Data components
	controller *feed.Controller
	prober     *feed.Prober

	// UI components
	display   *display.TerminalDisplay
	keyboard  *interaction.Reader
	dashboard *layout.DashboardLayout
	analysis  *layout.AnalysisLayout
	sizer     *layout.Sizer

	// Per-frame state, owned by the event loop
	interaction   model.InteractionState
	interpolators map[string]*tween.Interpolator
	brush         *timeline.Brush
	normalized    []timeline.NormalizedPoint
	focus         *interaction.FocusContainer
	swipe         interaction.SwipeRecognizer
	latest        model.TelemetryState
	statusClearAt time.Time
}

// NewOrchestrator creates an orchestrator for the given config.
func NewOrchestrator(config *TopConfig) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := feed.NewClient(config.BackendURL)
	controller := feed.NewController(client, feed.ControllerConfig{
		Interval:      config.PollInterval,
		EnableBackoff: config.EnableBackoff,
	})

	o := &Orchestrator{
		config:        config,
		controller:    controller,
		display:       display.NewTerminalDisplay(),
		dashboard:     layout.NewDashboardLayout(),
		analysis:      layout.NewAnalysisLayout(),
		sizer:         layout.NewSizer(),
		interpolators: make(map[string]*tween.Interpolator),
		brush:         timeline.NewBrush(0),
		focus:         interaction.NewFocusContainer(layout.AnalysisControls()),
		latest:        model.NewTelemetryState(),
	}
	o.interaction.ReducedMotion = config.ReducedMotion
	o.prober = feed.NewProber(client, feed.DefaultProbeInterval, controller.SetOnline)
	return o, nil
}

// Run starts the main event loop and blocks until exit.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting zentop live dashboard...")

	keyboard, err := interaction.NewReader()
	if err != nil {
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	o.keyboard = keyboard
	defer o.keyboard.Close()

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	// Merge preferences saved from a previous session; the flag is also
	// hot-reloaded while running.
	saved := prefs.Load(o.config.PrefsPath)
	o.interaction.ReducedMotion = o.interaction.ReducedMotion || saved.ReducedMotion

	prefsWatcher, err := prefs.NewWatcher(o.config.PrefsPath)
	if err != nil {
		util.LogWarnf("Preferences hot reload unavailable: %v", err)
	} else {
		defer prefsWatcher.Close()
	}
	var prefsEvents <-chan prefs.Preferences
	if prefsWatcher != nil {
		prefsEvents = prefsWatcher.Events()
	}

	// Telemetry states arrive on the controller's goroutine; a latest-wins
	// channel hands them to the loop, which owns all frame state.
	updates := make(chan model.TelemetryState, 1)
	unsubscribe := o.controller.State().Subscribe(func(st model.TelemetryState) {
		select {
		case updates <- st:
		default:
			select {
			case <-updates:
			default:
			}
			updates <- st
		}
	})
	defer unsubscribe()

	o.controller.Start()
	defer o.controller.Stop()
	o.prober.Start()
	defer o.prober.Stop()

	uiTicker := time.NewTicker(time.Duration(float64(time.Second) / o.config.UIRefreshRate))
	defer uiTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down zentop...")
			return nil

		case st := <-updates:
			o.applyTelemetry(st)

		case now := <-uiTicker.C:
			if !o.interaction.IsPaused {
				o.renderFrame(now)
			}

		case p := <-prefsEvents:
			o.interaction.ReducedMotion = p.ReducedMotion
			o.setStatus("preferences reloaded")

		case keyEvent := <-o.keyboard.Events():
			if o.handleKeyboard(keyEvent) {
				return nil
			}
			o.renderFrame(time.Now())

		case mouseEvent := <-o.keyboard.Mouse():
			o.handleMouse(mouseEvent)
		}
	}
}

// applyTelemetry folds a new store state into frame state: interpolator
// targets and the brush length.
func (o *Orchestrator) applyTelemetry(st model.TelemetryState) {
	now := time.Now()
	animate := !o.interaction.ReducedMotion && !o.latest.Loading

	reported := make(map[string]struct{}, len(st.Metrics))
	for _, m := range st.Metrics {
		reported[m.ID] = struct{}{}
		it, ok := o.interpolators[m.ID]
		if !ok {
			o.interpolators[m.ID] = tween.New(m.Value)
			continue
		}
		it.SetTarget(m.Value, animate, now)
	}
	// Retired ids stop ticking; otherwise churning ids grow the map (and
	// the per-frame work) without bound.
	for id := range o.interpolators {
		if _, ok := reported[id]; !ok {
			delete(o.interpolators, id)
		}
	}

	if len(st.Timeline) != o.brush.Length() {
		o.brush.Resize(len(st.Timeline))
	}
	o.normalized = timeline.Normalize(st.Timeline)
	o.latest = st
}

// renderFrame draws one display tick.
func (o *Orchestrator) renderFrame(now time.Time) {
	width, _ := o.sizer.GetSize()

	displayValues := make(map[string]float64, len(o.interpolators))
	for id, it := range o.interpolators {
		displayValues[id] = it.Tick(now)
	}

	frame := layout.Frame{
		State:         o.latest,
		Interaction:   o.interaction,
		DisplayValues: displayValues,
		Brush:         o.brush,
		Normalized:    o.normalized,
		FocusedCtrl:   o.focus.Focused(),
		Now:           now,
		Width:         width - 2,
	}

	if o.statusClearAt != (time.Time{}) && now.After(o.statusClearAt) {
		o.interaction.StatusMessage = ""
		o.statusClearAt = time.Time{}
	}

	var lines []string
	if o.interaction.AnalysisOpen {
		lines = o.analysis.Render(frame)
	} else {
		lines = o.dashboard.Render(frame)
	}
	o.display.Render(lines)
}

// handleKeyboard processes one key event; true means exit.
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	// The open modal traps input first.
	if o.interaction.AnalysisOpen {
		if handled := o.handleAnalysisKey(event); handled {
			return false
		}
	}

	switch event.Type {
	case interaction.KeyChar:
		switch event.Key {
		case 'q', 'Q', 3: // 'q', 'Q', or Ctrl+C
			return true
		case 'a', 'A':
			if o.interaction.AnalysisOpen {
				o.closeAnalysis()
			} else {
				o.openAnalysis()
			}
		case 'p', 'P':
			o.interaction.IsPaused = !o.interaction.IsPaused
			if o.interaction.IsPaused {
				o.setStatus("display paused")
			} else {
				o.setStatus("display resumed")
			}
		case 'r', 'R':
			o.interaction.ForceRefresh = true
			o.controller.Refresh()
			o.interaction.ForceRefresh = false
			o.setStatus("refreshing...")
		case 'e', 'E':
			o.exportTimeline()
		case 'm', 'M':
			o.toggleReducedMotion()
		case 'h', 'H', '?':
			o.interaction.ShowHelp = !o.interaction.ShowHelp
		}
	case interaction.KeyLeft:
		if o.interaction.SelectedMetric > 0 {
			o.interaction.SelectedMetric--
		}
	case interaction.KeyRight:
		if o.interaction.SelectedMetric < len(o.latest.Metrics)-1 {
			o.interaction.SelectedMetric++
		}
	}
	return false
}

// handleAnalysisKey routes keys while the modal is open. Returns whether
// the event was consumed by the modal.
func (o *Orchestrator) handleAnalysisKey(event interaction.KeyEvent) bool {
	handled, closeRequested := o.focus.HandleKey(event)
	if closeRequested {
		o.closeAnalysis()
		return true
	}
	if handled {
		return true
	}

	switch event.Type {
	case interaction.KeyEnter:
		switch o.focus.Focused() {
		case layout.CtrlClose:
			o.closeAnalysis()
		case layout.CtrlExport:
			o.exportTimeline()
		}
		return true
	case interaction.KeyLeft, interaction.KeyRight:
		o.nudgeBrush(event.Type == interaction.KeyRight)
		return true
	}
	return false
}

// nudgeBrush moves whichever handle holds focus by one point.
func (o *Orchestrator) nudgeBrush(right bool) {
	if !o.brush.Interactive() {
		return
	}
	step := -1
	if right {
		step = 1
	}
	sel := o.brush.Selection()
	switch o.focus.Focused() {
	case layout.CtrlBrushStart:
		o.brush.SetStart(sel.StartIndex + step)
	case layout.CtrlBrushEnd:
		o.brush.SetEnd(sel.EndIndex + step)
	}
}

func (o *Orchestrator) openAnalysis() {
	if o.interaction.AnalysisOpen {
		return
	}
	o.interaction.AnalysisOpen = true
	o.focus.Open(fmt.Sprintf("metric-card-%d", o.interaction.SelectedMetric))
	o.display.EnableMouse()
	o.display.ClearScreen()
}

func (o *Orchestrator) closeAnalysis() {
	if !o.interaction.AnalysisOpen {
		return
	}
	o.interaction.AnalysisOpen = false
	o.swipe.End()
	o.display.DisableMouse()
	restored := o.focus.Close()
	var idx int
	if n, err := fmt.Sscanf(restored, "metric-card-%d", &idx); n == 1 && err == nil {
		o.interaction.SelectedMetric = idx
	}
	o.display.ClearScreen()
}

// handleMouse feeds drag gestures into the swipe recognizer while the
// modal is open.
func (o *Orchestrator) handleMouse(ev interaction.MouseEvent) {
	if !o.interaction.AnalysisOpen {
		return
	}

	switch ev.Type {
	case interaction.MousePress:
		width, height := o.sizer.GetSize()
		left, top, right, bottom := o.analysis.Bounds(width, height)
		if ev.X >= left && ev.X <= right && ev.Y >= top && ev.Y <= bottom {
			o.swipe.Begin(ev.X*cellPxX, ev.Y*cellPxY, ev.Time)
		}
	case interaction.MouseDrag:
		if o.swipe.Move(ev.X*cellPxX, ev.Y*cellPxY, ev.Time) {
			o.closeAnalysis()
			o.renderFrame(time.Now())
		}
	case interaction.MouseRelease:
		o.swipe.End()
	}
}

// exportTimeline writes the current timeline as a CSV file.
func (o *Orchestrator) exportTimeline() {
	if len(o.latest.Timeline) == 0 {
		o.setStatus("nothing to export")
		return
	}

	name := fmt.Sprintf("zen-timeline-%s.csv", time.Now().Format("20060102-150405"))
	path := filepath.Join(o.config.ExportDir, name)

	f, err := os.Create(path)
	if err != nil {
		util.LogErrorf("CSV export failed: %v", err)
		o.setStatus("export failed")
		return
	}
	defer f.Close()

	if err := formatter.WriteTimelineCSV(f, o.latest.Timeline); err != nil {
		util.LogErrorf("CSV export failed: %v", err)
		o.setStatus("export failed")
		return
	}
	util.LogInfof("Exported %d timeline points to %s", len(o.latest.Timeline), path)
	o.setStatus("exported " + name)
}

func (o *Orchestrator) toggleReducedMotion() {
	o.interaction.ReducedMotion = !o.interaction.ReducedMotion
	if err := prefs.Save(o.config.PrefsPath, prefs.Preferences{ReducedMotion: o.interaction.ReducedMotion}); err != nil {
		util.LogWarnf("Failed to persist preferences: %v", err)
	}
	if o.interaction.ReducedMotion {
		o.setStatus("reduced motion on")
	} else {
		o.setStatus("reduced motion off")
	}
}

func (o *Orchestrator) setStatus(msg string) {
	o.interaction.StatusMessage = msg
	o.statusClearAt = time.Now().Add(3 * time.Second)
}
