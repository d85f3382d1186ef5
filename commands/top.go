package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/zenmachine/zentop/internal/application/top"
	"github.com/zenmachine/zentop/internal/data/feed"
)

var (
	// Polling related flags
	topPollInterval time.Duration
	topNoBackoff    bool

	// Display related flags
	topRefreshPerSecond float64
	topReducedMotion    bool

	// Export flags
	topExportDir string
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Monitor zen machine telemetry in real-time",
	Long: `Similar to Linux top command, displays live machine telemetry:
metric cards with animated values, a margin sparkline, reasoning trace,
and supply levels.

Keys:
  q         quit
  a         open/close the timeline analysis overlay
  p         pause/resume display updates
  r         refresh now
  e         export the timeline as CSV
  m         toggle reduced motion (persisted)
  tab       cycle overlay controls
  left/right  select metric, or move a focused brush handle`,
	RunE: runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)

	// Polling flags
	topCmd.Flags().DurationVar(&topPollInterval, "interval", 15*time.Second,
		"Interval between telemetry polls (minimum 1s)")
	topCmd.Flags().BoolVar(&topNoBackoff, "no-backoff", false,
		"Keep the fixed poll interval after failures instead of backing off")

	// Display flags
	topCmd.Flags().Float64Var(&topRefreshPerSecond, "refresh-per-second", 10,
		"Display refresh rate (0.1-60 Hz)")
	topCmd.Flags().BoolVar(&topReducedMotion, "reduced-motion", false,
		"Disable value animations")

	// Export flags
	topCmd.Flags().StringVar(&topExportDir, "export-dir", ".",
		"Directory for exported CSV files")
}

func runTop(cmd *cobra.Command, args []string) error {
	initLogging()

	config := &top.TopConfig{
		BackendURL:    feed.ResolveBaseURL(backendURL),
		PollInterval:  topPollInterval,
		EnableBackoff: !topNoBackoff,
		UIRefreshRate: topRefreshPerSecond,
		ReducedMotion: topReducedMotion,
		ExportDir:     expandPath(topExportDir),
	}

	orchestrator, err := top.NewOrchestrator(config)
	if err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()

	return orchestrator.Run(ctx)
}
