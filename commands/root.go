package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zenmachine/zentop/internal/data/feed"
	"github.com/zenmachine/zentop/internal/presentation/formatter"
	"github.com/zenmachine/zentop/internal/util"
)

var (
	// Logging related
	debug bool

	// Backend
	backendURL string

	// Output related
	outputFormat string

	rootCmd = &cobra.Command{
		Use:   "zentop [flags]",
		Short: "Zen machine telemetry monitor",
		Long: `zentop is a command-line monitor for a zen vending machine backend.

Without a subcommand it fetches one telemetry snapshot and prints it.
The top subcommand opens a live full-screen dashboard.

Examples:
  zentop                                       # One snapshot, table output
  zentop --output json                         # One snapshot as JSON
  zentop --backend-url http://machine:8000     # Explicit backend
  zentop top                                   # Live dashboard
  zentop top --poll-interval 5s                # Poll the backend every 5s`,
		RunE: runSnapshot,
	}
)

const defaultLogFile = "~/.zentop/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend-url", "",
		"Backend base URL (defaults to $ZEN_TELEMETRY_URL, then "+feed.DefaultBackendURL+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	initLogging()

	client := feed.NewClient(feed.ResolveBaseURL(backendURL))

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	snap, err := client.FetchSnapshot(ctx)
	if err != nil {
		// Stay usable without a backend: fall back to the built-in
		// reference snapshot so the output pipeline can be exercised.
		util.LogWarnf("Backend unreachable (%v), using reference snapshot", err)
		snap = feed.Reference()
	}

	return formatter.New(outputFormat).Format(snap)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func initLogging() {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
