package top

import (
	"fmt"
	"time"

	"github.com/zenmachine/zentop/internal/core/prefs"
)

// TopConfig contains configuration for the live dashboard
type TopConfig struct {
	// Backend
	BackendURL    string
	PollInterval  time.Duration
	EnableBackoff bool

	// Display settings
	UIRefreshRate float64 // frames per second
	ReducedMotion bool

	// Export settings
	ExportDir string

	// Preferences file location
	PrefsPath string
}

// Validate checks the configuration and fills defaults.
func (c *TopConfig) Validate() error {
	if c.PollInterval == 0 {
		c.PollInterval = 15 * time.Second
	}
	if c.PollInterval < time.Second {
		return fmt.Errorf("poll interval %s is below the 1s minimum", c.PollInterval)
	}
	if c.UIRefreshRate == 0 {
		c.UIRefreshRate = 10
	}
	if c.UIRefreshRate < 0.1 || c.UIRefreshRate > 60 {
		return fmt.Errorf("refresh rate %.1f must be between 0.1 and 60", c.UIRefreshRate)
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	if c.PrefsPath == "" {
		c.PrefsPath = prefs.ExpandPath(prefs.DefaultPath)
	}
	return nil
}
