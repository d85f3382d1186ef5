// Package prefs persists the user's display preferences. Only one flag
// survives across sessions: reduced motion. The file is watched so an
// edit while the dashboard runs takes effect on the next frame.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/zenmachine/zentop/internal/util"
)

// DefaultPath is where preferences live unless overridden.
const DefaultPath = "~/.zentop/prefs.json"

// Preferences holds the persisted user preference flags.
type Preferences struct {
	ReducedMotion bool `json:"reducedMotion"`
}

// Load reads preferences from path. A missing or malformed file yields
// the zero value; preferences are never load-bearing enough to fail on.
func Load(path string) Preferences {
	var p Preferences
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := sonic.Unmarshal(data, &p); err != nil {
		util.LogWarnf("Ignoring malformed preferences file %s: %v", path, err)
		return Preferences{}
	}
	return p
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, p Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := sonic.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ExpandPath resolves a leading ~/ against the user's home directory.
func ExpandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
