package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.False(t, p.ReducedMotion)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	require.NoError(t, Save(path, Preferences{ReducedMotion: true}))

	p := Load(path)
	assert.True(t, p.ReducedMotion)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	assert.False(t, Load(path).ReducedMotion)
}

func TestWatcherDeliversReloadedPreferences(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")
	require.NoError(t, Save(path, Preferences{}))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, Save(path, Preferences{ReducedMotion: true}))

	select {
	case p := <-w.Events():
		assert.True(t, p.ReducedMotion)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a preferences reload event")
	}
}
