package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DORATRACKER_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "overview", cfg.UI.DefaultTab)
	require.Equal(t, 0, cfg.UI.InitialClient)
	require.True(t, cfg.UI.Mouse)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.Equal(t, 100, cfg.UI.Width)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, ".local", "state", "doratracker", "doratracker.log"), cfg.Log.Path)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[ui]
default_tab = "dora"
initial_client = 3
mouse = false

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("DORATRACKER_CONFIG", path)
	t.Setenv("DORATRACKER_UI_WIDTH", "140")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dora", cfg.UI.DefaultTab)
	require.Equal(t, 3, cfg.UI.InitialClient)
	require.False(t, cfg.UI.Mouse)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 140, cfg.UI.Width)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("HOME", dir)
	t.Setenv("DORATRACKER_CONFIG", path)

	cfg := Defaults()
	cfg.UI.DefaultTab = "feedback"
	cfg.UI.InitialClient = 2
	cfg.UI.MarkdownStyle = "light"
	require.NoError(t, Save(cfg))
	require.FileExists(t, path)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
