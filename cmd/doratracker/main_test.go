package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/doratracker/internal/config"
	"github.com/jask/doratracker/internal/tui"
)

// sandbox points config and log paths into a temp dir and returns the log path.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("DORATRACKER_CONFIG", filepath.Join(dir, "config.toml"))
	logPath := filepath.Join(dir, "state", "doratracker.log")
	t.Setenv("DORATRACKER_LOG_PATH", logPath)
	return logPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHelp(t *testing.T) {
	sandbox(t)
	out, err := execute(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "render")
	require.Contains(t, out, "clients")
}

func TestRenderSelectedClient(t *testing.T) {
	sandbox(t)
	out, err := execute(t, "render", "--client", "3", "--width", "120")
	require.NoError(t, err)
	require.NotContains(t, out, "\x1b[")
	require.Contains(t, out, "XYZ Corporation")
	require.Contains(t, out, "DevOps Transformation")
	require.Contains(t, out, "90% of team members")
	require.Contains(t, out, "1 Overview")
}

func TestRenderWithoutSelection(t *testing.T) {
	sandbox(t)
	out, err := execute(t, "render")
	require.NoError(t, err)
	require.Contains(t, out, "Select an engagement to view details")
	require.NotContains(t, out, "1 Overview")
}

func TestRenderRejectsBadInput(t *testing.T) {
	sandbox(t)
	_, err := execute(t, "render", "--tab", "history")
	require.ErrorIs(t, err, tui.ErrUnknownTab)

	_, err = execute(t, "render", "--client", "9")
	require.ErrorContains(t, err, "unknown client 9")
}

func TestRenderUsesConfigDefaults(t *testing.T) {
	sandbox(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	body := "[ui]\ninitial_client = 2\ndefault_tab = \"dora\"\nwidth = 110\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := execute(t, "--config", path, "render")
	require.NoError(t, err)
	require.Contains(t, out, "Veterans Affairs")
	require.Contains(t, out, "DORA Metrics Detailed View")

	// flags win over config
	out, err = execute(t, "--config", path, "render", "--tab", "overview")
	require.NoError(t, err)
	require.Contains(t, out, "Feedback not yet available")
}

func TestRenderWritesSessionLog(t *testing.T) {
	logPath := sandbox(t)
	_, err := execute(t, "--verbose", "render", "--client", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"frame rendered"`)
	require.Contains(t, string(data), `"session"`)
}

func TestClientsListing(t *testing.T) {
	sandbox(t)
	out, err := execute(t, "clients")
	require.NoError(t, err)
	for _, name := range []string{"Department of Energy", "Veterans Affairs", "XYZ Corporation"} {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "Bi-weekly")

	out, err = execute(t, "clients", "--search", "federal")
	require.NoError(t, err)
	require.Contains(t, out, "Veterans Affairs")
	require.NotContains(t, out, "XYZ Corporation")

	out, err = execute(t, "clients", "-s", "quantum")
	require.NoError(t, err)
	require.Equal(t, "No engagements match.\n", out)
}

func TestConfigInit(t *testing.T) {
	sandbox(t)
	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Wrote "))

	_, err = execute(t, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "overview", cfg.UI.DefaultTab)
	require.Equal(t, 100, cfg.UI.Width)

	out, err = execute(t, "config", "path")
	require.NoError(t, err)
	require.Equal(t, config.Path()+"\n", out)
}
