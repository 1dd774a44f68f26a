package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/seamcarve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RequiresWidth(t *testing.T) {
	cmd := newRootCmd(&options{})
	cmd.SetArgs([]string{"--in", "in.png", "--out", "out.png"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seamcarve.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 100\ndebug = true\nworkers = 2\n"), 0644))

	cfg, err := seamcarve.LoadConfig(path)
	require.NoError(t, err)

	opts := &options{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--width", "50", "--color", "#00ff00"}))
	applyFlags(cmd, opts, cfg)

	assert.Equal(t, 50, cfg.Width)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "#00ff00", cfg.SeamColor)
}

func TestRootCmd_DefaultsWithoutConfig(t *testing.T) {
	opts := &options{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--width", "12", "--perc"}))

	cfg := &seamcarve.Config{}
	applyFlags(cmd, opts, cfg)

	assert.Equal(t, 12, cfg.Width)
	assert.True(t, cfg.Percentage)
	assert.Equal(t, seamcarve.DefaultSeamColor, cfg.SeamColor)
	assert.Greater(t, cfg.Workers, 0)
}
