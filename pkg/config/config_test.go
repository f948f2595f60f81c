package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aurum-R/Shellfast/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 10, cfg.Head.Lines)
	assert.Equal(t, 10, cfg.Tail.Lines)
	assert.Equal(t, "\t", cfg.Cut.Delimiter)
	assert.Equal(t, "\t", cfg.Paste.Delimiter)
	assert.Equal(t, " ", cfg.Join.Separator)
	assert.True(t, cfg.Diff.Unified)
	assert.Equal(t, 3, cfg.Diff.Context)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Empty(t, cfg.Output.Styles)
}

func TestLoadUsesDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Head.Lines)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHELLFAST_HEAD_LINES", "25")
	t.Setenv("SHELLFAST_OUTPUT_COLOR", "never")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Head.Lines)
	assert.Equal(t, "never", cfg.Output.Color)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10, cfg.Tail.Lines)
}

func TestGenerateTOML(t *testing.T) {
	out, err := config.GenerateTOML(config.Default())
	require.NoError(t, err)

	assert.Contains(t, out, "[head]")
	assert.Contains(t, out, "lines = 10")
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "color = ")
}

func TestDefaultsTOML(t *testing.T) {
	raw := config.DefaultsTOML()
	assert.True(t, strings.Contains(raw, "[diff]"))
	assert.True(t, strings.Contains(raw, "context = 3"))
}
