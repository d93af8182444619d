package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Missing file at the default location is fine.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Generate.CardCount)
	assert.Equal(t, 10, cfg.Test.Size)
	assert.Empty(t, cfg.Provider)
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "generate:\n  card_count: 40\nprovider: mock\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Generate.CardCount)
	assert.Equal(t, "mock", cfg.Provider)
	assert.Equal(t, 4096, cfg.Generate.MaxTokens, "untouched keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: openai\n"), 0o644))
	t.Setenv("STUDYLO_PROVIDER", "anthropic")
	t.Setenv("STUDYLO_GENERATE__CARD_COUNT", "15")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 15, cfg.Generate.CardCount)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STUDYLO_PROVIDER", "anthropic")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("provider", "", "")
	require.NoError(t, flags.Parse([]string{"--provider=mock"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.Provider)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STUDYLO_PROVIDER", "carrier-pigeon")

	_, err := Load("", nil)
	require.Error(t, err)
}
