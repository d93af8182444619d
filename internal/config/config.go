package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix is the prefix for environment overrides. Double
// underscores delimit nesting: STUDYLO_GENERATE__CARD_COUNT=30 sets
// generate.card_count.
const envPrefix = "STUDYLO_"

// Config is the application configuration. Values are layered:
// defaults, then the YAML config file, then STUDYLO_* environment
// variables, then command-line flags.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `koanf:"db_path"`

	// Provider selects the model backend. Empty means auto-discover
	// from available API keys.
	Provider string `koanf:"provider" validate:"omitempty,oneof=anthropic openai gemini mock"`

	Generate GenerateConfig `koanf:"generate"`
	Test     TestConfig     `koanf:"test"`
}

// GenerateConfig controls deck generation.
type GenerateConfig struct {
	CardCount   int     `koanf:"card_count" validate:"min=1,max=200"`
	MaxTokens   int     `koanf:"max_tokens" validate:"min=256"`
	Temperature float64 `koanf:"temperature" validate:"min=0,max=2"`
}

// TestConfig controls practice tests.
type TestConfig struct {
	Size int `koanf:"size" validate:"min=1,max=100"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			CardCount:   20,
			MaxTokens:   4096,
			Temperature: 0.7,
		},
		Test: TestConfig{
			Size: 10,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds the configuration from path (optional; "" uses the
// default location, a missing file is fine), the environment, and the
// given flag set (may be nil).
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		path = defaultPath()
	}
	if path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		if err != nil && (explicit || !os.IsNotExist(err)) {
			return cfg, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return cfg, fmt.Errorf("load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// defaultPath resolves the default config file location:
// $XDG_CONFIG_HOME/studylo/config.yaml or ~/.config/studylo/config.yaml.
func defaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "studylo", "config.yaml")
}
