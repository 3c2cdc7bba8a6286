package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/extract"
)

// RulesConfig holds the [rules] section.
type RulesConfig struct {
	Prefix        string   `toml:"prefix"`
	CommentMarker string   `toml:"comment_marker"`
	MinTokens     int      `toml:"min_tokens"`
	Exclude       []string `toml:"exclude"`
}

// Config holds the extract-sct configuration.
type Config struct {
	Rules RulesConfig `toml:"rules"`
}

// Default returns the default configuration, matching extract.DefaultRules.
func Default() Config {
	r := extract.DefaultRules()
	return Config{
		Rules: RulesConfig{
			Prefix:        r.Prefix,
			CommentMarker: r.CommentMarker,
			MinTokens:     r.MinTokens,
			Exclude:       r.Exclude,
		},
	}
}

// ExtractRules converts the configuration into filter rules.
func (c *Config) ExtractRules() extract.Rules {
	return extract.Rules{
		Prefix:        c.Rules.Prefix,
		CommentMarker: c.Rules.CommentMarker,
		MinTokens:     c.Rules.MinTokens,
		Exclude:       c.Rules.Exclude,
	}
}

// Path returns the config file location. EXTRACT_SCT_CONFIG overrides
// the default ~/.config/extract-sct/config.toml.
func Path() (string, error) {
	if p := os.Getenv("EXTRACT_SCT_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "extract-sct", "config.toml"), nil
}

// Load reads the config file.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Default(), err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Rules.Prefix == "" {
		return fmt.Errorf("rules.prefix must not be empty")
	}
	if cfg.Rules.CommentMarker == "" {
		return fmt.Errorf("rules.comment_marker must not be empty")
	}
	if cfg.Rules.MinTokens < 1 {
		return fmt.Errorf("rules.min_tokens must be at least 1, got %d", cfg.Rules.MinTokens)
	}
	for _, ex := range cfg.Rules.Exclude {
		if ex == "" {
			return fmt.Errorf("rules.exclude entries must not be empty")
		}
	}
	return nil
}
