package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ARCHFOLIO_*). The bare ACCESS_CODE and
// ACCESS_CODE_HASH variables are honored too, matching the names the
// original deployment used.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: ARCHFOLIO_PORT -> port, etc.
	if err := k.Load(env.Provider("ARCHFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ARCHFOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Legacy credential variables take effect only when nothing more
	// specific set them.
	if cfg.AccessCodeHash == "" {
		cfg.AccessCodeHash = os.Getenv("ACCESS_CODE_HASH")
	}
	if cfg.AccessCode == "" {
		cfg.AccessCode = os.Getenv("ACCESS_CODE")
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values. A missing
// access code is deliberately not an error here: the gate fails closed at
// verification time and serve logs an operator warning instead.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.AssetsDir == "" {
		return fmt.Errorf("assets_dir is required")
	}
	return nil
}
