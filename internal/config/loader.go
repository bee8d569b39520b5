package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tinyhero.yaml
var defaultYAML []byte

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.tinyhero/config.yaml -> ./configs/tinyhero.yaml -> embedded default
//
// Only an explicit customPath can fail; the other locations are skipped when
// unreadable or invalid. Values missing from a file keep their defaults.
func Load(customPath string) (Config, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if p := userConfigPath(); p != "" {
		if cfg, err := loadFile(p); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "tinyhero.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultYAML
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tinyhero", "config.yaml")
}
