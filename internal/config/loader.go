package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location checked by Load.
const LocalPath = "configs/sortviz.yaml"

// Load loads the visualizer configuration.
// Search order: customPath -> ~/.sortviz/config.yaml -> ./configs/sortviz.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file may set only some keys.
// A missing or unreadable custom path is an error; the implicit locations are
// skipped silently when absent or malformed.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultConfig.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sortviz", filename)
}
