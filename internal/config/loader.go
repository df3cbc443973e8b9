package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "tetris.yaml"

// Source describes where a configuration was loaded from.
type Source string

const (
	SourceEmbedded  Source = "embedded"
	SourceHardcoded Source = "hardcoded"
)

// Load loads the Tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file may set only the keys
// it wants to change. An explicit customPath that cannot be read or parsed
// is an error; unreadable files further down the search order are skipped.
func Load(customPath string) (TetrisConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, Source(customPath), nil
	}

	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, Source(path), nil
		}
	}

	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), SourceHardcoded, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads one YAML file over the defaults.
func loadFile(path string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
