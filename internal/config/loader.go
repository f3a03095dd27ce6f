package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load returns the game configuration. An explicit path must exist and
// parse. Otherwise the first readable, valid file among
// ~/.coinquest/config.yaml and ./configs/config.yaml wins, and the embedded
// default is the last resort. Keys missing from a file keep their defaults.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}
	for _, path := range searchPaths("config.yaml") {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}
	if cfg, err := Parse(defaultGameYAML); err == nil {
		return cfg, nil
	}
	return DefaultGameConfig(), nil
}

func loadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations, user directory first.
func searchPaths(name string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".coinquest", name))
	}
	return append(paths, filepath.Join("configs", name))
}
