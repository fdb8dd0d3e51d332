package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadSnake.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadSnake loads Snake configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Fields missing from a file keep their default values. An explicit customPath
// must exist and parse; the implicit locations are skipped when unreadable.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	if customPath != "" {
		cfg, err := readSnake(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if cfg, err := readSnake(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	localPath := filepath.Join("configs", "snake.yaml")
	if cfg, err := readSnake(localPath); err == nil {
		return cfg, localPath, nil
	}

	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// readSnake reads and validates a Snake config file layered over the defaults.
func readSnake(path string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders a Snake config as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
