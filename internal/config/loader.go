package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets. The result is validated.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "snake.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next source in the search order is used.
func tryLoad(path string) (SnakeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, false
	}
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
