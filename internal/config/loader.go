package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names an environment variable that points at a config file.
const EnvConfigPath = "FLAPPY_CONFIG"

// Load loads the game configuration.
// Search order: customPath -> $FLAPPY_CONFIG -> ~/.flappy/config.yaml ->
// ./configs/flappy.yaml -> embedded default.
// Files are applied on top of the defaults, so a file only needs the keys it
// changes. An explicitly requested file that cannot be read is an error;
// discovered files that fail to parse are skipped.
func Load(customPath string) (FlappyConfig, error) {
	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}

	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "flappy.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	return Default(), nil
}

// Default returns the embedded default configuration.
func Default() FlappyConfig {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

// loadFile reads and parses a single config file.
func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
