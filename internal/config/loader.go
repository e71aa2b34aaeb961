package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a config was loaded from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadRunaway loads Runaway configuration.
// Search order: customPath -> ~/.arcade/configs/runaway.yaml -> ./configs/runaway.yaml -> embedded default.
// Files are decoded on top of the defaults, so omitted keys keep their default value.
// The second return value names the file (or SourceEmbedded/SourceBuiltin) that was used.
func LoadRunaway(customPath string) (RunawayConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunawayConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeRunaway(data)
		if err != nil {
			return RunawayConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath("runaway.yaml"), filepath.Join("configs", "runaway.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeRunaway(data); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := decodeRunaway(defaultRunawayYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultRunawayConfig(), SourceBuiltin, nil
}

// decodeRunaway unmarshals YAML over the built-in defaults.
func decodeRunaway(data []byte) (RunawayConfig, error) {
	cfg := DefaultRunawayConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunawayConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
