package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteYAML marshals the configuration and writes it to the given path.
func WriteYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
