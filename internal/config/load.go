package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// FindConfigFile returns the default config file path if it exists.
func FindConfigFile() (string, error) {
	if _, err := os.Stat(DefaultFileName); err != nil {
		return "", fmt.Errorf("config file %s not found", DefaultFileName)
	}
	return DefaultFileName, nil
}

// ApplyDefaults fills the fields the user left unset.
func (c *Config) ApplyDefaults() {
	if c.Region == "" {
		c.Region = "us-west-2"
	}
	if c.AvailabilityZone == "" {
		// Fall back to the first zone of the region.
		c.AvailabilityZone = c.Region + "a"
	}
	if c.InstanceType == "" {
		c.InstanceType = "t2.micro"
	}
	if c.InstanceCount == 0 {
		c.InstanceCount = 1
	}
	if c.Platform == "" {
		c.Platform = "Linux/UNIX"
	}
	if c.Tenancy == "" {
		c.Tenancy = "default"
	}
	if c.EndDateType == "" {
		c.EndDateType = "unlimited"
	}
	if c.Retry.Preset == "" {
		c.Retry.Preset = "fast"
	}
	if c.Simulate && c.SimFailures == 0 {
		c.SimFailures = 2
	}
}
