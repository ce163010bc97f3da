// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable holding the config file path.
const EnvConfigFile = "SSLCHECK_CONFIG_FILE"

// Built-in defaults.
const (
	DefaultPort          = "443"
	DefaultOutput        = "plain"
	DefaultTLSMinVersion = "1.2"
)

// Config holds the settings a config file may provide.
type Config struct {
	Defaults struct {
		// Port used when --port is not given.
		Port string `json:"port" yaml:"port"`
		// Output is the display mode used when no output flag is given:
		// plain, short, json or table.
		Output string `json:"output" yaml:"output"`
	} `json:"defaults" yaml:"defaults"`

	TLS struct {
		// MinVersion is the lowest TLS version offered, "1.0" to "1.3".
		MinVersion string `json:"minVersion" yaml:"minVersion"`
	} `json:"tls" yaml:"tls"`
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func unmarshal(data []byte, cfg *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path, or at $SSLCHECK_CONFIG_FILE when path is empty.
// With neither set, it returns [Default]. Empty fields in the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := unmarshal(data, cfg, detectFormat(path)); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Defaults.Port == "" {
		c.Defaults.Port = DefaultPort
	}
	if c.Defaults.Output == "" {
		c.Defaults.Output = DefaultOutput
	}
	if c.TLS.MinVersion == "" {
		c.TLS.MinVersion = DefaultTLSMinVersion
	}
}
