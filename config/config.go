// Package config loads the optional player configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can be written as "3s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds the non-positional settings. Both peers must agree on the
// codec; everything else is local preference.
type Config struct {
	Codec      string   `yaml:"codec"`
	ReadyDelay Duration `yaml:"ready_delay"`
	LogLevel   string   `yaml:"log_level"`
}

// DefaultPath returns the default config file path: ~/.rps-duel/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".rps-duel", "config.yaml")
	}
	return filepath.Join(home, ".rps-duel", "config.yaml")
}

// Load reads the configuration from the given YAML file path.
// If the file does not exist, it returns the defaults with no error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Codec:      "json",
		ReadyDelay: Duration(3 * time.Second),
		LogLevel:   "warn",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
