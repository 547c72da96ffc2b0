// File: facade/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Immutable hub configuration: the defaults, and loading from a YAML file
// with structural validation.

package facade

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-atom/control"
)

// Config holds hub parameters fixed for the lifetime of a Hub.
// The dynamic, hot-reloadable key/value config lives in the control plane;
// Config only shapes the services the hub wires together at construction.
type Config struct {
	// Name identifies the hub in logs and metric keys.
	Name string `yaml:"name" validate:"required"`

	// JournalCapacity bounds the number of retained transition records.
	JournalCapacity int `yaml:"journal_capacity" validate:"gte=0"`

	// EnableJournal records every committed transition of hub atoms.
	EnableJournal bool `yaml:"enable_journal"`

	// EnableMetrics maintains hub counters in the metrics registry.
	EnableMetrics bool `yaml:"enable_metrics"`

	// EnableDebug registers debug probes for hub atoms and the journal.
	EnableDebug bool `yaml:"enable_debug"`

	// ConfigFile optionally seeds the dynamic config from a YAML file.
	ConfigFile string `yaml:"config_file"`

	// WatchConfig hot-reloads ConfigFile on edits while the hub runs.
	WatchConfig bool `yaml:"watch_config"`
}

// DefaultConfig returns the standard hub configuration: every service
// enabled, journal at its default capacity, no config file.
func DefaultConfig() *Config {
	return &Config{
		Name:            "hub",
		JournalCapacity: control.DefaultJournalCapacity,
		EnableJournal:   true,
		EnableMetrics:   true,
		EnableDebug:     true,
	}
}

// LoadConfig reads a hub configuration from a YAML file, filling omitted
// fields from DefaultConfig and validating the result.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hub config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse hub config %s: %w", path, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate hub config %s: %w", path, err)
	}
	return cfg, nil
}
