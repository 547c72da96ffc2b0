// File: control/file.go
// Package control
// Author: momentics <momentics@gmail.com>
//
// YAML-backed loading for the dynamic config store.

package control

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML mapping from path. Nested mappings are preserved as
// map[string]any values under their top-level key.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := make(map[string]any)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadInto merges the YAML mapping at path into the store, firing its reload
// listeners once.
func LoadInto(path string, store *ConfigStore) error {
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	store.SetConfig(cfg)
	return nil
}
