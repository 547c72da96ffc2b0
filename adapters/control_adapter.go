// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/hioload-atom/api"
	"github.com/momentics/hioload-atom/control"
)

// Ensure compile-time interface compliance.
var _ api.Control = (*ControlAdapter)(nil)

// ControlAdapter aggregates the dynamic config store, metrics registry and
// debug probes behind the api.Control contract.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

// NewControlAdapter wires a fresh control plane with runtime and platform
// probes preregistered.
func NewControlAdapter() *ControlAdapter {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterRuntimeProbes(adapter.debug)
	control.RegisterPlatformProbes(adapter.debug)
	return adapter
}

// GetConfig returns a snapshot of the dynamic configuration.
func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

// SetConfig merges cfg into the store and fires reload listeners.
func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	if cfg == nil {
		return api.ErrInvalidArgument
	}
	c.config.SetConfig(cfg)
	return nil
}

// Stats combines metrics with debug probe output, the latter prefixed to
// keep the namespaces apart.
func (c *ControlAdapter) Stats() map[string]any {
	combined := c.metrics.GetSnapshot()
	for k, v := range c.debug.DumpState() {
		combined["debug."+k] = v
	}
	return combined
}

// OnReload registers fn with both the config store and the global hooks.
func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}

// SetMetric sets a metric value.
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

// IncMetric adds delta to an int64 counter metric.
func (c *ControlAdapter) IncMetric(key string, delta int64) {
	c.metrics.Inc(key, delta)
}

// RegisterDebugProbe registers a named probe.
func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// RegisterInspectable wires an Inspectable component in as a debug probe.
func (c *ControlAdapter) RegisterInspectable(comp api.Inspectable) {
	c.debug.RegisterInspectable(comp)
}

// ConfigStore exposes the underlying store for file loading and watching.
func (c *ControlAdapter) ConfigStore() *control.ConfigStore {
	return c.config
}
