// Package api
// Author: momentics
//
// Live debug and introspection support for production workloads.

package api

// Debug exposes runtime introspection and health API.
type Debug interface {
	// DumpState emits a snapshot of system state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}

// Inspectable is any component able to report a named state snapshot.
// The facade wires Inspectable components into Debug probes automatically.
type Inspectable interface {
	Name() string
	Snapshot() map[string]any
}
