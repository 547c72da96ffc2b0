// Package control
// Author: momentics <momentics@gmail.com>
//
// Hot-reload, runtime metrics, configuration control, and debug introspection
// layer for atom hubs.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads, merged updates and reload listeners
//   - YAML file loading and fsnotify-driven hot reload
//   - Metrics telemetry and debug probe registration
//   - A bounded journal of recent committed atom transitions
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
