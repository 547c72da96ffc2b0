// File: control/probes.go
// Package control
// Author: momentics <momentics@gmail.com>
//
// Portable runtime debug probes, registered on every control adapter.

package control

import (
	"runtime"
)

// RegisterRuntimeProbes adds Go-runtime introspection probes.
func RegisterRuntimeProbes(dp *DebugProbes) {
	dp.RegisterProbe("runtime.goroutines", func() any {
		return runtime.NumGoroutine()
	})
	dp.RegisterProbe("runtime.gomaxprocs", func() any {
		return runtime.GOMAXPROCS(0)
	})
	dp.RegisterProbe("runtime.version", func() any {
		return runtime.Version()
	})
}
