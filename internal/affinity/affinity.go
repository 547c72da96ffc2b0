// File: internal/affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_stub.go) guarded by
// build tags. Used by benchmarks to stabilize per-core measurements.

package affinity

// Pin locks the calling goroutine to its OS thread and binds that thread to
// the given logical CPU. On unsupported platforms it returns an error.
func Pin(cpuID int) error {
	return pinPlatform(cpuID)
}

// Unpin restores the thread's full CPU mask and releases the OS thread lock
// taken by Pin.
func Unpin() error {
	return unpinPlatform()
}
