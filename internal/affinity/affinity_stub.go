//go:build !linux
// +build !linux

// File: internal/affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for platforms without affinity support.

package affinity

import "errors"

// pinPlatform reports affinity as unavailable.
func pinPlatform(cpuID int) error {
	return errors.New("affinity: not supported on this platform")
}

// unpinPlatform is a no-op where pinning is unavailable.
func unpinPlatform() error {
	return nil
}
