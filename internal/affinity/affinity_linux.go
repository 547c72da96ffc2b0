//go:build linux
// +build linux

// File: internal/affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation of thread CPU affinity via sched_setaffinity(2).

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// pinPlatform binds the calling thread to cpuID. Thread id 0 addresses the
// calling thread.
func pinPlatform(cpuID int) error {
	runtime.LockOSThread()
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("affinity: sched_setaffinity(%d): %w", cpuID, err)
	}
	return nil
}

// unpinPlatform restores a full CPU mask before unlocking the thread. The
// kernel intersects the mask with the cpuset of the process, so a mask wider
// than the allowed set is fine.
func unpinPlatform() error {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < runtime.NumCPU(); i++ {
		set.Set(i)
	}
	err := unix.SchedSetaffinity(0, &set)
	runtime.UnlockOSThread()
	if err != nil {
		return fmt.Errorf("affinity: restore mask: %w", err)
	}
	return nil
}
