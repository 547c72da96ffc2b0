//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific platform metrics or debug probe integrations.

package control

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.loadavg", func() any {
		var si unix.Sysinfo_t
		if err := unix.Sysinfo(&si); err != nil {
			return nil
		}
		const unit = 65536.0 // SI_LOAD_SHIFT fixed point
		return map[string]any{
			"load1":  float64(si.Loads[0]) / unit,
			"load5":  float64(si.Loads[1]) / unit,
			"load15": float64(si.Loads[2]) / unit,
			"uptime": si.Uptime,
		}
	})
}
