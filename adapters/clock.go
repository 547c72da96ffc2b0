// File: adapters/clock.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Time source adapters: the system wall clock for production and a manually
// advanced clock for deterministic tests and examples.

package adapters

import (
	"sync"
	"time"

	"github.com/momentics/hioload-atom/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.TimeSource = SystemTimeSource{}
	_ api.TimeSource = (*ManualTimeSource)(nil)
)

// SystemTimeSource reads the wall clock.
type SystemTimeSource struct{}

// Now implements api.TimeSource.
func (SystemTimeSource) Now() time.Time { return time.Now() }

// ManualTimeSource is a settable clock that only moves when told to.
type ManualTimeSource struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualTimeSource starts a manual clock at start.
func NewManualTimeSource(start time.Time) *ManualTimeSource {
	return &ManualTimeSource{now: start}
}

// Now implements api.TimeSource.
func (m *ManualTimeSource) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *ManualTimeSource) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Set jumps the clock to t.
func (m *ManualTimeSource) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}
