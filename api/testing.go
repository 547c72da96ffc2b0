// Package api
// Author: momentics
//
// Mock/testing utilities for all core contracts; extendable for new interfaces.

package api

import "time"

// MockCell is a test and mock-friendly implementation of Cell. Each method
// delegates to the corresponding func field, so tests can script arbitrary
// interleavings (forced CAS conflicts in particular).
type MockCell[T any] struct {
	LoadFunc           func() *T
	StoreFunc          func(v *T)
	CompareAndSwapFunc func(old, next *T) bool
}

func (m *MockCell[T]) Load() *T                         { return m.LoadFunc() }
func (m *MockCell[T]) Store(v *T)                       { m.StoreFunc(v) }
func (m *MockCell[T]) CompareAndSwap(old, next *T) bool { return m.CompareAndSwapFunc(old, next) }

// MockTimeSource is a scriptable TimeSource for deterministic timestamps.
type MockTimeSource struct {
	NowFunc func() time.Time
}

func (m *MockTimeSource) Now() time.Time { return m.NowFunc() }

// Extend with mocks for all additional core contracts as architecture evolves.
