// File: api/cell.go
// Package api defines the atomic storage cell contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Cell is a single atomic reference slot.
//
// Implementations must provide linearizable Load/Store/CompareAndSwap over the
// installed reference. A cell never interprets the pointed-to value; equality
// and validation policies live above it.
type Cell[T any] interface {
	// Load returns the currently installed reference.
	// Never nil once the cell has been seeded.
	Load() *T

	// Store unconditionally installs a new reference.
	Store(v *T)

	// CompareAndSwap installs next only if the currently installed reference
	// is exactly old (pointer identity, not value equality).
	CompareAndSwap(old, next *T) bool
}
