// File: internal/cell/pointer.go
// Package cell implements the atomic reference slot backing an Atom.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pointer keeps the hot slot on its own cache line so write-heavy contention
// on one atom does not degrade neighbors allocated next to it.

package cell

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-atom/api"
)

// Ensure compile-time interface compliance.
var _ api.Cell[any] = (*Pointer[any])(nil)

// Pointer is the reference api.Cell implementation over sync/atomic.
type Pointer[T any] struct {
	_    cpu.CacheLinePad
	slot atomic.Pointer[T]
	_    cpu.CacheLinePad
}

// New returns a cell seeded with v.
func New[T any](v T) *Pointer[T] {
	p := &Pointer[T]{}
	p.slot.Store(&v)
	return p
}

// Load returns the currently installed reference.
func (p *Pointer[T]) Load() *T { return p.slot.Load() }

// Store unconditionally installs a new reference.
func (p *Pointer[T]) Store(v *T) { p.slot.Store(v) }

// CompareAndSwap installs next only if old is still the installed reference.
// Identity comparison on the pointer, never value equality, which keeps the
// operation immune to ABA on recycled values.
func (p *Pointer[T]) CompareAndSwap(old, next *T) bool {
	return p.slot.CompareAndSwap(old, next)
}
