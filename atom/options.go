// File: atom/options.go
// Package atom
// Author: momentics <momentics@gmail.com>
//
// Functional construction options. Every option tolerates its zero argument
// by keeping the corresponding default, so option plumbing never panics New.

package atom

import "github.com/momentics/hioload-atom/api"

// Option customizes an Atom at construction time.
type Option[T comparable] func(*Atom[T])

// WithValidator installs the predicate consulted before every transition.
// A nil v keeps the accept-all default.
func WithValidator[T comparable](v api.Validator[T]) Option[T] {
	return func(a *Atom[T]) {
		if v != nil {
			a.validate = v
		}
	}
}

// WithName labels the atom for debug probes, journals and metrics.
func WithName[T comparable](name string) Option[T] {
	return func(a *Atom[T]) {
		a.name = name
	}
}

// WithTimeSource overrides the source of notification timestamps.
func WithTimeSource[T comparable](ts api.TimeSource) Option[T] {
	return func(a *Atom[T]) {
		if ts != nil {
			a.clock = ts
		}
	}
}

// WithObserverSet replaces the default copy-on-write registry.
func WithObserverSet[T comparable](set api.ObserverSet[T]) Option[T] {
	return func(a *Atom[T]) {
		if set != nil {
			a.observers = set
		}
	}
}

// WithCell replaces the default padded pointer cell. New seeds the provided
// cell with the initial value, overwriting whatever it held.
func WithCell[T comparable](c api.Cell[T]) Option[T] {
	return func(a *Atom[T]) {
		if c != nil {
			a.cell = c
		}
	}
}
