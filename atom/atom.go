// File: atom/atom.go
// Package atom implements the lock-free validated observable reference cell.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atom

import (
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-atom/api"
	"github.com/momentics/hioload-atom/internal/cell"
	"github.com/momentics/hioload-atom/observer"
)

// Ensure compile-time interface compliance.
var _ api.Inspectable = (*Atom[int])(nil)

// Atom is a single-slot, lock-free, validated, observable mutable reference.
// The zero value is not usable; construct with New.
type Atom[T comparable] struct {
	cell      api.Cell[T]
	observers api.ObserverSet[T]
	validate  api.Validator[T]
	clock     api.TimeSource
	name      string

	// statistics
	commits         int64
	conflicts       int64
	rejections      int64
	transformPanics int64
}

// New constructs an Atom seeded with initial.
//
// The seed is installed without consulting the validator: the initial value
// is trusted by the caller, validation guards transitions only. Construction
// never fails regardless of validator shape.
func New[T comparable](initial T, opts ...Option[T]) *Atom[T] {
	a := &Atom[T]{
		validate: api.AcceptAll[T](),
		clock:    systemTime{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cell == nil {
		a.cell = cell.New(initial)
	} else {
		seed := initial
		a.cell.Store(&seed)
	}
	if a.observers == nil {
		a.observers = observer.NewRegistry[T]()
	}
	return a
}

// Get atomically loads and returns the current value.
// No side effects, never blocks, always succeeds.
func (a *Atom[T]) Get() T {
	return *a.cell.Load()
}

// CompareAndSet installs candidate iff the current value equals expected at
// the moment of the attempt and candidate passes validation. On success it
// notifies observers once and returns true; otherwise the value is unchanged,
// nothing is notified, and it returns false.
//
// The underlying cell compares by reference identity, so an attempt raced by
// a writer who installed an equal value re-reads and tries again; the call
// reports failure only once the observed value genuinely differs from
// expected.
func (a *Atom[T]) CompareAndSet(expected, candidate T) bool {
	if !a.accept(candidate) {
		atomic.AddInt64(&a.rejections, 1)
		return false
	}
	next := &candidate
	for {
		cur := a.cell.Load()
		if *cur != expected {
			return false
		}
		if a.cell.CompareAndSwap(cur, next) {
			a.committed(candidate)
			return true
		}
		atomic.AddInt64(&a.conflicts, 1)
	}
}

// Swap commits fn(current) against an unchanged base value, retrying on
// conflict with a freshly read base. It returns the committed value.
//
// A nil fn is the sole usage error: Swap returns the current value together
// with api.ErrNilTransform. A panicking fn, or a candidate the validator
// refuses, aborts the call silently: the base value observed by the failed
// attempt is returned, nothing is installed, nothing is notified. Such
// outcomes stay distinguishable through Stats, never through the returns.
//
// fn must be pure: contention re-invokes it an unbounded number of times, and
// the retry loop is a pure spin with no backoff.
func (a *Atom[T]) Swap(fn func(T) T) (T, error) {
	if fn == nil {
		return a.Get(), api.ErrNilTransform
	}
	for {
		cur := a.cell.Load()
		next, ok := a.transform(fn, *cur)
		if !ok {
			atomic.AddInt64(&a.transformPanics, 1)
			atomic.AddInt64(&a.rejections, 1)
			return *cur, nil
		}
		if !a.accept(next) {
			atomic.AddInt64(&a.rejections, 1)
			return *cur, nil
		}
		if a.cell.CompareAndSwap(cur, &next) {
			a.committed(next)
			return next, nil
		}
		atomic.AddInt64(&a.conflicts, 1)
	}
}

// Reset unconditionally installs candidate, last writer wins, and returns it.
// A candidate the validator refuses leaves the value untouched and returns
// the current value instead; nothing is notified.
func (a *Atom[T]) Reset(candidate T) T {
	if !a.accept(candidate) {
		atomic.AddInt64(&a.rejections, 1)
		return a.Get()
	}
	a.cell.Store(&candidate)
	a.committed(candidate)
	return candidate
}

// AddObserver registers fn for committed transitions and returns its handle.
func (a *Atom[T]) AddObserver(fn api.ObserverFunc[T]) api.Handle {
	return a.observers.Add(fn)
}

// RemoveObserver drops a previously registered observer.
func (a *Atom[T]) RemoveObserver(h api.Handle) bool {
	return a.observers.Remove(h)
}

// Observers returns the number of currently registered observers.
func (a *Atom[T]) Observers() int {
	return a.observers.Len()
}

// Name returns the label given at construction, possibly empty.
func (a *Atom[T]) Name() string {
	return a.name
}

// Stats holds operation counters accumulated since construction.
type Stats struct {
	Commits         int64 // committed transitions
	Conflicts       int64 // CAS attempts lost to a concurrent writer
	Rejections      int64 // candidates refused by validation or panic
	TransformPanics int64 // Swap transforms that panicked
}

// Stats returns a consistent-enough snapshot of the operation counters.
func (a *Atom[T]) Stats() Stats {
	return Stats{
		Commits:         atomic.LoadInt64(&a.commits),
		Conflicts:       atomic.LoadInt64(&a.conflicts),
		Rejections:      atomic.LoadInt64(&a.rejections),
		TransformPanics: atomic.LoadInt64(&a.transformPanics),
	}
}

// Snapshot implements api.Inspectable for debug probes.
func (a *Atom[T]) Snapshot() map[string]any {
	s := a.Stats()
	return map[string]any{
		"value":            a.Get(),
		"observers":        a.Observers(),
		"commits":          s.Commits,
		"conflicts":        s.Conflicts,
		"rejections":       s.Rejections,
		"transform_panics": s.TransformPanics,
	}
}

// committed records a transition and fans out exactly one notification,
// strictly after the new value became visible through the cell.
func (a *Atom[T]) committed(v T) {
	atomic.AddInt64(&a.commits, 1)
	a.observers.Notify(api.Notification[T]{
		Timestamp: a.clock.Now(),
		Value:     v,
	})
}

// accept runs the validation gate. A validator panic counts as rejection and
// never propagates.
func (a *Atom[T]) accept(candidate T) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return a.validate(candidate)
}

// transform applies fn, converting a panic into an explicit rejected result
// so the retry loop never unwinds.
func (a *Atom[T]) transform(fn func(T) T, v T) (out T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return fn(v), true
}

// systemTime is the default TimeSource.
type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }
