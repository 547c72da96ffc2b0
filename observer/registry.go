// File: observer/registry.go
// Package observer implements the copy-on-write observer registry.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package observer

import (
	"sync/atomic"

	"github.com/momentics/hioload-atom/api"
)

// Ensure compile-time interface compliance.
var _ api.ObserverSet[any] = (*Registry[any])(nil)

type entry[T any] struct {
	handle api.Handle
	fn     api.ObserverFunc[T]
}

// Registry is the reference api.ObserverSet implementation.
type Registry[T any] struct {
	entries atomic.Pointer[[]entry[T]]
	nextID  uint64

	// statistics
	notified int64
	panics   int64
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	r := &Registry[T]{}
	empty := make([]entry[T], 0)
	r.entries.Store(&empty)
	return r
}

// Add registers fn and returns a handle for later removal.
// A nil fn is registered as a no-op entry so the handle stays valid.
func (r *Registry[T]) Add(fn api.ObserverFunc[T]) api.Handle {
	if fn == nil {
		fn = func(api.Notification[T]) {}
	}
	h := api.Handle(atomic.AddUint64(&r.nextID, 1))
	for {
		oldp := r.entries.Load()
		old := *oldp
		next := make([]entry[T], len(old), len(old)+1)
		copy(next, old)
		next = append(next, entry[T]{handle: h, fn: fn})
		if r.entries.CompareAndSwap(oldp, &next) {
			return h
		}
	}
}

// Remove drops the observer identified by h. Returns false when h is unknown
// or already removed; removal is idempotent.
func (r *Registry[T]) Remove(h api.Handle) bool {
	for {
		oldp := r.entries.Load()
		old := *oldp
		idx := -1
		for i, e := range old {
			if e.handle == h {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
		next := make([]entry[T], 0, len(old)-1)
		next = append(next, old[:idx]...)
		next = append(next, old[idx+1:]...)
		if r.entries.CompareAndSwap(oldp, &next) {
			return true
		}
	}
}

// Notify delivers n to every observer registered at the moment the call
// starts. Callbacks run synchronously, in registration order; a panicking
// callback is recovered so the rest of the fan-out still runs.
func (r *Registry[T]) Notify(n api.Notification[T]) {
	snapshot := *r.entries.Load()
	for _, e := range snapshot {
		r.invoke(e.fn, n)
	}
	atomic.AddInt64(&r.notified, 1)
}

func (r *Registry[T]) invoke(fn api.ObserverFunc[T], n api.Notification[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			// swallow panic to keep fan-out alive
			atomic.AddInt64(&r.panics, 1)
		}
	}()
	fn(n)
}

// Len returns the current number of registered observers.
func (r *Registry[T]) Len() int {
	return len(*r.entries.Load())
}

// Stats returns basic registry metrics.
func (r *Registry[T]) Stats() map[string]int64 {
	return map[string]int64{
		"notifications":   atomic.LoadInt64(&r.notified),
		"observer_panics": atomic.LoadInt64(&r.panics),
		"observers":       int64(r.Len()),
	}
}
