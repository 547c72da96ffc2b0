// Package api
// Author: momentics <momentics@gmail.com>
//
// Observer contracts for change notification on reference cells.

package api

import "time"

// Notification describes one committed state transition.
type Notification[T any] struct {
	Timestamp time.Time // taken after the new value became visible
	Value     T         // the value that was installed
	Extra     any       // reserved, always nil in this release
}

// ObserverFunc receives committed transitions. Callbacks run synchronously on
// the committing goroutine and must return promptly; anything slow belongs on
// the observer's own goroutine.
type ObserverFunc[T any] func(n Notification[T])

// Handle identifies a registered observer for later removal.
type Handle uint64

// ObserverSet is a concurrent registry of change observers.
//
// Notify fans out over a snapshot of the registration set taken when the call
// starts: observers added or removed mid-flight never block or corrupt a
// notification already underway, and may or may not see that transition.
type ObserverSet[T any] interface {
	Add(fn ObserverFunc[T]) Handle
	Remove(h Handle) bool
	Notify(n Notification[T])
	Len() int
}
