// File: observer/decorators.go
// Package observer
// Author: momentics <momentics@gmail.com>
//
// Composable observer decorators in the middleware style: each wraps an
// ObserverFunc with one orthogonal delivery policy.

package observer

import (
	"log"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/momentics/hioload-atom/api"
)

// Filtered forwards only notifications whose value passes pred.
func Filtered[T any](fn api.ObserverFunc[T], pred func(T) bool) api.ObserverFunc[T] {
	return func(n api.Notification[T]) {
		if pred(n.Value) {
			fn(n)
		}
	}
}

// RateLimited forwards notifications within the given rate budget and drops
// the rest. It never blocks or delays the committing goroutine.
func RateLimited[T any](fn api.ObserverFunc[T], limit rate.Limit, burst int) api.ObserverFunc[T] {
	lim := rate.NewLimiter(limit, burst)
	return func(n api.Notification[T]) {
		if lim.Allow() {
			fn(n)
		}
	}
}

// Once forwards only the first notification seen, ignoring all later ones.
func Once[T any](fn api.ObserverFunc[T]) api.ObserverFunc[T] {
	var fired atomic.Bool
	return func(n api.Notification[T]) {
		if fired.CompareAndSwap(false, true) {
			fn(n)
		}
	}
}

// Logged prints each notification under the given tag before forwarding it.
// Intended for debugging observer chains.
func Logged[T any](fn api.ObserverFunc[T], tag string) api.ObserverFunc[T] {
	return func(n api.Notification[T]) {
		log.Printf("[%s] value=%v at=%s", tag, n.Value, n.Timestamp.Format("15:04:05.000"))
		fn(n)
	}
}
