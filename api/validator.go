// Package api
// Author: momentics
//
// Validation predicate contract guarding state transitions.

package api

// Validator reports whether a candidate value may be installed. Validators
// must be pure: no side effects, no retained references to the candidate.
// A panic inside a validator counts as rejection of the candidate, never as
// failure of the mutating operation.
type Validator[T any] func(candidate T) bool

// AcceptAll returns the default validator: a concrete predicate admitting
// every candidate, so the mutation path never branches on a missing validator.
func AcceptAll[T any]() Validator[T] {
	return func(T) bool { return true }
}
