// File: validate/validate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reusable validation predicates for atoms. Validators are plain functions
// composable with All, Any and Not; Struct bridges tag-based struct rules
// into the predicate form atoms consume.

package validate

import (
	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-atom/api"
)

// Min returns a validator admitting candidates greater than or equal to bound.
func Min[T constraints.Ordered](bound T) api.Validator[T] {
	return func(candidate T) bool { return candidate >= bound }
}

// Max returns a validator admitting candidates less than or equal to bound.
func Max[T constraints.Ordered](bound T) api.Validator[T] {
	return func(candidate T) bool { return candidate <= bound }
}

// Range returns a validator admitting candidates inside the closed
// interval [lo, hi].
func Range[T constraints.Ordered](lo, hi T) api.Validator[T] {
	return func(candidate T) bool { return candidate >= lo && candidate <= hi }
}

// NonZero returns a validator rejecting the zero value of T.
func NonZero[T comparable]() api.Validator[T] {
	var zero T
	return func(candidate T) bool { return candidate != zero }
}

// OneOf returns a validator admitting only the listed values. Useful for
// atoms that hold an enumerated state.
func OneOf[T comparable](allowed ...T) api.Validator[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(candidate T) bool {
		_, ok := set[candidate]
		return ok
	}
}

// All combines validators conjunctively: every non-nil validator must admit
// the candidate. With no validators it admits everything.
func All[T any](vs ...api.Validator[T]) api.Validator[T] {
	return func(candidate T) bool {
		for _, v := range vs {
			if v != nil && !v(candidate) {
				return false
			}
		}
		return true
	}
}

// Any combines validators disjunctively: at least one must admit the
// candidate. With no validators it admits nothing.
func Any[T any](vs ...api.Validator[T]) api.Validator[T] {
	return func(candidate T) bool {
		for _, v := range vs {
			if v != nil && v(candidate) {
				return true
			}
		}
		return false
	}
}

// Not inverts a validator.
func Not[T any](v api.Validator[T]) api.Validator[T] {
	return func(candidate T) bool { return !v(candidate) }
}

// structValidator backs every predicate returned by Struct. The instance
// caches struct metadata and is safe for concurrent use.
var structValidator = validator.New()

// Struct returns a validator that admits candidates whose `validate` struct
// tags all pass. T must be a struct type; candidates of any other kind are
// rejected outright.
func Struct[T any]() api.Validator[T] {
	return func(candidate T) bool {
		return structValidator.Struct(candidate) == nil
	}
}
