// Package atom
// Author: momentics <momentics@gmail.com>
//
// Lock-free mutable reference cell with compare-and-set semantics, validation
// gating and change notification.
//
// An Atom holds one logical value that any number of goroutines read and
// replace without locks:
//   - Get returns the current value and never blocks.
//   - CompareAndSet installs a candidate only while the current value still
//     equals the expected one.
//   - Swap re-applies a pure transform until it commits against an unchanged
//     base value.
//   - Reset installs unconditionally, last writer wins.
//
// Every transition passes the validation predicate before install. A rejected
// candidate leaves the value untouched and produces no notification; a panic
// inside the validator or the transform counts as rejection and never reaches
// the caller. Committed transitions notify registered observers exactly once,
// strictly after the new value became visible to readers.
//
// Progress is lock-free, not wait-free: the system as a whole always advances,
// while a single Swap may retry indefinitely under perpetual interference.
// The retry loop is a pure spin with no backoff; callers needing fairness or
// backoff layer it on top.
//
// Values are treated as immutable. T must be comparable; wrap non-comparable
// payloads in a pointer, which also gives CompareAndSet identity semantics.
package atom
