// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api declares the contracts of the hioload-atom library: the atomic
// storage cell, the observer set with its notification payload, the
// validation predicate, time sources, runtime control, debug introspection
// and graceful shutdown. Implementations live in the concrete packages
// (atom, observer, control, adapters, internal/cell); api holds interfaces,
// shared error types and mock implementations only.
package api
