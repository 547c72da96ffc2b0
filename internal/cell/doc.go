// File: internal/cell/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package cell holds the reference implementation of the api.Cell contract:
// a single cache-line-padded atomic pointer slot. Higher layers decide value
// equality, validation and notification; the cell only guarantees
// linearizable Load/Store/CompareAndSwap on the installed reference.
package cell
