// Package observer
// Author: momentics <momentics@gmail.com>
//
// Concurrent observer registry and composable observer decorators for atom
// change notification.
//
// The registry is copy-on-write: registration rewrites an immutable slice,
// notification walks the snapshot current at call start. Adding or removing
// observers never blocks a notification already underway.
package observer
