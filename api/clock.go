// Package api
// Author: momentics
//
// Time source contract for notification timestamps.

package api

import "time"

// TimeSource abstracts wall-clock access so notification timestamps remain
// deterministic under test.
type TimeSource interface {
	Now() time.Time
}
