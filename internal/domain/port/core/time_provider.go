package core

import "time"

// TimeProvider abstracts the clock for the domain so tests can pin it when
// asserting on timestamps and month bucketing.
type TimeProvider interface {
	Now() time.Time
}
