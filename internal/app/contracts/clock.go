package contracts

import "time"

// Clock abstracts wall-clock access so the cancellation window and weekday
// derivation are deterministic under test.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}
