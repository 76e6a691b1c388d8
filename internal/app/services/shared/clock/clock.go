package clock

import (
	"medibook-service/internal/app/contracts"
	"time"
)

type realClock struct {
	location *time.Location
}

// New returns a Clock reading the host wall clock in the given location.
func New(location *time.Location) contracts.Clock {
	return &realClock{location: location}
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.location)
}

func (c *realClock) Location() *time.Location {
	return c.location
}

// Fixed is a clock pinned to a single instant, for deterministic tests.
type Fixed struct {
	Instant time.Time
}

func (f *Fixed) Now() time.Time {
	return f.Instant
}

func (f *Fixed) Location() *time.Location {
	return f.Instant.Location()
}
