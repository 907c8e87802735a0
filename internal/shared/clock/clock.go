package clock

import "time"

// Clock supplies server-assigned timestamps.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time truncated to the millisecond precision
// the document store keeps, so a mapped value equals its persisted form.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// StubClock always returns the time it was created with.
type StubClock struct {
	now time.Time
}

func NewStubClock(now time.Time) *StubClock {
	return &StubClock{now: now.UTC()}
}

func (c *StubClock) Now() time.Time {
	return c.now
}
