package domain

import "time"

// Clock supplies the current instant in the reference timezone. Evaluators
// take it as an explicit dependency so tests can travel in time.
type Clock interface {
	Now() time.Time
}

// UTCClock is the production clock; all enforcement decisions are made in UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }
