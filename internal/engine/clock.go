package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Callers use it to determine "today" when computing days remaining.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the civil date of c.Now().
func Today(c Clock) time.Time {
	return DateOnly(c.Now())
}
