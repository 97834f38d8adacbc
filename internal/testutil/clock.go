package testutil

import "time"

// Clock is a controllable time source for store and service tests. Rollover
// behavior depends on the calendar day, so tests need to move the clock
// across midnight deterministically.
type Clock struct {
	now time.Time
}

// NewClock creates a Clock pinned to the given instant.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the clock's current instant. Pass as the store's clock func.
func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// NextDay moves the clock to the same wall time on the following calendar day.
func (c *Clock) NextDay() {
	c.now = c.now.AddDate(0, 0, 1)
}

// Set pins the clock to a new instant.
func (c *Clock) Set(now time.Time) {
	c.now = now
}
