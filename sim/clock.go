package sim

import "time"

// Clock turns wall-clock instants into per-frame elapsed times.
// The zero value is ready to use.
type Clock struct {
	last    time.Time
	started bool
}

// Next returns the time since the previous call. The first call returns 0.
// A clock that runs backwards yields 0 rather than a negative duration.
func (c *Clock) Next(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Reset makes the next call to Next behave like the first.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
