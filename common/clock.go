package common

import "time"

// Clock reports time elapsed since the simulation started.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the wall clock relative to its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only advances when told to. Headless runs and tests use it so
// timing-dependent systems are reproducible.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

func (c *ManualClock) Set(d time.Duration) {
	c.now = d
}
