package engine

import "time"

// Clock is the time source for the run timer
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock; time.Now carries a monotonic reading, so
// durations between two calls are immune to wall clock jumps
type SystemClock struct{}

// Now returns the current wall clock time
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the frozen time
func (c *ManualClock) Now() time.Time { return c.now }

// Set jumps to t
func (c *ManualClock) Set(t time.Time) { c.now = t }

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
