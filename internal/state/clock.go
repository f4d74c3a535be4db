package state

import "sync/atomic"

// Clock is a monotonic revision counter. It ticks on every change to the
// history so the host can tell whether the board moved on since it last looked.
type Clock struct {
	counter atomic.Uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Now returns the current value without advancing it.
func (c *Clock) Now() uint64 {
	return c.counter.Load()
}
