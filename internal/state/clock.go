package state

import (
	"sync/atomic"
)

// Clock is a monotonic revision counter. Every applied edit ticks it, so
// frontends can tell whether a redraw is due. Reads are safe from any
// goroutine.
type Clock struct {
	rev atomic.Uint64
}

// Tick advances the clock and returns the new revision.
func (c *Clock) Tick() uint64 {
	return c.rev.Add(1)
}

// Now returns the current revision.
func (c *Clock) Now() uint64 {
	return c.rev.Load()
}
