// Package clock abstracts how "now" is obtained, so that session timing can
// be driven by a controllable clock in tests.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current instant and elapsed spans since an instant.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Real is the wall clock.
type Real struct{}

// Now returns the current system time.
func (Real) Now() time.Time { return time.Now() }

// Since returns the time elapsed since t.
func (Real) Since(t time.Time) time.Duration { return time.Since(t) }

// Manual is a clock that only moves when told to, for tests.
type Manual struct {
	mtx     sync.Mutex
	current time.Time
}

// NewManual returns a manual clock set to the given instant.
func NewManual(t time.Time) *Manual {
	return &Manual{current: t}
}

// Now returns the manual clock's current instant.
func (c *Manual) Now() time.Time {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.current
}

// Since returns the span from t to the manual clock's current instant.
func (c *Manual) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Advance moves the manual clock forward by d.
func (c *Manual) Advance(d time.Duration) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.current = c.current.Add(d)
}
