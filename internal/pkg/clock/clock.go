// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Stepped is a test clock that advances by Step on every call to Now
type Stepped struct {
	Current time.Time
	Step    time.Duration
}

// Now returns the current time and then advances it
func (c *Stepped) Now() time.Time {
	now := c.Current
	c.Current = c.Current.Add(c.Step)
	return now
}
