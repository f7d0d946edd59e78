package main

import "time"

// clock is a wall clock that stops while the game is paused, so level
// deadlines do not run down behind the pause menu.
type clock struct {
	now      func() time.Time
	offset   time.Duration
	pausedAt time.Time
	paused   bool
}

func newClock(now func() time.Time) *clock {
	return &clock{now: now}
}

func (c *clock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.offset)
	}
	return c.now().Add(-c.offset)
}

func (c *clock) Pause() {
	if c.paused {
		return
	}
	c.pausedAt = c.now()
	c.paused = true
}

func (c *clock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.now().Sub(c.pausedAt)
	c.paused = false
}
