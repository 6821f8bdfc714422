package common

import "time"

// Clock reports milliseconds since an arbitrary fixed origin.
type Clock interface {
	NowMillis() int64
}

// MonotonicClock measures time from its construction.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) NowMillis() int64 {
	if c == nil {
		return 0
	}
	return time.Since(c.start).Milliseconds()
}

// FrameClock is sampled once per tick and handed to every update so that all
// entities agree on "now" for the frame.
type FrameClock struct {
	Now   int64
	Frame uint64
}

// Tick samples c and advances the frame counter.
func (f FrameClock) Tick(c Clock) FrameClock {
	now := f.Now
	if c != nil {
		now = c.NowMillis()
	}
	return FrameClock{Now: now, Frame: f.Frame + 1}
}

// Elapsed returns the milliseconds since since.
func (f FrameClock) Elapsed(since int64) int64 {
	return f.Now - since
}
