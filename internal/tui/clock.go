package tui

import "time"

// Clock is the wall-clock source the face reads.
type Clock interface {
	Now() time.Time
	// UntilNextMinute is the real delay until the clock crosses the next
	// minute boundary.
	UntilNextMinute() time.Duration
}

// SystemClock reads local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) UntilNextMinute() time.Duration {
	now := time.Now()
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}

// WarpClock runs a virtual clock from Start at Speed times real time. Used by
// demo mode to show rollovers without waiting.
type WarpClock struct {
	Start  time.Time
	Speed  float64
	origin time.Time
	real   func() time.Time
}

// NewWarpClock starts a warp clock at start.
func NewWarpClock(start time.Time, speed float64) *WarpClock {
	if speed <= 0 {
		speed = 1
	}
	return &WarpClock{Start: start, Speed: speed, origin: time.Now(), real: time.Now}
}

func (c *WarpClock) Now() time.Time {
	elapsed := c.real().Sub(c.origin)
	return c.Start.Add(time.Duration(float64(elapsed) * c.Speed))
}

func (c *WarpClock) UntilNextMinute() time.Duration {
	now := c.Now()
	virtual := now.Truncate(time.Minute).Add(time.Minute).Sub(now)
	return time.Duration(float64(virtual) / c.Speed)
}
