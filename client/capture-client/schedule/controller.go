package schedule

import (
	"time"
)

// DefaultSendInterval is the cadence used when no interval is configured
const DefaultSendInterval = 10 * time.Second

// Decision is the outcome of a single Tick
type Decision int

const (
	// Preview means the frame is only shown locally
	Preview Decision = iota
	// Send means the frame must be encoded and uploaded
	Send
)

func (d Decision) String() string {
	switch d {
	case Send:
		return "send"
	case Preview:
		return "preview"
	default:
		return "unknown"
	}
}

// Controller decides per cycle whether the send deadline has been reached.
// The deadline is reset on every Send decision, whether or not a frame is
// obtained afterwards. It is driven by the single capture loop and is not
// safe for concurrent use.
type Controller struct {
	period    time.Duration
	lastReset time.Time
}

// NewController creates a controller whose first deadline is start+period.
// A non-positive period falls back to DefaultSendInterval.
func NewController(period time.Duration, start time.Time) *Controller {
	if period <= 0 {
		period = DefaultSendInterval
	}
	return &Controller{
		period:    period,
		lastReset: start,
	}
}

// Tick evaluates the deadline at now. On Send the deadline is reset to now.
func (c *Controller) Tick(now time.Time) Decision {
	if now.Sub(c.lastReset) >= c.period {
		c.lastReset = now
		return Send
	}
	return Preview
}

// Remaining returns the time left until the next send at now
func (c *Controller) Remaining(now time.Time) time.Duration {
	return c.period - now.Sub(c.lastReset)
}

// LastReset returns the time of the last deadline reset
func (c *Controller) LastReset() time.Time {
	return c.lastReset
}

// Period returns the configured send interval
func (c *Controller) Period() time.Duration {
	return c.period
}
