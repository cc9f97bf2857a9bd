package core

import "time"

// Interval gates simulation updates to a minimum period between ticks. The
// caller supplies the clock so pacing stays reproducible under test.
type Interval struct {
	period time.Duration
	last   time.Time
}

// NewInterval constructs an Interval with the given period. Non-positive
// periods fall back to 100ms.
func NewInterval(period time.Duration) *Interval {
	iv := &Interval{}
	iv.SetPeriod(period)
	return iv
}

// SetPeriod changes the minimum inter-tick period.
func (iv *Interval) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = 100 * time.Millisecond
	}
	iv.period = period
}

// Period returns the configured minimum inter-tick period.
func (iv *Interval) Period() time.Duration { return iv.period }

// Due reports whether more than one period has elapsed since the last
// accepted tick. When it returns true, now becomes the new reference point.
// The first call after construction or Restart is always due.
func (iv *Interval) Due(now time.Time) bool {
	if !iv.last.IsZero() && now.Sub(iv.last) <= iv.period {
		return false
	}
	iv.last = now
	return true
}

// Restart forgets the last accepted tick.
func (iv *Interval) Restart() {
	iv.last = time.Time{}
}
