package app

import "time"

// FrameLimiter gates updates to a target rate. Callers poll Ready as often
// as they like; it admits at most one frame per interval and carries the
// remainder so the long-run rate stays on target.
type FrameLimiter struct {
	interval time.Duration
	last     time.Time
}

// NewFrameLimiter returns a limiter for fps frames per second.
func NewFrameLimiter(fps int, now time.Time) *FrameLimiter {
	if fps <= 0 {
		fps = 60
	}
	return &FrameLimiter{interval: time.Second / time.Duration(fps), last: now}
}

// Ready reports whether a frame is due at now.
func (l *FrameLimiter) Ready(now time.Time) bool {
	delta := now.Sub(l.last)
	if delta < l.interval {
		return false
	}
	l.last = now.Add(-(delta % l.interval))
	return true
}

// Interval is the target time between frames.
func (l *FrameLimiter) Interval() time.Duration {
	return l.interval
}
