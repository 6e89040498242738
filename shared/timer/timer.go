// Package timer provides cooperative deadlines that entities poll once per
// frame. Nothing here runs on its own goroutine.
package timer

import "time"

// Clock reports monotonic time in seconds.
type Clock interface {
	Now() float64
}

// MonotonicClock measures seconds elapsed since it was created.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock only moves when told to.
type ManualClock struct {
	T float64
}

func (c *ManualClock) Now() float64 {
	return c.T
}

func (c *ManualClock) Advance(seconds float64) {
	c.T += seconds
}

// Tag identifies what should happen when a Timeout expires. Owners define
// their own tag constants.
type Tag int

const TagNone Tag = 0

// Timeout is a single pending deadline with an expiry tag.
type Timeout struct {
	deadline float64
	tag      Tag
	armed    bool
}

// Arm replaces any pending deadline with one that expires seconds after now.
func (t *Timeout) Arm(now, seconds float64, tag Tag) {
	t.deadline = now + seconds
	t.tag = tag
	t.armed = true
}

// Cancel clears the pending deadline.
func (t *Timeout) Cancel() {
	*t = Timeout{}
}

func (t *Timeout) Armed() bool {
	return t.armed
}

func (t *Timeout) Tag() Tag {
	return t.tag
}

// Remaining returns the seconds left before expiry, or 0 when disarmed.
func (t *Timeout) Remaining(now float64) float64 {
	if !t.armed || now >= t.deadline {
		return 0
	}
	return t.deadline - now
}

// Poll returns the tag and true exactly once, on the first call at or past
// the deadline. The timeout is disarmed afterwards.
func (t *Timeout) Poll(now float64) (Tag, bool) {
	if !t.armed || now < t.deadline {
		return TagNone, false
	}
	tag := t.tag
	t.Cancel()
	return tag, true
}

// RepeatTimer fires at a fixed interval.
type RepeatTimer struct {
	interval float64
	next     float64
	started  bool
}

func NewRepeatTimer(interval float64) *RepeatTimer {
	return &RepeatTimer{interval: interval}
}

// Due reports whether an interval boundary was crossed since the last call.
// The first call only starts the timer. Missed intervals collapse into one.
func (r *RepeatTimer) Due(now float64) bool {
	if !r.started {
		r.started = true
		r.next = now + r.interval
		return false
	}
	if now < r.next {
		return false
	}
	r.next = now + r.interval
	return true
}

// Reset restarts the interval from now.
func (r *RepeatTimer) Reset(now float64) {
	r.started = true
	r.next = now + r.interval
}

// Stepper counts calls and fires every n-th one.
type Stepper struct {
	every int
	count int
}

func NewStepper(every int) *Stepper {
	if every < 1 {
		every = 1
	}
	return &Stepper{every: every}
}

func (s *Stepper) Step() bool {
	s.count++
	if s.count >= s.every {
		s.count = 0
		return true
	}
	return false
}
