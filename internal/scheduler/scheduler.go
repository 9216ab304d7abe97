// Package scheduler drives fixed-interval callbacks from a single goroutine.
//
// It stands in for UI framework timers: every callback runs to completion
// before the next one starts, so callbacks may share state without locking.
package scheduler

import "time"

// DefaultMaxCatchUp bounds how many missed steps a timer replays after a stall.
const DefaultMaxCatchUp = 5

// Timer fires its callback once per Interval while enabled.
type Timer struct {
	name     string
	interval time.Duration
	fn       func()
	enabled  bool
	due      time.Duration
	fired    int
}

func (t *Timer) Name() string {
	return t.name
}

func (t *Timer) Interval() time.Duration {
	return t.interval
}

func (t *Timer) Enabled() bool {
	return t.enabled
}

// Fired returns how many times the callback has run.
func (t *Timer) Fired() int {
	return t.fired
}

// Scheduler owns a set of timers and a monotonic clock that only moves when
// Advance is called.
type Scheduler struct {
	timers     []*Timer
	clock      time.Duration
	origin     time.Time
	started    bool
	maxCatchUp int
}

func New() *Scheduler {
	return &Scheduler{maxCatchUp: DefaultMaxCatchUp}
}

// SetMaxCatchUp changes the replay bound. Values below 1 are ignored.
func (s *Scheduler) SetMaxCatchUp(n int) {
	if n >= 1 {
		s.maxCatchUp = n
	}
}

// Add registers a disabled timer. Registration order breaks ties between
// timers due at the same instant.
func (s *Scheduler) Add(name string, interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &Timer{name: name, interval: interval, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Enable starts a timer; its first run is one interval from now. Enabling a
// running timer keeps its phase.
func (s *Scheduler) Enable(t *Timer) {
	if t.enabled {
		return
	}
	t.enabled = true
	t.due = s.clock + t.interval
}

func (s *Scheduler) Disable(t *Timer) {
	t.enabled = false
}

// SetEnabled enables or disables t.
func (s *Scheduler) SetEnabled(t *Timer, on bool) {
	if on {
		s.Enable(t)
	} else {
		s.Disable(t)
	}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.clock
}

// Advance moves the clock to wall time now. The first call only anchors the
// clock. It returns the number of callbacks run.
func (s *Scheduler) Advance(now time.Time) int {
	if !s.started {
		s.origin = now
		s.started = true
		return 0
	}
	return s.AdvanceTo(now.Sub(s.origin))
}

// Step moves the clock forward by d.
func (s *Scheduler) Step(d time.Duration) int {
	return s.AdvanceTo(s.clock + d)
}

// AdvanceTo runs every callback due up to at, earliest first. A callback may
// enable or disable timers; the change applies to the rest of this advance.
func (s *Scheduler) AdvanceTo(at time.Duration) int {
	if at < s.clock {
		return 0
	}

	for _, t := range s.timers {
		if !t.enabled {
			continue
		}
		limit := time.Duration(s.maxCatchUp) * t.interval
		if behind := at - t.due; behind >= limit {
			t.due = at - limit + t.interval
		}
	}

	runs := 0
	for {
		t := s.nextDue(at)
		if t == nil {
			break
		}
		s.clock = t.due
		t.due += t.interval
		t.fired++
		runs++
		t.fn()
	}

	s.clock = at
	return runs
}

func (s *Scheduler) nextDue(at time.Duration) *Timer {
	var next *Timer
	for _, t := range s.timers {
		if !t.enabled || t.due > at {
			continue
		}
		if next == nil || t.due < next.due {
			next = t
		}
	}
	return next
}
