package loop

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Sleeper blocks the calling goroutine.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// ManualClock is a clock that only moves when told to. Sleep advances it
// instead of blocking, so a test can run any number of frames instantly.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep advances the clock by d.
func (c *ManualClock) Sleep(d time.Duration) {
	c.Advance(d)
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Scheduler paces frames to a fixed budget. A frame that overruns the
// budget is followed immediately by the next one; lost time is never made up.
type Scheduler struct {
	clock   Clock
	sleeper Sleeper
	budget  time.Duration
	start   time.Time
}

// NewScheduler creates a scheduler with the given frame budget.
func NewScheduler(clock Clock, sleeper Sleeper, budget time.Duration) *Scheduler {
	return &Scheduler{clock: clock, sleeper: sleeper, budget: budget}
}

// Begin marks the start of a frame.
func (s *Scheduler) Begin() {
	s.start = s.clock.Now()
}

// Wait sleeps until the frame budget since Begin has elapsed.
func (s *Scheduler) Wait() {
	remaining := s.start.Add(s.budget).Sub(s.clock.Now())
	if remaining > 0 {
		s.sleeper.Sleep(remaining)
	}
}
