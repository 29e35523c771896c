package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sleepRecorder struct {
	clock *ManualClock
	slept []time.Duration
}

func (s *sleepRecorder) Sleep(d time.Duration) {
	s.slept = append(s.slept, d)
	s.clock.Advance(d)
}

func TestSchedulerSleepsUntilDeadline(t *testing.T) {
	clock := NewManualClock(epoch)
	sleeper := &sleepRecorder{clock: clock}
	sched := NewScheduler(clock, sleeper, 60*time.Millisecond)

	sched.Begin()
	clock.Advance(15 * time.Millisecond)
	sched.Wait()

	assert.Equal(t, []time.Duration{45 * time.Millisecond}, sleeper.slept)
	assert.Equal(t, epoch.Add(60*time.Millisecond), clock.Now())
}

func TestSchedulerOverrunDoesNotCatchUp(t *testing.T) {
	clock := NewManualClock(epoch)
	sleeper := &sleepRecorder{clock: clock}
	sched := NewScheduler(clock, sleeper, 60*time.Millisecond)

	sched.Begin()
	clock.Advance(100 * time.Millisecond)
	sched.Wait()
	assert.Empty(t, sleeper.slept)

	// The next frame gets a full budget of its own.
	sched.Begin()
	sched.Wait()
	assert.Equal(t, []time.Duration{60 * time.Millisecond}, sleeper.slept)
}

func TestSchedulerExactBudgetDoesNotSleep(t *testing.T) {
	clock := NewManualClock(epoch)
	sleeper := &sleepRecorder{clock: clock}
	sched := NewScheduler(clock, sleeper, 60*time.Millisecond)

	sched.Begin()
	clock.Advance(60 * time.Millisecond)
	sched.Wait()
	assert.Empty(t, sleeper.slept)
}

func TestManualClockSleepAdvances(t *testing.T) {
	clock := NewManualClock(epoch)
	clock.Sleep(3 * time.Second)
	assert.Equal(t, epoch.Add(3*time.Second), clock.Now())
}
