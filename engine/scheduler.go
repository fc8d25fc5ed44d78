package engine

import "time"

// Scheduler hands the animation loop its frames. At most one tick callback is
// pending at a time; requesting a tick replaces any previous request, so each
// Animation needs its own Scheduler — two loops sharing one would preempt
// each other's frames. The engine core never touches real timers, so a host
// loop or a test drives frames explicitly
type Scheduler interface {
	RequestTick(fn func(now time.Time))
	CancelTick()
}

// StepScheduler is a Scheduler advanced explicitly by its owner: a host event
// loop steps it once per frame interval, and tests step it with a fake clock.
// Not safe for concurrent use
type StepScheduler struct {
	now     time.Time
	pending func(now time.Time)
}

// NewStepScheduler creates a scheduler whose clock starts at start
func NewStepScheduler(start time.Time) *StepScheduler {
	return &StepScheduler{now: start}
}

// RequestTick implements Scheduler
func (s *StepScheduler) RequestTick(fn func(now time.Time)) {
	s.pending = fn
}

// CancelTick implements Scheduler
func (s *StepScheduler) CancelTick() {
	s.pending = nil
}

// Pending reports whether a tick is scheduled
func (s *StepScheduler) Pending() bool {
	return s.pending != nil
}

// Now returns the scheduler clock
func (s *StepScheduler) Now() time.Time {
	return s.now
}

// Advance moves the clock forward and fires the pending tick, if any. The
// pending slot is cleared before the callback runs so the loop can re-arm
// itself for the next frame
func (s *StepScheduler) Advance(d time.Duration) {
	s.now = s.now.Add(d)
	if s.pending == nil {
		return
	}
	fn := s.pending
	s.pending = nil
	fn(s.now)
}

// AdvanceSteps fires n frames of the given interval, a convenience for tests
// that let the body run until it settles
func (s *StepScheduler) AdvanceSteps(n int, interval time.Duration) {
	for i := 0; i < n; i++ {
		s.Advance(interval)
	}
}
