package engine

import "time"

// Animation is the cooperative frame loop: Idle until Start, then re-arms
// itself through the scheduler every frame until the frame callback reports
// done or Stop is called. Start while running and Stop while idle are both
// no-ops, and Stop from inside a frame callback prevents the next frame from
// being scheduled
type Animation struct {
	scheduler Scheduler

	// onFrame returns false when the loop should transition back to Idle
	onFrame func(now time.Time) bool

	// onPanic observes a recovered frame panic after the loop has stopped;
	// nil swallows it so one engine's failure never crashes the host
	onPanic func(r any)

	running bool
}

// NewAnimation creates an idle loop over the given scheduler
func NewAnimation(scheduler Scheduler, onFrame func(now time.Time) bool, onPanic func(r any)) *Animation {
	return &Animation{
		scheduler: scheduler,
		onFrame:   onFrame,
		onPanic:   onPanic,
	}
}

// Running reports whether the loop is live
func (a *Animation) Running() bool {
	return a.running
}

// Start schedules the loop; a re-entrant call while running is a no-op so the
// loop is never double-armed
func (a *Animation) Start() {
	if a.running {
		return
	}
	a.running = true
	a.scheduler.RequestTick(a.tick)
}

// Stop cancels any pending frame and returns the loop to Idle. Idempotent
func (a *Animation) Stop() {
	a.running = false
	a.scheduler.CancelTick()
}

func (a *Animation) tick(now time.Time) {
	if !a.running {
		// Canceled between scheduling and delivery
		return
	}
	keep := a.runFrame(now)
	if !keep {
		a.Stop()
		return
	}
	// A frame callback may have stopped the loop; only then skip re-arming
	if a.running {
		a.scheduler.RequestTick(a.tick)
	}
}

// runFrame isolates frame panics: a panicking callback stops this loop only
// and the recovered value goes to the panic hook
func (a *Animation) runFrame(now time.Time) (keep bool) {
	defer func() {
		if r := recover(); r != nil {
			keep = false
			if a.onPanic != nil {
				a.onPanic(r)
			}
		}
	}()
	return a.onFrame(now)
}
