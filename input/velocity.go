package input

import "time"

type velocitySample struct {
	position float64
	time     time.Time
}

// VelocityTracker derives an instantaneous release velocity from the trailing
// window of pointer move samples. Samples older than the window are evicted
// on every add, so memory stays bounded for arbitrarily long drags
type VelocityTracker struct {
	window  time.Duration
	samples []velocitySample
}

// NewVelocityTracker creates a tracker over the given trailing window
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	return &VelocityTracker{
		window:  window,
		samples: make([]velocitySample, 0, 16),
	}
}

// Add records one position sample and evicts samples outside the window
func (t *VelocityTracker) Add(position float64, at time.Time) {
	t.samples = append(t.samples, velocitySample{position: position, time: at})
	cutoff := at.Add(-t.window)
	i := 0
	for i < len(t.samples) && t.samples[i].time.Before(cutoff) {
		i++
	}
	if i > 0 {
		t.samples = append(t.samples[:0], t.samples[i:]...)
	}
}

// Velocity returns displacement over the retained window in units per frame
// interval, or 0 when fewer than two samples remain
func (t *VelocityTracker) Velocity(frameInterval time.Duration) float64 {
	if len(t.samples) < 2 {
		return 0
	}
	first := t.samples[0]
	last := t.samples[len(t.samples)-1]
	elapsed := last.time.Sub(first.time)
	if elapsed <= 0 {
		return 0
	}
	return (last.position - first.position) / float64(elapsed) * float64(frameInterval)
}

// Reset discards all samples, called on pointer down
func (t *VelocityTracker) Reset() {
	t.samples = t.samples[:0]
}
