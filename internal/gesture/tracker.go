// Package gesture turns timestamped pointer positions into drag deltas and
// velocities.
package gesture

import "time"

// VelocityWindow is how far back velocity estimation looks.
const VelocityWindow = 100 * time.Millisecond

// historyLimit bounds the retained samples.
const historyLimit = 2 * VelocityWindow

type sample struct {
	y  float64
	at time.Time
}

// Tracker follows one vertical drag. The zero value is ready to use.
type Tracker struct {
	history []sample
	active  bool
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool { return t.active }

// Start begins a drag at y.
func (t *Tracker) Start(y float64, at time.Time) {
	t.active = true
	t.history = append(t.history[:0], sample{y, at})
}

// Move records the pointer at y and returns the delta since the previous
// sample and the current velocity in pixels per second.
func (t *Tracker) Move(y float64, at time.Time) (delta, velocity float64) {
	if !t.active {
		return 0, 0
	}
	prev := t.history[len(t.history)-1]
	t.record(sample{y, at})
	return y - prev.y, t.velocity()
}

// End finishes the drag and returns the release velocity in pixels per
// second. A pointer held still before release yields a velocity near zero.
func (t *Tracker) End(at time.Time) float64 {
	if !t.active {
		return 0
	}
	t.record(sample{t.history[len(t.history)-1].y, at})
	v := t.velocity()
	t.active = false
	t.history = t.history[:0]
	return v
}

// Cancel drops the drag without a release.
func (t *Tracker) Cancel() {
	t.active = false
	t.history = t.history[:0]
}

func (t *Tracker) record(s sample) {
	t.history = append(t.history, s)
	cutoff := s.at.Add(-historyLimit)
	i := 0
	for i < len(t.history)-1 && t.history[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		t.history = append(t.history[:0], t.history[i:]...)
	}
}

// velocity compares the newest sample with the first one that is at least
// VelocityWindow older, or the oldest retained sample.
func (t *Tracker) velocity() float64 {
	if len(t.history) < 2 {
		return 0
	}
	last := t.history[len(t.history)-1]
	ref := t.history[0]
	for i := len(t.history) - 2; i >= 0; i-- {
		ref = t.history[i]
		if last.at.Sub(ref.at) > VelocityWindow {
			break
		}
	}
	dt := last.at.Sub(ref.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - ref.y) / dt
}
