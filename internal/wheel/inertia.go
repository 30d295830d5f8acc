package wheel

import "math"

// StartInertia lets the list coast with velocity (pixels per frame),
// decaying by Friction each frame, then snaps. A velocity below
// VelocityThreshold snaps immediately from the current offset.
func (s *Scroller) StartInertia(velocity float64) {
	s.cancelMotion()
	if math.Abs(velocity) < VelocityThreshold {
		s.snapFrom(0)
		return
	}

	s.settled = false
	s.velocity = velocity
	s.inertia = s.frames.Request(s.inertiaStep)
}

func (s *Scroller) inertiaStep() {
	s.inertia = nil
	s.velocity *= Friction
	s.offset = s.mapper.ClampOffset(s.offset + s.velocity)
	s.trackIndex()

	if math.Abs(s.velocity) > VelocityThreshold {
		s.inertia = s.frames.Request(s.inertiaStep)
		return
	}
	s.snapFrom(s.velocity)
}
