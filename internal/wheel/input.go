package wheel

import (
	"math"
	"time"
)

// DragStart takes the list from whatever is moving it and reports it
// unsettled.
func (s *Scroller) DragStart() {
	s.cancelMotion()
	s.dragging = true
	s.snapping = false
	s.settled = false
	s.notify(s.Index(), false)
}

// DragMove applies a pointer delta (pixels) and records the pointer's
// instantaneous velocity for DragEnd.
func (s *Scroller) DragMove(delta, velocity float64) {
	if !s.dragging {
		return
	}
	s.offset = s.mapper.ClampOffset(s.offset + delta*DragDamping)
	s.velocity = velocity * DragDamping
	s.trackIndex()
}

// DragEnd releases the list with the pointer's velocity and lets inertia
// carry it.
func (s *Scroller) DragEnd(velocity float64) {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.StartInertia(velocity * DragDamping * ReleaseAttenuation)
}

// WheelStep moves one item in direction (positive is towards later items)
// and springs straight to it. It returns false when the step was debounced,
// ignored because the list is dragged or snapping, or blocked by the end of
// a finite list.
func (s *Scroller) WheelStep(direction int) bool {
	if direction == 0 {
		return false
	}
	now := s.now()
	if !s.lastWheel.IsZero() && now.Sub(s.lastWheel) < s.wheelDebounce() {
		return false
	}
	if s.dragging || s.snapping {
		return false
	}
	s.lastWheel = now

	current := s.mapper.Nearest(s.offset)
	target := current + int(math.Copysign(1, float64(direction)))
	if !s.mapper.Infinite {
		target = s.mapper.Clamp(target)
	}
	if target == current {
		return false
	}

	s.cancelMotion()
	s.animateTo(target, 0)
	return true
}

func (s *Scroller) wheelDebounce() time.Duration {
	if s.mapper.Infinite {
		return InfiniteWheelDebounce
	}
	return FiniteWheelDebounce
}
