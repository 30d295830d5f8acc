package wheel

import "math"

// snapFrom springs the list to the item nearest its current offset.
func (s *Scroller) snapFrom(velocity float64) {
	s.cancelMotion()
	s.animateTo(s.mapper.Nearest(s.offset), velocity)
}

// animateTo springs from the current offset to virtual index target. The
// caller has already cancelled any previous motion.
func (s *Scroller) animateTo(target int, velocity float64) {
	to := s.mapper.OffsetFor(target)
	epoch := s.epoch
	shown := s.mapper.Wrap(target)

	s.snapping = true
	s.settled = false
	s.notify(shown, false)

	s.spring = s.springs.Animate(SpringParams{
		From:      s.offset,
		To:        to,
		Stiffness: SpringStiffness,
		Damping:   SpringDamping,
		Velocity:  velocity,
		OnUpdate: func(v float64) {
			if epoch != s.epoch {
				return
			}
			s.offset = v
			s.trackIndex()
		},
		OnComplete: func() {
			if epoch != s.epoch {
				return
			}
			s.spring = nil
			s.offset = to
			s.index = target
			s.snapping = false
			s.settled = true
			s.velocity = 0
			s.recenter()
			s.notify(shown, true)
		},
	})
}

// recenter shifts a settled infinite offset back towards the origin by whole
// list cycles once it has drifted more than half the origin's magnitude.
// The displayed index is unchanged.
func (s *Scroller) recenter() {
	if !s.mapper.Infinite {
		return
	}
	drift := s.offset - s.origin
	if math.Abs(drift) <= math.Abs(s.origin)/2 {
		return
	}
	cycle := float64(s.mapper.Count) * s.mapper.ItemHeight
	k := math.Round(drift / cycle)
	s.offset -= k * cycle
	s.index = s.mapper.Nearest(s.offset)
	s.log.Debug("picker recentered", "picker", s.name, "cycles", k, "offset", s.offset)
}
