package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/linkmind/internal/wheel"
)

// ShakeDuration is how long the disabled-button shake lasts.
const ShakeDuration = 300 * time.Millisecond

// shakeKeyframes are horizontal offsets, evenly spaced over ShakeDuration.
var shakeKeyframes = []float64{0, -10, 10, -10, 10, 0}

// Shake animates a horizontal "no" wiggle.
type Shake struct {
	elapsed time.Duration
	active  bool
}

// Start restarts the shake from its first keyframe.
func (s *Shake) Start() {
	s.elapsed = 0
	s.active = true
}

func (s *Shake) Active() bool { return s.active }

// Advance moves the shake forward by dt.
func (s *Shake) Advance(dt time.Duration) {
	if !s.active {
		return
	}
	s.elapsed += dt
	if s.elapsed >= ShakeDuration {
		s.active = false
		s.elapsed = 0
	}
}

// Offset returns the current horizontal displacement, linearly
// interpolated between keyframes.
func (s *Shake) Offset() float64 {
	if !s.active {
		return 0
	}
	last := len(shakeKeyframes) - 1
	pos := s.elapsed.Seconds() / ShakeDuration.Seconds() * float64(last)
	i := int(pos)
	if i >= last {
		return shakeKeyframes[last]
	}
	frac := pos - float64(i)
	return shakeKeyframes[i] + (shakeKeyframes[i+1]-shakeKeyframes[i])*frac
}

const (
	// IntroDistance is how far panels travel while sliding in.
	IntroDistance  = 40
	introStiffness = 200
	introDamping   = 20
)

// Intro slides content in with a spring. Progress runs from 0 to 1.
type Intro struct {
	slide float64
	anim  wheel.Animation
}

// Start springs the slide from IntroDistance to rest.
func (in *Intro) Start(springs wheel.SpringDriver) {
	if in.anim != nil {
		in.anim.Stop()
	}
	in.slide = IntroDistance
	in.anim = springs.Animate(wheel.SpringParams{
		From:       IntroDistance,
		To:         0,
		Stiffness:  introStiffness,
		Damping:    introDamping,
		OnUpdate:   func(v float64) { in.slide = v },
		OnComplete: func() { in.anim = nil },
	})
}

// Slide returns the remaining slide distance in pixels.
func (in *Intro) Slide() float64 { return in.slide }

// Progress returns how far the intro has come, clamped to [0, 1].
func (in *Intro) Progress() float64 {
	return max(0, min(1, 1-in.slide/IntroDistance))
}

func (in *Intro) Running() bool { return in.anim != nil }

// frameDuration is the length of one Update tick.
func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
